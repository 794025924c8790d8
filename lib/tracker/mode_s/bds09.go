package mode_s

// decodeBDS09 decodes the airborne-velocity register. Subtypes 1/2 carry
// a ground-speed vector (east/west + north/south components); subtypes 3/4
// carry airspeed + heading. Layout for subtype 1/2: TC(5) ST(3) IC(1)
// RESV-A(1) NAC-v(3) S-ew(1) V-ew(10) S-ns(1) V-ns(10) VrSrc(1) S-vr(1)
// Vr(9) RESV-B(2) S-Dif(1) Dif(7). Subtype 3/4 replaces the EW/NS fields
// with S-hdg(1) Hdg(10) AS-t(1) AS(10).
func decodeBDS09(me *bitReader) (*BDS09Payload, error) {
	st, err := me.readUint32(5, 3)
	if err != nil {
		return nil, err
	}
	p := &BDS09Payload{Subtype: uint64(st)}

	vrSrc, err := me.readUint32(35, 1)
	if err != nil {
		return nil, err
	}
	if vrSrc == 1 {
		p.VerticalSource = "GNSS"
	} else {
		p.VerticalSource = "barometric"
	}
	svr, err := me.readUint32(36, 1)
	if err != nil {
		return nil, err
	}
	vr, err := me.readUint32(37, 9)
	if err != nil {
		return nil, err
	}
	p.VerticalRate, p.HasVerticalRate = decodeVerticalRate(uint64(svr), uint64(vr))

	switch st {
	case 1, 2:
		sew, err := me.readUint32(13, 1)
		if err != nil {
			return nil, err
		}
		vew, err := me.readUint32(14, 10)
		if err != nil {
			return nil, err
		}
		sns, err := me.readUint32(24, 1)
		if err != nil {
			return nil, err
		}
		vns, err := me.readUint32(25, 10)
		if err != nil {
			return nil, err
		}
		gv, ok := decodeGroundSpeedVector(uint64(sew), uint64(vew), uint64(sns), uint64(vns), st == 2)
		if ok {
			p.GroundSpeed, p.HasGroundSpeed = gv.GroundSpeed, true
			p.Track, p.HasTrack = gv.Track, true
		}
	case 3, 4:
		shdg, err := me.readUint32(13, 1)
		if err != nil {
			return nil, err
		}
		hdg, err := me.readUint32(14, 10)
		if err != nil {
			return nil, err
		}
		ast, err := me.readUint32(24, 1)
		if err != nil {
			return nil, err
		}
		as, err := me.readUint32(25, 10)
		if err != nil {
			return nil, err
		}
		heading, hasHeading, speed, hasSpeed := decodeAirspeedHeading(uint64(shdg), uint64(hdg), uint64(as), st == 4)
		p.Heading, p.HasHeading = heading, hasHeading
		p.Airspeed, p.HasAirspeed = speed, hasSpeed
		p.IsTAS = ast == 1
	}
	return p, nil
}
