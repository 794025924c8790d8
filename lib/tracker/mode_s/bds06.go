package mode_s

// decodeBDS06 decodes the surface-position ES register. Layout: TC(5)
// MOV(7) S(1) TRK(7) T(1) F(1) LAT-CPR(17) LON-CPR(17).
func decodeBDS06(me *bitReader) (*BDS06Payload, error) {
	mov, err := me.readUint32(5, 7)
	if err != nil {
		return nil, err
	}
	trkStatus, err := me.readUint32(12, 1)
	if err != nil {
		return nil, err
	}
	trkAngle, err := me.readUint32(13, 7)
	if err != nil {
		return nil, err
	}
	f, err := me.readUint32(21, 1)
	if err != nil {
		return nil, err
	}
	lat, err := me.readUint32(22, 17)
	if err != nil {
		return nil, err
	}
	lon, err := me.readUint32(39, 17)
	if err != nil {
		return nil, err
	}

	p := &BDS06Payload{CPRFormat: int(f), CPRLat: lat, CPRLon: lon}
	p.GroundSpeed, p.HasGroundSpeed = decodeSurfaceMovement(uint64(mov))
	p.Track, p.HasTrack = decodeGroundTrack(uint64(trkStatus), uint64(trkAngle))
	return p, nil
}
