package mode_s

// decodeCommB60 decodes the heading and speed report (BDS 6,0):
// magnetic heading, indicated airspeed, and Mach number.
func decodeCommB60(me *bitReader) (*CommB60Payload, error) {
	hdgSign, err := me.readUint32(0, 1)
	if err != nil {
		return nil, err
	}
	hdgMag, err := me.readUint32(1, 10)
	if err != nil {
		return nil, err
	}
	ias, err := me.readUint32(12, 10)
	if err != nil {
		return nil, err
	}
	mach, err := me.readUint32(22, 10)
	if err != nil {
		return nil, err
	}

	hdg := float64(hdgMag) * 90.0 / 512.0
	if hdgSign == 1 {
		hdg = -hdg
	}
	return &CommB60Payload{Heading: hdg, IndicatedAirspeed: float64(ias), Mach: float64(mach) * 0.008}, nil
}
