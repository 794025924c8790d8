package mode_s

// decodeBDS62 decodes the target-state-and-status register (ADS-B version
// 2 TC=29). Layout: TC(5) SubType(2) SelAltType(1) SelAlt(11)
// BaroPressure(9) ... Heading(9) AutopilotOn(1) ... Abbreviated here to
// the fields exercised downstream: selected altitude, heading and the
// autopilot flag.
func decodeBDS62(me *bitReader) (*BDS62Payload, error) {
	altRaw, err := me.readUint32(8, 11)
	if err != nil {
		return nil, err
	}
	hdgStatus, err := me.readUint32(32, 1)
	if err != nil {
		return nil, err
	}
	hdgRaw, err := me.readUint32(33, 9)
	if err != nil {
		return nil, err
	}
	autopilot, err := me.readUint32(47, 1)
	if err != nil {
		return nil, err
	}

	p := &BDS62Payload{AutopilotOn: autopilot == 1}
	if altRaw != 0 {
		p.TargetAltitude = int64(altRaw) * 32
		p.HasAltitude = true
	}
	if hdgStatus == 1 {
		p.TargetHeading = float64(hdgRaw) * 360.0 / 512.0
		p.HasHeading = true
	}
	return p, nil
}
