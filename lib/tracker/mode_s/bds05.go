package mode_s

// decodeBDS05 decodes the airborne-position ES register from a 56-bit ME
// field. Layout (msb-first, 0-indexed within the ME field): TC(5) SS(2)
// NICb(1) ALT(12) T(1) F(1) LAT-CPR(17) LON-CPR(17).
func decodeBDS05(me *bitReader, typeCode uint64) (*BDS05Payload, error) {
	altRaw, err := me.readUint32(8, 12)
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

	p := &BDS05Payload{
		CPRFormat: int(f),
		CPRLat:    lat,
		CPRLon:    lon,
	}
	if typeCode >= 9 && typeCode <= 18 {
		alt, unit, ok := decodeAC12(uint64(altRaw))
		p.Altitude, p.AltitudeUnit, p.HasAltitude = alt, unit, ok
	}
	// Type codes 20-22 are GNSS-height variants; their 12-bit field is not
	// decoded, so HasAltitude stays false for them.
	return p, nil
}
