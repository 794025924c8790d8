package mode_s

// decodeBDS08 decodes the aircraft identification and category register.
// Layout: TC(5) CA(3) CALLSIGN(48, eight 6-bit characters).
func decodeBDS08(me *bitReader, typeCode uint64) (*BDS08Payload, error) {
	cat, err := me.readUint32(5, 3)
	if err != nil {
		return nil, err
	}
	raw, err := me.readBits(8, 48)
	if err != nil {
		return nil, err
	}
	return &BDS08Payload{
		Callsign:     decodeCallsign(raw),
		Category:     wakeVortexCategory(typeCode, uint64(cat)),
		TypeCode:     typeCode,
		CategoryCode: uint64(cat),
	}, nil
}
