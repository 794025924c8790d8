package mode_s

// decodeBDS65 decodes the aircraft operational status register (ES
// type code 31). Layout: TC(5) ST(3, 0=airborne/1=surface) ...
// version-number(3) NIC-supplement-A(1) NACp(4) ... condensed to the
// fields exercised downstream.
func decodeBDS65(me *bitReader) (*BDS65Payload, error) {
	st, err := me.readUint32(5, 3)
	if err != nil {
		return nil, err
	}
	version, err := me.readUint32(40, 3)
	if err != nil {
		return nil, err
	}
	nicA, err := me.readUint32(43, 1)
	if err != nil {
		return nil, err
	}
	nacp, err := me.readUint32(44, 4)
	if err != nil {
		return nil, err
	}
	return &BDS65Payload{
		SubtypeAirborne: st == 0,
		Version:         uint64(version),
		NICSupplementA:  uint64(nicA),
		NACp:            uint64(nacp),
	}, nil
}
