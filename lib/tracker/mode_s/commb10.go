package mode_s

// decodeCommB10 decodes the data-link capability report (BDS 1,0).
// Layout: BDS-code(8, fixed 0x10) continuation flag and capability bits,
// trailing DTE sub-address per the original stub's dte int field.
func decodeCommB10(me *bitReader) (*CommB10Payload, error) {
	cap, err := me.readUint32(8, 24)
	if err != nil {
		return nil, err
	}
	dte, err := me.readUint32(52, 4)
	if err != nil {
		return nil, err
	}
	return &CommB10Payload{DataLinkCapability: uint64(cap), DTE: uint64(dte)}, nil
}
