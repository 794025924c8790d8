package mode_s

// decodeCommB17 decodes the GICB capability report (BDS 1,7): a 27-bit
// bitmask of which other registers the transponder supports.
func decodeCommB17(me *bitReader) (*CommB17Payload, error) {
	bits, err := me.readUint32(8, 27)
	if err != nil {
		return nil, err
	}
	return &CommB17Payload{CapabilityReport: uint64(bits)}, nil
}
