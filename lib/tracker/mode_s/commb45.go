package mode_s

// decodeCommB45 decodes the meteorological hazard report (BDS 4,5):
// turbulence/windshear/icing intensity codes (0=nil..3=severe).
func decodeCommB45(me *bitReader) (*CommB45Payload, error) {
	turb, err := me.readUint32(0, 2)
	if err != nil {
		return nil, err
	}
	wind, err := me.readUint32(2, 2)
	if err != nil {
		return nil, err
	}
	ice, err := me.readUint32(4, 2)
	if err != nil {
		return nil, err
	}
	return &CommB45Payload{Turbulence: uint64(turb), Windshear: uint64(wind), Icing: uint64(ice)}, nil
}
