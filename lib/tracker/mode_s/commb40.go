package mode_s

// decodeCommB40 decodes the selected vertical intention register (BDS
// 4,0): MCP/FCU selected altitude and barometric pressure setting.
func decodeCommB40(me *bitReader) (*CommB40Payload, error) {
	altStatus, err := me.readUint32(0, 1)
	if err != nil {
		return nil, err
	}
	altRaw, err := me.readUint32(1, 12)
	if err != nil {
		return nil, err
	}
	pStatus, err := me.readUint32(29, 1)
	if err != nil {
		return nil, err
	}
	pRaw, err := me.readUint32(30, 12)
	if err != nil {
		return nil, err
	}

	p := &CommB40Payload{}
	if altStatus == 1 {
		p.SelectedAltitude = int64(altRaw) * 16
		p.HasAltitude = true
	}
	if pStatus == 1 {
		p.BarometricPressure = 800 + float64(pRaw)*0.1
		p.HasPressure = true
	}
	return p, nil
}
