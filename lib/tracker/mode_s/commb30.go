package mode_s

// decodeCommB30 decodes the ACAS active resolution advisory register
// (BDS 3,0): active/threat flags plus the threat's ICAO24 when present.
func decodeCommB30(me *bitReader) (*CommB30Payload, error) {
	active, err := me.readUint32(8, 1)
	if err != nil {
		return nil, err
	}
	threat, err := me.readUint32(25, 1)
	if err != nil {
		return nil, err
	}
	p := &CommB30Payload{ACASActive: active == 1, ThreatActive: threat == 1}
	if p.ThreatActive {
		icao, err := me.readHex(26, 24)
		if err != nil {
			return nil, err
		}
		p.ThreatICAO = icao
	}
	return p, nil
}
