package mode_s

var emergencyStateTable = []string{
	"none", "general", "lifeguard/medical", "minimum fuel",
	"no communications", "unlawful interference", "downed aircraft", "reserved",
}

// decodeBDS61 decodes the emergency/priority status (subtype 1) and ACAS
// resolution-advisory broadcast (subtype 2) register, distinguished by a
// 3-bit subtype field at the head of the ME body. Layout subtype 1: TC(5)
// ST(3) EmergencyState(3) ModeAIdentity(13) RESV(16). Subtype 2 is only
// flagged (ACASRA); its RA fields are not decoded.
func decodeBDS61(me *bitReader) (*BDS61Payload, error) {
	st, err := me.readUint32(5, 3)
	if err != nil {
		return nil, err
	}
	p := &BDS61Payload{Subtype: uint64(st)}
	switch st {
	case 1:
		es, err := me.readUint32(8, 3)
		if err != nil {
			return nil, err
		}
		id, err := me.readUint32(11, 13)
		if err != nil {
			return nil, err
		}
		if int(es) < len(emergencyStateTable) {
			p.EmergencyState = emergencyStateTable[es]
		}
		p.ModeAIdentity = decodeSquawk(uint64(id))
	case 2:
		p.ACASRA = true
	}
	return p, nil
}
