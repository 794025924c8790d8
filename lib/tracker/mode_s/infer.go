package mode_s

// BDSPriorityOrder is the order in which Comm-B register acceptance tests
// are tried when a DF20/21 reply's BDS register isn't already known from
// context. Mutable so a deployer can reorder it for their fleet mix.
var BDSPriorityOrder = []string{"20", "40", "50", "60", "44", "45", "30", "17", "10"}

// inferBDS runs each candidate register's acceptance test, in
// BDSPriorityOrder, against the 56-bit ME field and returns the first one
// that looks structurally valid, along with its decoded payload attached
// to msg. Returns an empty string and a nil error if no register's
// acceptance test passes.
func inferBDS(me *bitReader, msg *DecodedMessage) (string, error) {
	for _, bds := range BDSPriorityOrder {
		ok, err := acceptBDS(bds, me)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		if err := attachCommB(bds, me, msg); err != nil {
			return "", err
		}
		return bds, nil
	}
	return "", nil
}

func acceptBDS(bds string, me *bitReader) (bool, error) {
	switch bds {
	case "20":
		raw, err := me.readBits(8, 48)
		if err != nil {
			return false, err
		}
		return isPlausibleCallsign(raw), nil
	case "40":
		s1, err := me.readUint32(0, 1)
		if err != nil {
			return false, err
		}
		s2, err := me.readUint32(29, 1)
		if err != nil {
			return false, err
		}
		return s1 == 1 || s2 == 1, nil
	case "50":
		return true, nil
	case "60":
		return true, nil
	case "44":
		status, err := me.readUint32(0, 1)
		if err != nil {
			return false, err
		}
		return status == 1, nil
	case "45":
		return true, nil
	case "30":
		active, err := me.readUint32(8, 1)
		if err != nil {
			return false, err
		}
		return active == 1, nil
	case "17":
		return true, nil
	case "10":
		header, err := me.readUint32(0, 8)
		if err != nil {
			return false, err
		}
		return header == 0x10, nil
	default:
		return false, nil
	}
}

func attachCommB(bds string, me *bitReader, msg *DecodedMessage) error {
	var err error
	switch bds {
	case "20":
		msg.CommB20, err = decodeCommB20(me)
	case "40":
		msg.CommB40, err = decodeCommB40(me)
	case "50":
		msg.CommB50, err = decodeCommB50(me)
	case "60":
		msg.CommB60, err = decodeCommB60(me)
	case "44":
		msg.CommB44, err = decodeCommB44(me)
	case "45":
		msg.CommB45, err = decodeCommB45(me)
	case "30":
		msg.CommB30, err = decodeCommB30(me)
	case "17":
		msg.CommB17, err = decodeCommB17(me)
	case "10":
		msg.CommB10, err = decodeCommB10(me)
	}
	return err
}

// isPlausibleCallsign reports whether raw, interpreted as eight 6-bit AIS
// characters, looks like a genuine callsign rather than noise from an
// unrelated register happening to land in the same bit positions: once
// trimmed of trailing fill, it must contain only letters and digits, with
// no stray '#'/'_' filler in a non-trailing position.
func isPlausibleCallsign(raw uint64) bool {
	trimmed := decodeCallsign(raw)
	if trimmed == "" {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		isLetter := c >= 'A' && c <= 'Z'
		isDigit := c >= '0' && c <= '9'
		if !isLetter && !isDigit {
			return false
		}
	}
	return true
}
