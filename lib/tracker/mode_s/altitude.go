package mode_s

// Altitude decoding for the 13-bit AC field (DF0/4/16/20 and the Comm-B
// altitude reply) and the 12-bit AC field used by ES airborne-position
// messages (BDS05). Styled after the teacher's decode13bitAltitudeCode
// shift-and-mask handling of the M-bit/Q-bit split, generalized to both
// widths.

const (
	unitFeet   = "feet"
	unitMetres = "metres"
)

// decodeAC13 decodes the 13-bit altitude code carried in DF0/4/16/20/21
// replies. Bit layout, msb first: C1 A1 C2 A2 C4 A4 M B1 Q B2 D2 B4 D4.
func decodeAC13(ac uint64) (altitude int64, unit string, ok bool) {
	if ac == 0 {
		return 0, "", false
	}
	mBit := ac&0x0040 != 0
	if mBit {
		// Metric altitude reporting: bits exclude Q, reassemble without M/Q.
		raw := ((ac & 0x1F80) >> 2) | ((ac & 0x0020) >> 1) | (ac & 0x000F)
		return int64(raw), unitMetres, true
	}
	qBit := ac&0x0010 != 0
	if qBit {
		n := ((ac & 0x1F80) >> 2) | ((ac & 0x0020) >> 1) | (ac & 0x000F)
		return int64(n)*25 - 1000, unitFeet, true
	}
	// No Q-bit: Gillham/Mode-C encoded in 100ft steps, needs the
	// Mode-A-to-Mode-C permutation before Gray-code resolution.
	c1 := (ac >> 12) & 1
	a1 := (ac >> 11) & 1
	c2 := (ac >> 10) & 1
	a2 := (ac >> 9) & 1
	c4 := (ac >> 8) & 1
	a4 := (ac >> 7) & 1
	b1 := (ac >> 5) & 1
	b2 := (ac >> 3) & 1
	d2 := (ac >> 2) & 1
	b4 := (ac >> 1) & 1
	d4 := ac & 1
	modeA := (a4 << 11) | (a2 << 10) | (a1 << 9) | (b4 << 8) | (b2 << 7) | (b1 << 6) |
		(d4 << 5) | (d2 << 4) | (c4 << 2) | (c2 << 1) | c1
	ft, ok := modeAToModeC(modeA)
	if !ok {
		return 0, "", false
	}
	return ft * 100, unitFeet, true
}

// decodeAC12 decodes the 12-bit altitude code carried in ES airborne
// position messages (BDS05). Layout: identical to AC13 but without the
// M bit (metric reporting is not used over ES), so only 12 bits are
// present and only the Q-bit split applies.
func decodeAC12(ac uint64) (altitude int64, unit string, ok bool) {
	if ac == 0 {
		return 0, "", false
	}
	qBit := ac&0x0010 != 0
	if qBit {
		n := ((ac & 0x0FE0) >> 1) | (ac & 0x000F)
		return int64(n)*25 - 1000, unitFeet, true
	}
	// Gillham-coded, reinsert the absent M bit (as 0) at bit 6 and reuse
	// the 13-bit Gray-code resolver.
	ac13 := ((ac & 0x0FC0) << 1) | (ac & 0x003F)
	return decodeAC13(ac13)
}

// modeAToModeC converts an 11-bit Gray-coded Mode-A-style altitude pattern
// into 100-foot Mode-C altitude increments, following the classic dump1090
// permutation table: five hundreds bits and a parity-like five-hundred
// correction step resolved via Gray-to-binary conversion.
func modeAToModeC(modeA uint64) (int64, bool) {
	// modeA as packed by decodeAC13, bit 11 down to bit 0: A4 A2 A1 B4 B2
	// B1 D4 D2 D1 C4 C2 C1 (D1 always zero for altitude).
	if modeA&0x0008 != 0 {
		// D1 set: not a valid altitude code.
		return 0, false
	}

	fiveHundreds := grayToBinary(modesGillhamFiveHundreds(modeA))
	oneHundreds := grayToBinary(modesGillhamOneHundreds(modeA))

	// After Gray decoding only 1-4 and 7 are valid; 7 stands for 5.
	if oneHundreds == 0 || oneHundreds == 5 || oneHundreds == 6 {
		return 0, false
	}
	if oneHundreds == 7 {
		oneHundreds = 5
	}
	if fiveHundreds&1 != 0 {
		oneHundreds = 6 - oneHundreds
	}

	altitude500 := int64(fiveHundreds)*5 + int64(oneHundreds)
	return altitude500 - 13, true
}

// modesGillhamOneHundreds extracts the one-hundreds group, the 3-bit Gray
// code C1 C2 C4 (msb first), from the packed Mode-A pattern built in
// decodeAC13.
func modesGillhamOneHundreds(modeA uint64) uint64 {
	c1 := (modeA >> 0) & 1
	c2 := (modeA >> 1) & 1
	c4 := (modeA >> 2) & 1
	return (c1 << 2) | (c2 << 1) | c4
}

// modesGillhamFiveHundreds extracts the five-hundreds group, the 8-bit
// Gray code D2 D4 A1 A2 A4 B1 B2 B4 (msb first).
func modesGillhamFiveHundreds(modeA uint64) uint64 {
	b1 := (modeA >> 6) & 1
	b2 := (modeA >> 7) & 1
	b4 := (modeA >> 8) & 1
	a1 := (modeA >> 9) & 1
	a2 := (modeA >> 10) & 1
	a4 := (modeA >> 11) & 1
	d2 := (modeA >> 4) & 1
	d4 := (modeA >> 5) & 1
	return (d2 << 7) | (d4 << 6) | (a1 << 5) | (a2 << 4) | (a4 << 3) | (b1 << 2) | (b2 << 1) | b4
}

func grayToBinary(gray uint64) uint64 {
	b := gray
	for shift := uint(1); shift < 32; shift <<= 1 {
		b ^= b >> shift
	}
	return b
}
