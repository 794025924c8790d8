package flarm

// XXTEA block cipher, operating on the 5-word (20-byte) FLARM payload.
// Grounded on the specification's step-by-step description of the
// descramble/decrypt pipeline (no pack repo implements FLARM decryption;
// see DESIGN.md for the full rationale). Bit twiddling styled after the
// teacher's shift-and-mask idiom used for altitude/squawk decode.

const xxteaDelta uint32 = 0x9E3779B9

// xxteaDecrypt decrypts v in place (len(v) >= 2 words) using a 4-word key,
// following the reference XXTEA algorithm (Needham & Wheeler, corrected
// block TEA): for each of `rounds` passes, every word is updated from its
// two neighbors and a key word selected by its index.
func xxteaDecrypt(v []uint32, key [4]uint32) {
	n := len(v)
	if n < 2 {
		return
	}
	rounds := 6 + 52/n
	sum := uint32(rounds) * xxteaDelta

	y := v[0]
	for ; rounds > 0; rounds-- {
		e := (sum >> 2) & 3
		var z uint32
		for p := n - 1; p > 0; p-- {
			z = v[p-1]
			v[p] -= mx(sum, y, z, key, p, e)
			y = v[p]
		}
		z = v[n-1]
		v[0] -= mx(sum, y, z, key, 0, e)
		y = v[0]
		sum -= xxteaDelta
	}
}

func mx(sum, y, z uint32, key [4]uint32, p int, e uint32) uint32 {
	return ((z>>5 ^ y<<2) + (y>>3 ^ z<<4)) ^ ((sum ^ y) + (key[(uint32(p)&3)^e] ^ z))
}
