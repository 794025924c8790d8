package mode_s

import "fmt"

// decodeSquawk decodes the 13-bit identity (squawk) field carried by
// DF5/21 and Comm-B BDS1,3-style replies into a 4-digit octal string,
// following the teacher's decodeSquawkIdentity A/B/C/D permutation.
func decodeSquawk(id uint64) string {
	c1 := (id >> 12) & 1
	a1 := (id >> 11) & 1
	c2 := (id >> 10) & 1
	a2 := (id >> 9) & 1
	c4 := (id >> 8) & 1
	a4 := (id >> 7) & 1
	b1 := (id >> 5) & 1
	d1 := (id >> 4) & 1
	b2 := (id >> 3) & 1
	d2 := (id >> 2) & 1
	b4 := (id >> 1) & 1
	d4 := id & 1

	a := (a4 << 2) | (a2 << 1) | a1
	b := (b4 << 2) | (b2 << 1) | b1
	c := (c4 << 2) | (c2 << 1) | c1
	d := (d4 << 2) | (d2 << 1) | d1

	return fmt.Sprintf("%d%d%d%d", a, b, c, d)
}
