package aircraftdb

import "testing"

func TestLookupKnownBlocks(t *testing.T) {
	cases := []struct {
		icao24  string
		country string
		iso     string
	}{
		{"000abc", "Zimbabwe", "ZW"},
		{"100000", "Mozambique", "MZ"},
		{"39ab12", "France", "FR"},
		{"3cffff", "Germany", "DE"},
		{"406b90", "United Kingdom", "GB"},
		{"7000ff", "Afghanistan", "AF"},
		{"a00001", "United States", "US"},
		{"c10000", "Canada", "CA"},
		{"e01234", "Argentina", "AR"},
		{"7a1234", "Japan", "JP"},
		{"7e0000", "Australia", "AU"},
	}
	for _, c := range cases {
		info, ok := Lookup(c.icao24)
		if !ok {
			t.Errorf("Lookup(%q): no match, want %s", c.icao24, c.country)
			continue
		}
		if info.Country != c.country || info.ISOCode != c.iso {
			t.Errorf("Lookup(%q) = %+v, want country %s iso %s", c.icao24, info, c.country, c.iso)
		}
	}
}

func TestLookupBlockBoundaries(t *testing.T) {
	if info, ok := Lookup("3bffff"); !ok || info.Country != "France" {
		t.Errorf("Lookup(3bffff) = %+v, %v, want France upper bound", info, ok)
	}
	if info, ok := Lookup("3c0000"); !ok || info.Country != "Germany" {
		t.Errorf("Lookup(3c0000) = %+v, %v, want Germany lower bound", info, ok)
	}
}

func TestLookupUnallocatedGapReturnsFalse(t *testing.T) {
	if _, ok := Lookup("44ffff"); ok {
		t.Error("expected no match in the unallocated gap after the UK block")
	}
}

func TestLookupRejectsMalformedHex(t *testing.T) {
	if _, ok := Lookup("not-hex"); ok {
		t.Error("expected Lookup to reject a non-hex address")
	}
}
