package mode_s

import (
	"testing"

	"pgregory.net/rapid"
)

// Decode must never panic on garbage input, whatever the DF field claims
// about the frame's body. FuzzDecode seeds the corpus with the scenario
// table's known-good and known-bad frames; rapid.Check below explores the
// same property over the full 7/14-byte input space.
func FuzzDecode(f *testing.F) {
	seeds := []string{
		"8D406B902015A678D4D220AA4BDA",
		"8d4ca251204994b1c36e60a5343d",
		"A000083E202CC371C31DE0AA1CCF",
		"8c3461cf399d6059814ea81483a9",
	}
	for _, s := range seeds {
		raw, err := ParseHex(s)
		if err != nil {
			f.Fatalf("seed %q: %v", s, err)
		}
		f.Add(raw)
	}

	f.Fuzz(func(t *testing.T, raw []byte) {
		if len(raw) != 7 && len(raw) != 14 {
			t.Skip()
		}
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Decode panicked on %x: %v", raw, r)
			}
		}()
		Decode(raw)
	})
}

// TestDecodeNeverPanicsRapid drives Decode with rapid-generated 7 and
// 14-byte frames, independent of the seed corpus above.
func TestDecodeNeverPanicsRapid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.SampledFrom([]int{7, 14}).Draw(rt, "frameLen")
		raw := make([]byte, n)
		for i := range raw {
			raw[i] = byte(rapid.IntRange(0, 255).Draw(rt, "byte"))
		}
		defer func() {
			if r := recover(); r != nil {
				rt.Fatalf("Decode panicked on %x: %v", raw, r)
			}
		}()
		Decode(raw)
	})
}

// TestParseHexNeverPanicsRapid does the same for ParseHex over arbitrary
// strings, including ones that aren't valid hex at all.
func TestParseHexNeverPanicsRapid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "input")
		defer func() {
			if r := recover(); r != nil {
				rt.Fatalf("ParseHex panicked on %q: %v", s, r)
			}
		}()
		ParseHex(s)
	})
}
