package mode_s

import "testing"

func TestIsPlausibleCallsignAcceptsLettersAndDigits(t *testing.T) {
	raw := encodeCallsignForTest("KLM1017")
	if !isPlausibleCallsign(raw) {
		t.Error("expected a well-formed callsign to be plausible")
	}
}

func TestIsPlausibleCallsignRejectsEmbeddedFiller(t *testing.T) {
	// A '#' in the middle of the string (not just trailing) should never
	// occur in a real callsign.
	raw := encodeCallsignForTest("KL#1017")
	if isPlausibleCallsign(raw) {
		t.Error("expected an embedded filler character to be implausible")
	}
}

func TestIsPlausibleCallsignRejectsAllFiller(t *testing.T) {
	raw := encodeCallsignForTest("")
	if isPlausibleCallsign(raw) {
		t.Error("an all-filler field carries no callsign")
	}
}

func TestAcceptBDS10HeaderByte(t *testing.T) {
	buf := make([]byte, 7)
	buf[0] = 0x10
	me := newBitReader(buf)
	ok, err := acceptBDS("10", me)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("BDS1,0 acceptance test should pass when the header byte is 0x10")
	}
}
