package mode_s

import "testing"

func TestCrcCheckZeroForCleanDF17(t *testing.T) {
	raw, err := ParseHex("8D406B902015A678D4D220AA4BDA")
	if err != nil {
		t.Fatal(err)
	}
	if residual := crcCheck(raw); residual != 0 {
		t.Errorf("crcCheck = %#x, want 0 for a clean DF17 frame", residual)
	}
	if !verifyDF17DF18(raw) {
		t.Error("verifyDF17DF18 rejected a clean frame")
	}
}

func TestCrcCheckNonzeroForCorruptFrame(t *testing.T) {
	raw, err := ParseHex("8D4ca251204994b1c36e60a5343d")
	if err != nil {
		t.Fatal(err)
	}
	if verifyDF17DF18(raw) {
		t.Error("verifyDF17DF18 accepted a frame expected to fail CRC")
	}
}

func TestRecoverICAOMatchesTransmittedICAO(t *testing.T) {
	// Address/parity replies carry their ICAO24 XORed into the trailing 24
	// parity bits. Start from a clean DF17 frame (zero residual) whose bytes
	// 1-3 hold the ICAO, and overlay that ICAO onto its parity field:
	// recoverICAO must then return exactly that address.
	raw, err := ParseHex("8D406B902015A678D4D220AA4BDA")
	if err != nil {
		t.Fatal(err)
	}
	want := uint32(raw[1])<<16 | uint32(raw[2])<<8 | uint32(raw[3])
	raw[len(raw)-3] ^= raw[1]
	raw[len(raw)-2] ^= raw[2]
	raw[len(raw)-1] ^= raw[3]
	if got := recoverICAO(raw); got != want {
		t.Errorf("recoverICAO = %#x, want %#x", got, want)
	}
}

func TestVerifyDF11OverlayOption(t *testing.T) {
	// A frame with a deliberately corrupted trailing byte should fail by
	// default and only succeed with WithDF11OverlayAccepted(true).
	raw, err := ParseHex("8D406B902015A678D4D220AA4BDA")
	if err != nil {
		t.Fatal(err)
	}
	raw[len(raw)-1] ^= 0xFF
	if verifyDF11(raw, false) {
		t.Error("verifyDF11 accepted a corrupted residual with overlay disallowed")
	}
	if !verifyDF11(raw, true) {
		t.Error("verifyDF11 rejected a corrupted residual even with overlay allowed")
	}
}
