package mode_s

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDecodeGroundSpeedVectorCardinalDirections(t *testing.T) {
	// East-only component (no sign bits set) should resolve to track 90.
	gv, ok := decodeGroundSpeedVector(0, 101, 0, 1, false)
	if !ok {
		t.Fatal("expected ok")
	}
	if !approxEqual(gv.GroundSpeed, 100, 0.001) {
		t.Errorf("GroundSpeed = %v, want 100", gv.GroundSpeed)
	}
	if !approxEqual(gv.Track, 90, 0.001) {
		t.Errorf("Track = %v, want 90", gv.Track)
	}

	// North-only component should resolve to track 0.
	gv, ok = decodeGroundSpeedVector(0, 1, 0, 101, false)
	if !ok {
		t.Fatal("expected ok")
	}
	if !approxEqual(gv.Track, 0, 0.001) {
		t.Errorf("Track = %v, want 0", gv.Track)
	}

	// South-only component should resolve to track 180.
	gv, ok = decodeGroundSpeedVector(0, 1, 1, 101, false)
	if !ok {
		t.Fatal("expected ok")
	}
	if !approxEqual(gv.Track, 180, 0.001) {
		t.Errorf("Track = %v, want 180", gv.Track)
	}
}

func TestDecodeGroundSpeedVectorNoInformation(t *testing.T) {
	if _, ok := decodeGroundSpeedVector(0, 0, 0, 1, false); ok {
		t.Error("expected not-ok when ew velocity field is zero (no information)")
	}
}

func TestDecodeVerticalRate(t *testing.T) {
	rate, ok := decodeVerticalRate(0, 17)
	if !ok || !approxEqual(rate, 1024, 0.001) {
		t.Errorf("decodeVerticalRate(0,17) = %v, %v; want 1024, true", rate, ok)
	}
	rate, ok = decodeVerticalRate(1, 17)
	if !ok || !approxEqual(rate, -1024, 0.001) {
		t.Errorf("decodeVerticalRate(1,17) = %v, %v; want -1024, true", rate, ok)
	}
	if _, ok := decodeVerticalRate(0, 0); ok {
		t.Error("magnitude 0 should report no information")
	}
}

func TestDecodeAirspeedHeading(t *testing.T) {
	heading, hasHeading, speed, hasSpeed := decodeAirspeedHeading(1, 512, 101, false)
	if !hasHeading || !approxEqual(heading, 180, 0.001) {
		t.Errorf("heading = %v, %v; want 180, true", heading, hasHeading)
	}
	if !hasSpeed || !approxEqual(speed, 100, 0.001) {
		t.Errorf("speed = %v, %v; want 100, true", speed, hasSpeed)
	}

	_, hasHeading, _, hasSpeed = decodeAirspeedHeading(0, 512, 0, false)
	if hasHeading {
		t.Error("headingStatus=0 should not report a heading")
	}
	if hasSpeed {
		t.Error("airspeed=0 should report no speed information")
	}
}
