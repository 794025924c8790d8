package mode_s

import "testing"

func TestDecodeSurfaceMovementSteps(t *testing.T) {
	cases := []struct {
		movement uint64
		want     float64
		hasSpeed bool
	}{
		{0, 0, false},
		{1, 0, true},
		{2, 0.125, true},
		{8, 0.875, true},
		{9, 1.0, true},
		{12, 1.75, true},
		{13, 2.0, true},
		{25, 8.0, true}, // mid-range of the 0.5kt-step band (m=13..38)
		{38, 14.5, true},
		{39, 15, true},
		{93, 69, true},
		{124, 175, true},
		{125, 0, false},
	}
	for _, c := range cases {
		got, hasSpeed := decodeSurfaceMovement(c.movement)
		if hasSpeed != c.hasSpeed {
			t.Errorf("decodeSurfaceMovement(%d) hasSpeed = %v, want %v", c.movement, hasSpeed, c.hasSpeed)
			continue
		}
		if hasSpeed && !approxEqual(got, c.want, 0.001) {
			t.Errorf("decodeSurfaceMovement(%d) = %v, want %v", c.movement, got, c.want)
		}
	}
}

func TestDecodeGroundTrack(t *testing.T) {
	if _, ok := decodeGroundTrack(0, 64); ok {
		t.Error("status=0 should report no track information")
	}
	track, ok := decodeGroundTrack(1, 64)
	if !ok || !approxEqual(track, 180, 0.001) {
		t.Errorf("decodeGroundTrack(1,64) = %v, %v; want 180, true", track, ok)
	}
}
