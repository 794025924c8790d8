package realtime

import (
	"testing"
	"time"

	"github.com/xoolive/rs1090/lib/tracker/mode_s"
)

func hexFrame(t *testing.T, s string) []byte {
	t.Helper()
	raw, err := mode_s.ParseHex(s)
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", s, err)
	}
	return raw
}

func TestStoreIngestTracksCallsign(t *testing.T) {
	store := New(nil)
	raw := hexFrame(t, "8D406B902015A678D4D220AA4BDA")
	now := time.Unix(1700000000, 0)

	msg, err := store.Ingest(raw, now)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if msg.ICAO != "406b90" {
		t.Fatalf("ICAO = %q, want 406b90", msg.ICAO)
	}

	st := store.Get("406b90")
	if st == nil {
		t.Fatal("expected a tracked aircraft state")
	}
	if st.Callsign != "EZY85MH" {
		t.Errorf("Callsign = %q, want EZY85MH", st.Callsign)
	}
	if !st.LastSeen.Equal(now) {
		t.Errorf("LastSeen = %v, want %v", st.LastSeen, now)
	}
}

func TestStoreIngestRejectsCorruptFrame(t *testing.T) {
	store := New(nil)
	raw := hexFrame(t, "8d4ca251204994b1c36e60a5343d")
	if _, err := store.Ingest(raw, time.Now()); err == nil {
		t.Error("expected a CRC error to propagate from Ingest")
	}
	if len(store.Snapshot()) != 0 {
		t.Error("a rejected frame should not create any tracked aircraft")
	}
}

func TestStoreSnapshotOrderedByICAO(t *testing.T) {
	store := New(nil)
	now := time.Now()
	for _, h := range []string{"8D406B902015A678D4D220AA4BDA", "8D485020994409940838175B284F"} {
		if _, err := store.Ingest(hexFrame(t, h), now); err != nil {
			t.Fatalf("Ingest: %v", err)
		}
	}
	states := store.Snapshot()
	if len(states) != 2 {
		t.Fatalf("len(states) = %d, want 2", len(states))
	}
	if states[0].ICAO >= states[1].ICAO {
		t.Errorf("snapshot not ordered: %q before %q", states[0].ICAO, states[1].ICAO)
	}
}

func TestStoreEvictRemovesStaleAircraft(t *testing.T) {
	store := New(nil)
	old := time.Unix(1000, 0)
	if _, err := store.Ingest(hexFrame(t, "8D406B902015A678D4D220AA4BDA"), old); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	n := store.Evict(time.Unix(2000, 0))
	if n != 1 {
		t.Errorf("Evict removed %d, want 1", n)
	}
	if len(store.Snapshot()) != 0 {
		t.Error("expected no tracked aircraft after eviction")
	}
}
