package batch

import (
	"context"
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

func TestDecodePreservesInputOrder(t *testing.T) {
	frames := [][]byte{
		hexFrame(t, "8D406B902015A678D4D220AA4BDA"),
		hexFrame(t, "8D485020994409940838175B284F"),
		hexFrame(t, "8D40058B58C901375147EFD09357"),
	}
	_, results := Decode(context.Background(), frames, 4)
	if len(results) != len(frames) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(frames))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d, want %d", i, r.Index, i)
		}
		if r.Err != nil {
			t.Errorf("results[%d].Err = %v, want nil", i, r.Err)
		}
	}
	if results[0].Message == nil || results[0].Message.ICAO != "406b90" {
		t.Errorf("results[0].Message = %+v, want ICAO 406b90", results[0].Message)
	}
	if results[2].Message == nil || results[2].Message.ICAO != "40058b" {
		t.Errorf("results[2].Message = %+v, want ICAO 40058b", results[2].Message)
	}
}

func TestDecodeSingleWorkerStillOrders(t *testing.T) {
	frames := [][]byte{
		hexFrame(t, "8D406B902015A678D4D220AA4BDA"),
		hexFrame(t, "8D485020994409940838175B284F"),
	}
	_, results := Decode(context.Background(), frames, 1)
	if results[0].Message.ICAO != "406b90" || results[1].Message.ICAO != "485020" {
		t.Errorf("unordered results: %+v", results)
	}
}

func TestDecodeCarriesPerJobError(t *testing.T) {
	frames := [][]byte{
		hexFrame(t, "8D406B902015A678D4D220AA4BDA"),
		hexFrame(t, "8d4ca251204994b1c36e60a5343d"), // corrupt CRC, scenario S9
	}
	_, results := Decode(context.Background(), frames, 2)
	if results[0].Err != nil {
		t.Errorf("results[0].Err = %v, want nil", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("results[1].Err = nil, want a CRC error")
	}
	if results[1].Message != nil {
		t.Errorf("results[1].Message = %+v, want nil on error", results[1].Message)
	}
}

func TestDecodeEmptyBatch(t *testing.T) {
	id, results := Decode(context.Background(), nil, 4)
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
	var zero [16]byte
	if id == zero {
		t.Error("expected a non-zero batch id even for an empty batch")
	}
}

func TestDecodeStopsPickingUpJobsAfterCancel(t *testing.T) {
	ctx, cancel := context.Background(), func() {}
	ctx, cancelFn := context.WithCancel(ctx)
	cancel = cancelFn
	cancel()

	frames := make([][]byte, 50)
	for i := range frames {
		frames[i] = hexFrame(t, "8D406B902015A678D4D220AA4BDA")
	}

	done := make(chan struct{})
	var results []Result
	go func() {
		_, results = Decode(ctx, frames, 2)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Decode did not return after context cancellation")
	}
	if len(results) != len(frames) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(frames))
	}
}
