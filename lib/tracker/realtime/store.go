// Package realtime keeps a per-aircraft state cache built from a stream of
// decoded Mode S messages, resolving CPR position pairs as they arrive.
package realtime

import (
	"sync"
	"time"

	"github.com/google/btree"
	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/xoolive/rs1090/lib/tracker/mode_s"
)

var (
	framesSeen = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rs1090_frames_seen_total",
		Help: "Total raw frames submitted to the realtime store.",
	})
	framesDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rs1090_frames_decoded_total",
		Help: "Total frames successfully decoded.",
	})
	framesCRCFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rs1090_frames_crc_failed_total",
		Help: "Total frames rejected by CRC/format checks.",
	})
	positionsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rs1090_positions_resolved_total",
		Help: "Total CPR position resolutions (global or local).",
	})
	aircraftTracked = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rs1090_aircraft_tracked",
		Help: "Current number of distinct ICAO24 addresses in the store.",
	})
)

// AircraftState is the accumulated per-aircraft view the store maintains
// across frames: the most recent value seen for each field, plus the raw
// material (unpaired even/odd CPR frames) needed to resolve position.
type AircraftState struct {
	ICAO       string
	Callsign   string
	Squawk     string
	Altitude   int64
	Position   *orb.Point
	LastSeen   time.Time
	evenFrame  *cprRecord
	oddFrame   *cprRecord
}

type cprRecord struct {
	lat, lon uint32
	surface  bool
	seen     time.Time
}

func (r *cprRecord) toFrame(odd bool) mode_s.CPRFrame {
	return mode_s.CPRFrame{Odd: odd, LatCPR: r.lat, LonCPR: r.lon, Timestamp: r.seen.UnixNano()}
}

// item adapts AircraftState for btree ordering by ICAO24 hex string.
type item struct {
	state *AircraftState
}

func (it item) Less(than btree.Item) bool {
	return it.state.ICAO < than.(item).state.ICAO
}

// Store is a concurrency-safe, ordered aircraft-state cache. The
// btree.BTree index (degree 32, following the teacher's domain stack
// choice of google/btree over a plain map) gives Snapshot() a
// deterministic iteration order for downstream GeoJSON/table rendering.
type Store struct {
	mu          sync.Mutex
	tree        *btree.BTree
	refPosition *orb.Point
	decodeOpts  []mode_s.Option
}

// New constructs an empty Store. refPosition, when non-nil, seeds local
// CPR decoding before any even/odd pair has been seen for an aircraft.
func New(refPosition *orb.Point, opts ...mode_s.Option) *Store {
	return &Store{
		tree:        btree.New(32),
		refPosition: refPosition,
		decodeOpts:  opts,
	}
}

// Ingest decodes a raw frame and folds it into the aircraft-state cache.
// A decode failure is recorded in the crc-failed counter, leaves the cache
// unchanged and is returned to the caller as the error.
func (s *Store) Ingest(raw []byte, now time.Time) (*mode_s.DecodedMessage, error) {
	framesSeen.Inc()
	msg, err := mode_s.Decode(raw, s.decodeOpts...)
	if err != nil {
		framesCRCFailed.Inc()
		return nil, err
	}
	framesDecoded.Inc()
	s.apply(msg, now)
	return msg, nil
}

func (s *Store) apply(msg *mode_s.DecodedMessage, now time.Time) {
	if msg.ICAO == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.getOrCreate(msg.ICAO)
	st.LastSeen = now

	if msg.HasAltitude {
		st.Altitude = msg.Altitude
	}
	if msg.Squawk != "" {
		st.Squawk = msg.Squawk
	}
	if msg.BDS08 != nil {
		st.Callsign = msg.BDS08.Callsign
	}
	if msg.CommB20 != nil {
		st.Callsign = msg.CommB20.Callsign
	}

	switch {
	case msg.BDS05 != nil:
		s.foldCPR(st, msg.BDS05.CPRFormat, msg.BDS05.CPRLat, msg.BDS05.CPRLon, false, now)
	case msg.BDS06 != nil:
		s.foldCPR(st, msg.BDS06.CPRFormat, msg.BDS06.CPRLat, msg.BDS06.CPRLon, true, now)
	}
}

func (s *Store) getOrCreate(icao string) *AircraftState {
	probe := item{state: &AircraftState{ICAO: icao}}
	if found := s.tree.Get(probe); found != nil {
		return found.(item).state
	}
	st := &AircraftState{ICAO: icao}
	s.tree.ReplaceOrInsert(item{state: st})
	aircraftTracked.Set(float64(s.tree.Len()))
	return st
}

// foldCPR records the latest even/odd CPR half-frame for st and attempts a
// global decode whenever both halves are present; falls back to a local
// (reference-point) decode on any global-decode failure (stale pair,
// latitude-band mismatch, or no complementary half yet), matching spec
// section 4.7's fresh-pairing-then-reference-fallback order. Staleness
// itself (10s airborne, 25s surface) is judged by DecodeCPRGlobal, not
// here, so the threshold lives in one place alongside the rest of the
// CPR solver.
func (s *Store) foldCPR(st *AircraftState, format int, lat, lon uint32, surface bool, now time.Time) {
	rec := &cprRecord{lat: lat, lon: lon, surface: surface, seen: now}
	if format == 1 {
		st.oddFrame = rec
	} else {
		st.evenFrame = rec
	}

	if st.evenFrame != nil && st.oddFrame != nil {
		pos, err := mode_s.DecodeCPRGlobal(st.evenFrame.toFrame(false), st.oddFrame.toFrame(true), surface)
		if err == nil {
			st.Position = &pos
			positionsResolved.Inc()
			return
		}
	}

	ref := st.Position
	if ref == nil {
		ref = s.refPosition
	}
	if ref == nil {
		return
	}
	pos, err := mode_s.DecodeCPRLocal(rec.toFrame(format == 1), *ref, surface)
	if err == nil {
		st.Position = &pos
		positionsResolved.Inc()
	}
}

// Get returns a copy of the current state for an aircraft, or nil.
func (s *Store) Get(icao string) *AircraftState {
	s.mu.Lock()
	defer s.mu.Unlock()
	probe := item{state: &AircraftState{ICAO: icao}}
	found := s.tree.Get(probe)
	if found == nil {
		return nil
	}
	cp := *found.(item).state
	return &cp
}

// Snapshot returns every tracked aircraft's state, ordered by ICAO24.
func (s *Store) Snapshot() []AircraftState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AircraftState, 0, s.tree.Len())
	s.tree.Ascend(func(i btree.Item) bool {
		out = append(out, *i.(item).state)
		return true
	})
	return out
}

// Evict removes aircraft whose LastSeen predates the cutoff. The store
// never evicts on its own (spec section 3: eviction defaults to
// caller-managed); this is the caller-driven mechanism.
func (s *Store) Evict(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stale []btree.Item
	s.tree.Ascend(func(i btree.Item) bool {
		if i.(item).state.LastSeen.Before(cutoff) {
			stale = append(stale, i)
		}
		return true
	})
	for _, it := range stale {
		s.tree.Delete(it)
	}
	aircraftTracked.Set(float64(s.tree.Len()))
	return len(stale)
}
