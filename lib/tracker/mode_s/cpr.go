package mode_s

import (
	"math"
	"time"

	"github.com/paulmach/orb"
)

// Compact Position Reporting (CPR) solver. The global (even+odd frame
// pair) and local (single frame + reference point) algorithms here follow
// the dump1090-derived formulas in
// saviobatista-go1090/internal/adsb/cpr.go (cprModInt, the j/m global-decode
// formulas, cprNFunction/cprDlonFunction, and the 60-entry NL breakpoint
// table), translated from that package's map-based aircraft-position cache
// into pure functions operating on caller-supplied frame pairs.

const cprMax = 131072.0 // 2^17

// cprStaleAirborne/cprStaleSurface bound how far apart an even/odd pair's
// timestamps may be before the pair is considered too old to combine into
// a global position: 10s airborne, 25s surface, per the wider surface
// zone tolerating slower-arriving pairs.
const cprStaleAirborne = int64(10 * time.Second)
const cprStaleSurface = int64(25 * time.Second)

// cprModInt is a strictly non-negative modulo, needed because CPR's j/m
// formulas can produce negative intermediate values that Go's % would
// otherwise leave negative.
func cprModInt(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func cprModFloat(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}

// cprNLTable returns the number of longitude zones NL for a given
// latitude, via the hardcoded breakpoint table (not re-derived from the
// trigonometric definition at runtime, per design decision).
func cprNLTable(lat float64) int {
	lat = math.Abs(lat)
	switch {
	case lat < 10.47047130:
		return 59
	case lat < 14.82817437:
		return 58
	case lat < 18.18626357:
		return 57
	case lat < 21.02939493:
		return 56
	case lat < 23.54504487:
		return 55
	case lat < 25.82924707:
		return 54
	case lat < 27.93898710:
		return 53
	case lat < 29.91135686:
		return 52
	case lat < 31.77209708:
		return 51
	case lat < 33.53993436:
		return 50
	case lat < 35.22899598:
		return 49
	case lat < 36.85025108:
		return 48
	case lat < 38.41241892:
		return 47
	case lat < 39.92256684:
		return 46
	case lat < 41.38651832:
		return 45
	case lat < 42.80914012:
		return 44
	case lat < 44.19454951:
		return 43
	case lat < 45.54626723:
		return 42
	case lat < 46.86733252:
		return 41
	case lat < 48.16039128:
		return 40
	case lat < 49.42776439:
		return 39
	case lat < 50.67150166:
		return 38
	case lat < 51.89342469:
		return 37
	case lat < 53.09516153:
		return 36
	case lat < 54.27817472:
		return 35
	case lat < 55.44378444:
		return 34
	case lat < 56.59318756:
		return 33
	case lat < 57.72747354:
		return 32
	case lat < 58.84763776:
		return 31
	case lat < 59.95459277:
		return 30
	case lat < 61.04917774:
		return 29
	case lat < 62.13216659:
		return 28
	case lat < 63.20427479:
		return 27
	case lat < 64.26616523:
		return 26
	case lat < 65.31845310:
		return 25
	case lat < 66.36171008:
		return 24
	case lat < 67.39646774:
		return 23
	case lat < 68.42322022:
		return 22
	case lat < 69.44242631:
		return 21
	case lat < 70.45451075:
		return 20
	case lat < 71.45986473:
		return 19
	case lat < 72.45884545:
		return 18
	case lat < 73.45177442:
		return 17
	case lat < 74.43893416:
		return 16
	case lat < 75.42056257:
		return 15
	case lat < 76.39684391:
		return 14
	case lat < 77.36789461:
		return 13
	case lat < 78.33374083:
		return 12
	case lat < 79.29428225:
		return 11
	case lat < 80.24923213:
		return 10
	case lat < 81.19801349:
		return 9
	case lat < 82.13956981:
		return 8
	case lat < 83.07199445:
		return 7
	case lat < 83.99173563:
		return 6
	case lat < 84.89166191:
		return 5
	case lat < 85.75541621:
		return 4
	case lat < 86.53536998:
		return 3
	case lat < 87.00000000:
		return 2
	default:
		return 1
	}
}

func cprNFunction(lat float64, isOdd bool) int {
	nl := cprNLTable(lat)
	if isOdd {
		nl--
	}
	if nl < 1 {
		nl = 1
	}
	return nl
}

func cprDlonFunction(lat float64, isOdd, surface bool) float64 {
	d := 360.0
	if surface {
		d = 90.0
	}
	return d / float64(cprNFunction(lat, isOdd))
}

// cprFrame is one half of an even/odd CPR position pair.
type cprFrame struct {
	Odd       bool
	LatCPR    uint32
	LonCPR    uint32
	Timestamp int64 // unix nanos, used to pick the more recent frame for latitude
}

// decodeCPRGlobal resolves a matched even/odd frame pair into an
// unambiguous position, following dump1090's global decode: airDlat0 =
// 360/60, airDlat1 = 360/59, j = floor(((59*latCPR0 - 60*latCPR1)/cprMax)
// + 0.5), with latitude-band-mismatch detected by comparing each frame's
// NL value and failing the decode rather than guessing.
func decodeCPRGlobal(even, odd cprFrame, surface bool) (orb.Point, error) {
	delta := even.Timestamp - odd.Timestamp
	if delta < 0 {
		delta = -delta
	}
	threshold := cprStaleAirborne
	if surface {
		threshold = cprStaleSurface
	}
	if delta > threshold {
		return orb.Point{}, ErrCPRStale
	}

	const airDlat0 = 360.0 / 60.0
	const airDlat1 = 360.0 / 59.0

	latCPR0 := float64(even.LatCPR) / cprMax
	latCPR1 := float64(odd.LatCPR) / cprMax

	j := math.Floor((59*latCPR0 - 60*latCPR1) + 0.5)

	rlat0 := airDlat0 * (cprModFloat(j, 60) + latCPR0)
	rlat1 := airDlat1 * (cprModFloat(j, 59) + latCPR1)
	if surface {
		// Surface CPR frames use a quarter of the scale of airborne ones.
		rlat0 /= 4
		rlat1 /= 4
	}
	if rlat0 >= 270 {
		rlat0 -= 360
	}
	if rlat1 >= 270 {
		rlat1 -= 360
	}
	if rlat0 < -90 || rlat0 > 90 || rlat1 < -90 || rlat1 > 90 {
		return orb.Point{}, ErrCPRRangeError
	}

	nl0 := cprNLTable(rlat0)
	nl1 := cprNLTable(rlat1)
	if nl0 != nl1 {
		return orb.Point{}, ErrCPRLatitudeBandMismatch
	}

	var lat float64
	var latest cprFrame
	if even.Timestamp >= odd.Timestamp {
		lat = rlat0
		latest = even
	} else {
		lat = rlat1
		latest = odd
	}

	nl := cprNLTable(lat)
	ni := nl
	if latest.Odd {
		ni = nl - 1
	}
	if ni < 1 {
		ni = 1
	}

	lonCPR0 := float64(even.LonCPR) / cprMax
	lonCPR1 := float64(odd.LonCPR) / cprMax
	m := math.Floor(lonCPR0*float64(nl-1) - lonCPR1*float64(nl) + 0.5)

	dlon := 360.0 / float64(ni)
	if surface {
		dlon = 90.0 / float64(ni)
	}
	lonCPR := lonCPR0
	if latest.Odd {
		lonCPR = lonCPR1
	}
	lon := dlon * (cprModFloat(m, float64(ni)) + lonCPR)
	if lon > 180 {
		lon -= 360
	}

	return orb.Point{lon, lat}, nil
}

// decodeCPRLocal resolves a single CPR frame relative to a known reference
// point (the receiver's location, or the aircraft's last known position),
// valid as long as the true position is within half a zone width of the
// reference.
func decodeCPRLocal(frame cprFrame, ref orb.Point, surface bool) (orb.Point, error) {
	dlatRef := 360.0 / 60.0
	if frame.Odd {
		dlatRef = 360.0 / 59.0
	}
	if surface {
		dlatRef /= 4
	}

	latCPR := float64(frame.LatCPR) / cprMax
	j := math.Floor(ref.Lat()/dlatRef) + math.Floor(0.5+cprModFloat(ref.Lat(), dlatRef)/dlatRef-latCPR)
	lat := dlatRef * (j + latCPR)

	dlon := cprDlonFunction(lat, frame.Odd, surface)
	lonCPR := float64(frame.LonCPR) / cprMax
	m := math.Floor(ref.Lon()/dlon) + math.Floor(0.5+cprModFloat(ref.Lon(), dlon)/dlon-lonCPR)
	lon := dlon * (m + lonCPR)

	if math.Abs(lat-ref.Lat()) > 90 || math.Abs(lon-ref.Lon()) > 180 {
		return orb.Point{}, ErrCPRRangeError
	}
	return orb.Point{lon, lat}, nil
}

// CPRFrame is the exported form of a single CPR half-frame, used by
// callers (the realtime store) that need to pair even/odd frames across
// messages rather than within a single Decode call.
type CPRFrame struct {
	Odd       bool
	LatCPR    uint32
	LonCPR    uint32
	Timestamp int64
}

func (f CPRFrame) internal() cprFrame {
	return cprFrame{Odd: f.Odd, LatCPR: f.LatCPR, LonCPR: f.LonCPR, Timestamp: f.Timestamp}
}

// DecodeCPRGlobal is the exported entry point to the even/odd global CPR
// decode, for callers pairing frames across separately-decoded messages.
func DecodeCPRGlobal(even, odd CPRFrame, surface bool) (orb.Point, error) {
	return decodeCPRGlobal(even.internal(), odd.internal(), surface)
}

// DecodeCPRLocal is the exported entry point to the reference-point local
// CPR decode.
func DecodeCPRLocal(frame CPRFrame, ref orb.Point, surface bool) (orb.Point, error) {
	return decodeCPRLocal(frame.internal(), ref, surface)
}
