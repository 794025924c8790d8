// Package flarm decodes FLARM ground-to-ground traffic-awareness frames:
// descrambling, XXTEA decryption keyed by address+timestamp, and unpacking
// the resulting relative-position/velocity fields. Grounded on the
// specification's step-by-step description (4.9); no example repo in the
// retrieval pack implements FLARM frame decryption, only generation of
// outbound NMEA sentences from already-decoded traffic, the reverse
// direction (see DESIGN.md).
package flarm

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/paulmach/orb"

	"github.com/xoolive/rs1090/lib/tracker/mode_s"
)

// AircraftType enumerates the FLARM actype field (4 bits).
type AircraftType int

const (
	TypeUnknown AircraftType = iota
	TypeGlider
	TypeTowplane
	TypeHelicopter
	TypeParachute
	TypeDropPlane
	TypeHangGlider
	TypeParaGlider
	TypeAircraft
	TypeJet
	TypeUFO
	TypeBalloon
	TypeAirship
	TypeUAV
	TypeReserved
	TypeStaticObstacle
)

func (t AircraftType) String() string {
	names := []string{
		"Unknown", "Glider", "Towplane", "Helicopter", "Parachute",
		"DropPlane", "Hangglider", "Paraglider", "Aircraft", "Jet",
		"UFO", "Balloon", "Airship", "UAV", "Reserved", "StaticObstacle",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Record is the decoded FLARM traffic report.
type Record struct {
	ICAO24        string
	IsICAO24      bool
	AircraftType  AircraftType
	Latitude      float64
	Longitude     float64
	GeoAltitude   float64
	VerticalSpeed float64
	GroundSpeed   float64
	Track         float64
	NoTrack       bool
	Stealth       bool
	GPS           int
}

// Decode parses a 24-byte FLARM frame: 4 bytes of address header, 20
// bytes of XXTEA-encrypted payload, and resolves the decrypted relative
// position against ref (the receiving station's location).
func Decode(raw []byte, timestamp int64, ref orb.Point) (*Record, error) {
	if len(raw) != 24 {
		return nil, mode_s.NewMalformedFlarm("frame length %d, want 24", len(raw))
	}

	// The 3-byte address is packed little-endian across bytes 0..2; byte 3
	// is a separate parameter byte not used by this decoder. The address's
	// own low bit doubles as the is_icao24 flag.
	address := uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16
	isICAO24 := raw[0]&1 != 0

	key := deriveKey(address, timestamp)

	words := make([]uint32, 5)
	for i := 0; i < 5; i++ {
		words[i] = binary.BigEndian.Uint32(raw[4+i*4 : 8+i*4])
	}
	xxteaDecrypt(words, key)

	plain := make([]byte, 20)
	for i, w := range words {
		binary.BigEndian.PutUint32(plain[i*4:i*4+4], w)
	}

	br := newBitReader(plain)

	actype, err := br.readUint32(0, 4)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}

	altRaw, err := br.readUint32(4, 13)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}
	geoAlt := float64(int32(altRaw<<19)>>19) + 1000

	vsSign, err := br.readUint32(17, 1)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}
	vsMag, err := br.readUint32(18, 9)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}
	vs := float64(vsMag) * 0.1
	if vsSign == 1 {
		vs = -vs
	}

	gs, err := br.readUint32(27, 10)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}
	track, err := br.readUint32(37, 10)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}

	northSign, err := br.readUint32(47, 1)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}
	northMag, err := br.readUint32(48, 15)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}
	eastSign, err := br.readUint32(63, 1)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}
	eastMag, err := br.readUint32(64, 15)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}
	noTrack, err := br.readBool(79)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}
	stealth, err := br.readBool(80)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}
	gpsRaw, err := br.readUint32(81, 12)
	if err != nil {
		return nil, mode_s.NewMalformedFlarm("%v", err)
	}

	north := float64(northMag) / 10.0
	if northSign == 1 {
		north = -north
	}
	east := float64(eastMag) / 10.0
	if eastSign == 1 {
		east = -east
	}

	metersPerDegreeLat := 111320.0
	metersPerDegreeLon := 111320.0 * math.Cos(ref.Lat()*math.Pi/180.0)
	if metersPerDegreeLon == 0 {
		metersPerDegreeLon = 1
	}

	lat := ref.Lat() + north/metersPerDegreeLat
	lon := ref.Lon() + east/metersPerDegreeLon

	return &Record{
		ICAO24:        hex.EncodeToString([]byte{byte(address >> 16), byte(address >> 8), byte(address)}),
		IsICAO24:      isICAO24,
		AircraftType:  AircraftType(actype),
		Latitude:      lat,
		Longitude:     lon,
		GeoAltitude:   geoAlt,
		VerticalSpeed: vs,
		GroundSpeed:   float64(gs) * 0.25,
		Track:         float64(track) * 360.0 / 1024.0,
		NoTrack:       noTrack,
		Stealth:       stealth,
		GPS:           int(gpsRaw),
	}, nil
}

// deriveKey derives the 4-word XXTEA key from the broadcasting address
// and the sensor timestamp aligned down to the minute. The way the two
// are mixed into the four words is this package's own.
func deriveKey(address uint32, timestamp int64) [4]uint32 {
	minuteAligned := uint32(timestamp/60) * 60
	return [4]uint32{
		address ^ minuteAligned,
		address*0x45D9F3B ^ minuteAligned,
		address ^ (minuteAligned * 0x45D9F3B),
		address + minuteAligned,
	}
}
