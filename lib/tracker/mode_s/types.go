package mode_s

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/paulmach/orb"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// BDS05Payload is the airborne-position register (BDS 0,5).
type BDS05Payload struct {
	Altitude      int64
	AltitudeUnit  string
	HasAltitude   bool
	CPRFormat     int // 0 = even, 1 = odd
	CPRLat        uint32
	CPRLon        uint32
	Position      *orb.Point
}

// BDS06Payload is the surface-position register (BDS 0,6).
type BDS06Payload struct {
	GroundSpeed    float64
	HasGroundSpeed bool
	Track          float64
	HasTrack       bool
	CPRFormat      int
	CPRLat         uint32
	CPRLon         uint32
	Position       *orb.Point
}

// BDS08Payload is the aircraft identification and category register.
type BDS08Payload struct {
	Callsign     string
	Category     string
	TypeCode     uint64
	CategoryCode uint64
}

// BDS09Payload is the airborne-velocity register.
type BDS09Payload struct {
	Subtype        uint64
	GroundSpeed    float64
	HasGroundSpeed bool
	Track          float64
	HasTrack       bool
	Heading        float64
	HasHeading     bool
	Airspeed       float64
	HasAirspeed    bool
	IsTAS          bool
	VerticalRate   float64
	HasVerticalRate bool
	VerticalSource string // "GNSS" or "barometric"
}

// BDS61Payload is the emergency/priority/ACAS broadcast register.
type BDS61Payload struct {
	Subtype          uint64
	EmergencyState   string
	ACASRA           bool
	ModeAIdentity    string
}

// BDS62Payload is the target-state-and-status register.
type BDS62Payload struct {
	TargetAltitude int64
	HasAltitude    bool
	TargetHeading  float64
	HasHeading     bool
	AutopilotOn    bool
}

// BDS65Payload is the aircraft operational status register.
type BDS65Payload struct {
	SubtypeAirborne bool
	Version         uint64
	NICSupplementA  uint64
	NACp            uint64
}

// Comm-B register payloads (DF20/DF21 only).

type CommB10Payload struct {
	DataLinkCapability uint64
	DTE                uint64
}

type CommB17Payload struct {
	CapabilityReport uint64
}

type CommB20Payload struct {
	Callsign string
}

type CommB30Payload struct {
	ACASActive   bool
	ThreatActive bool
	ThreatICAO   string
}

type CommB40Payload struct {
	SelectedAltitude int64
	HasAltitude      bool
	BarometricPressure float64
	HasPressure        bool
}

type CommB44Payload struct {
	WindSpeed     float64
	WindDirection float64
	Temperature   float64
}

type CommB45Payload struct {
	Turbulence  uint64
	Windshear   uint64
	Icing       uint64
}

type CommB50Payload struct {
	RollAngle   float64
	TrueTrack   float64
	GroundSpeed float64
}

type CommB60Payload struct {
	Heading          float64
	IndicatedAirspeed float64
	Mach             float64
}

// DecodedMessage is the closed tagged union returned by Decode. DF names
// the downlink format; BDS names the active Comm-B/ES register when
// applicable (empty otherwise). At most one payload field is non-nil per
// decoded message, selected by DF (and, for DF17/18/20/21, by BDS);
// formats and registers without a payload type leave all of them nil.
type DecodedMessage struct {
	DF   string `json:"df"`
	BDS  string `json:"bds,omitempty"`
	ICAO string `json:"icao"`

	// DF0/4/5/16/20/21 envelope fields.
	FlightStatus     string `json:"flight_status,omitempty"`
	VerticalStatus   string `json:"vertical_status,omitempty"`
	Altitude         int64  `json:"altitude,omitempty"`
	HasAltitude      bool   `json:"-"`
	AltitudeUnit     string `json:"altitude_unit,omitempty"`
	Squawk           string `json:"squawk,omitempty"`
	Capability       uint64 `json:"capability,omitempty"`

	BDS05 *BDS05Payload `json:"bds05,omitempty"`
	BDS06 *BDS06Payload `json:"bds06,omitempty"`
	BDS08 *BDS08Payload `json:"bds08,omitempty"`
	BDS09 *BDS09Payload `json:"bds09,omitempty"`
	BDS61 *BDS61Payload `json:"bds61,omitempty"`
	BDS62 *BDS62Payload `json:"bds62,omitempty"`
	BDS65 *BDS65Payload `json:"bds65,omitempty"`

	CommB10 *CommB10Payload `json:"commb10,omitempty"`
	CommB17 *CommB17Payload `json:"commb17,omitempty"`
	CommB20 *CommB20Payload `json:"commb20,omitempty"`
	CommB30 *CommB30Payload `json:"commb30,omitempty"`
	CommB40 *CommB40Payload `json:"commb40,omitempty"`
	CommB44 *CommB44Payload `json:"commb44,omitempty"`
	CommB45 *CommB45Payload `json:"commb45,omitempty"`
	CommB50 *CommB50Payload `json:"commb50,omitempty"`
	CommB60 *CommB60Payload `json:"commb60,omitempty"`

	TISB string `json:"tisb,omitempty"`
}

// MarshalJSON uses jsoniter so the discriminator fields survive unchanged
// even as payload variants are added, matching the jsoniter-based encoding
// the teacher's pipeline uses for its own wire records.
func (m *DecodedMessage) MarshalJSON() ([]byte, error) {
	type alias DecodedMessage
	return jsonAPI.Marshal((*alias)(m))
}
