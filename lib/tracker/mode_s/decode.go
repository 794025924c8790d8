package mode_s

import (
	"encoding/hex"
	"strings"
)

// Option configures Decode. Functional options, the way the teacher's
// lib/setup/source.go configures a producer.
type Option func(*decodeOptions)

type decodeOptions struct {
	allowDF11Overlay bool
}

// WithDF11OverlayAccepted accepts DF11 replies whose CRC residual is
// nonzero, interpreting the residual as an interrogator overlay code
// instead of rejecting the frame outright. Off by default (the
// conservative choice).
func WithDF11OverlayAccepted(accept bool) Option {
	return func(o *decodeOptions) {
		o.allowDF11Overlay = accept
	}
}

// ParseHex turns a hex string (with or without a leading '*' or trailing
// ';', as produced by a Beast-format feed) into a raw Mode S byte slice.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "*")
	s = strings.TrimSuffix(s, ";")
	s = strings.TrimSpace(s)
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, newError(MalformedHex, "%v", err)
	}
	if len(raw) != 7 && len(raw) != 14 {
		return nil, newError(LengthMismatch, "got %d bytes, want 7 (short) or 14 (long)", len(raw))
	}
	return raw, nil
}

// downlinkFormat extracts the 5-bit DF field from the first byte, with
// DF24's special top-2-bit-only encoding (DF 24-31 all identify as
// Comm-D, selected by their top two bits being 11).
func downlinkFormat(first byte) int {
	if first>>6 == 0x3 {
		return 24
	}
	return int(first >> 3)
}

// Decode parses a raw Mode S frame (7 or 14 bytes) into a DecodedMessage.
// It mirrors the teacher's parse()'s switch-on-DF dispatch structure:
// envelope fields common to several DFs are decoded first, then the
// DF-specific body.
func Decode(raw []byte, opts ...Option) (*DecodedMessage, error) {
	cfg := decodeOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(raw) != 7 && len(raw) != 14 {
		return nil, newError(LengthMismatch, "got %d bytes", len(raw))
	}

	df := downlinkFormat(raw[0])
	msg := &DecodedMessage{}

	// DF >= 16 is always carried in a long (14-byte) frame; everything
	// below it is always short (7-byte). Checked before any DF-specific
	// body parsing touches bytes past a short frame's end.
	switch {
	case df >= 16 && len(raw) != 14:
		return nil, newError(LengthMismatch, "DF%d requires a long (14-byte) frame", df)
	case df < 16 && len(raw) != 7:
		return nil, newError(LengthMismatch, "DF%d requires a short (7-byte) frame", df)
	}

	switch df {
	case 0, 4, 5, 16, 20, 21:
		msg.ICAO = hexICAO(recoverICAO(raw))
	case 11:
		if !verifyDF11(raw, cfg.allowDF11Overlay) {
			return nil, newError(CrcFail, "DF11 CRC residual rejected")
		}
		msg.ICAO = hex.EncodeToString(raw[1:4])
	case 17, 18:
		if !verifyDF17DF18(raw) {
			return nil, newError(CrcFail, "DF%d CRC check failed", df)
		}
		msg.ICAO = hex.EncodeToString(raw[1:4])
	default:
		return nil, newError(UnknownDF, "DF%d unsupported", df)
	}

	msg.DF = dfName(df)

	br := newBitReader(raw)

	switch df {
	case 0:
		ac, err := br.readUint32(19, 13)
		if err != nil {
			return nil, err
		}
		alt, unit, ok := decodeAC13(uint64(ac))
		msg.Altitude, msg.AltitudeUnit, msg.HasAltitude = alt, unit, ok
		msg.VerticalStatus = decodeVerticalStatus(raw[0])
	case 4, 20:
		ac, err := br.readUint32(19, 13)
		if err != nil {
			return nil, err
		}
		alt, unit, ok := decodeAC13(uint64(ac))
		msg.Altitude, msg.AltitudeUnit, msg.HasAltitude = alt, unit, ok
		msg.FlightStatus = decodeFlightStatus(raw[0])
		if df == 20 {
			if err := decodeCommBBody(raw, msg); err != nil {
				return nil, err
			}
		}
	case 5, 21:
		id, err := br.readUint32(19, 13)
		if err != nil {
			return nil, err
		}
		msg.Squawk = decodeSquawk(uint64(id))
		msg.FlightStatus = decodeFlightStatus(raw[0])
		if df == 21 {
			if err := decodeCommBBody(raw, msg); err != nil {
				return nil, err
			}
		}
	case 16:
		ac, err := br.readUint32(19, 13)
		if err != nil {
			return nil, err
		}
		alt, unit, ok := decodeAC13(uint64(ac))
		msg.Altitude, msg.AltitudeUnit, msg.HasAltitude = alt, unit, ok
		msg.VerticalStatus = decodeVerticalStatus(raw[0])
	case 11:
		cap, err := br.readUint32(5, 3)
		if err != nil {
			return nil, err
		}
		msg.Capability = uint64(cap)
	case 17:
		if err := decodeESBody(raw, msg); err != nil {
			return nil, err
		}
	case 18:
		cf, err := br.readUint32(5, 3)
		if err != nil {
			return nil, err
		}
		switch cf {
		case 0, 1, 6:
			if err := decodeESBody(raw, msg); err != nil {
				return nil, err
			}
		case 2:
			msg.TISB = "fine"
		case 3:
			msg.TISB = "coarse"
		case 5:
			msg.TISB = "management"
		default:
			msg.TISB = "unknown"
		}
	}

	return msg, nil
}

// decodeESBody decodes the 56-bit ME field carried by DF17/18, dispatching
// on its 5-bit type code to the appropriate BDS register decoder.
func decodeESBody(raw []byte, msg *DecodedMessage) error {
	me := newBitReader(raw[4:11])
	tc, err := me.readUint32(0, 5)
	if err != nil {
		return err
	}
	typeCode := uint64(tc)

	switch {
	case typeCode >= 1 && typeCode <= 4:
		p, err := decodeBDS08(me, typeCode)
		if err != nil {
			return err
		}
		msg.BDS = "08"
		msg.BDS08 = p
	case typeCode >= 5 && typeCode <= 8:
		p, err := decodeBDS06(me)
		if err != nil {
			return err
		}
		msg.BDS = "06"
		msg.BDS06 = p
	case typeCode == 19:
		p, err := decodeBDS09(me)
		if err != nil {
			return err
		}
		msg.BDS = "09"
		msg.BDS09 = p
	case (typeCode >= 9 && typeCode <= 18) || (typeCode >= 20 && typeCode <= 22):
		p, err := decodeBDS05(me, typeCode)
		if err != nil {
			return err
		}
		msg.BDS = "05"
		msg.BDS05 = p
	case typeCode == 28:
		p, err := decodeBDS61(me)
		if err != nil {
			return err
		}
		msg.BDS = "61"
		msg.BDS61 = p
	case typeCode == 29:
		p, err := decodeBDS62(me)
		if err != nil {
			return err
		}
		msg.BDS = "62"
		msg.BDS62 = p
	case typeCode == 31:
		p, err := decodeBDS65(me)
		if err != nil {
			return err
		}
		msg.BDS = "65"
		msg.BDS65 = p
	}
	return nil
}

// decodeCommBBody infers and decodes the Comm-B register carried in
// DF20/21's 56-bit MB field.
func decodeCommBBody(raw []byte, msg *DecodedMessage) error {
	mb := newBitReader(raw[4:11])
	bds, err := inferBDS(mb, msg)
	if err != nil {
		return err
	}
	msg.BDS = bds
	return nil
}

func hexICAO(v uint32) string {
	return hex.EncodeToString([]byte{byte(v >> 16), byte(v >> 8), byte(v)})
}

func dfName(df int) string {
	switch df {
	case 0:
		return "DF0"
	case 4:
		return "DF4"
	case 5:
		return "DF5"
	case 11:
		return "DF11"
	case 16:
		return "DF16"
	case 17:
		return "DF17"
	case 18:
		return "DF18"
	case 20:
		return "DF20"
	case 21:
		return "DF21"
	default:
		return "DF24"
	}
}

func decodeVerticalStatus(first byte) string {
	if first&0x04 != 0 {
		return "ground"
	}
	return "airborne"
}

var flightStatusTable = []string{
	"no alert, no SPI, airborne",
	"no alert, no SPI, on ground",
	"alert, no SPI, airborne",
	"alert, no SPI, on ground",
	"alert, SPI",
	"no alert, SPI",
	"reserved",
	"not assigned",
}

func decodeFlightStatus(first byte) string {
	fs := first & 0x07
	if int(fs) < len(flightStatusTable) {
		return flightStatusTable[fs]
	}
	return "unknown"
}
