package mode_s

import "strings"

// aisCharset is the 6-bit IA5-subset alphabet used by ES identification
// messages (BDS08) and the BDS2,0 callsign register, indexed 0..63.
const aisCharset = "#ABCDEFGHIJKLMNOPQRSTUVWXYZ#####_###############0123456789######"

// decodeCallsign unpacks eight 6-bit characters from a 48-bit field,
// trimming trailing fill characters, the way the teacher's
// decodeFlightNumber walks the AIS charset per character.
func decodeCallsign(raw uint64) string {
	var b strings.Builder
	for i := 7; i >= 0; i-- {
		idx := (raw >> uint(i*6)) & 0x3F
		b.WriteByte(aisCharset[idx])
	}
	return strings.TrimRight(b.String(), "#_")
}
