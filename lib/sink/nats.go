// Package sink holds the thin output adapters a decode1090 deployment
// wires the decoder into: NATS pub/sub, ClickHouse/PostgreSQL storage,
// and GeoJSON snapshot export. All of these are "external collaborator"
// concerns per the specification's out-of-scope list — implemented here
// because a complete deployment needs somewhere to send decoded records,
// but none of this logic participates in decoding itself.
package sink

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/nats-io/nats.go"

	"github.com/xoolive/rs1090/lib/tracker/mode_s"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// NatsSink publishes each decoded record as JSON to a per-aircraft
// subject, mirroring the teacher's NATS-based fan-out.
type NatsSink struct {
	conn *nats.Conn
}

// NewNatsSink connects to a NATS server at url.
func NewNatsSink(url string) (*NatsSink, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &NatsSink{conn: conn}, nil
}

// Publish sends msg to modes1090.<icao24>.
func (s *NatsSink) Publish(msg *mode_s.DecodedMessage) error {
	body, err := jsonAPI.Marshal(msg)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("modes1090.%s", msg.ICAO)
	return s.conn.Publish(subject, body)
}

// Close closes the underlying NATS connection without draining it.
func (s *NatsSink) Close() {
	s.conn.Close()
}
