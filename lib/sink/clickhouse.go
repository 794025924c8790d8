package sink

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/xoolive/rs1090/lib/tracker/mode_s"
)

// ClickHouseConfig mirrors plane-watch-acars-parser/internal/storage/clickhouse.go's
// connection options struct.
type ClickHouseConfig struct {
	Addr     []string
	Database string
	Username string
	Password string
}

// ClickHouseSink writes decoded records into a MergeTree table, one
// single-row batch per Insert call.
type ClickHouseSink struct {
	conn driver.Conn
}

// OpenClickHouse connects and ensures the decoded_messages table exists.
func OpenClickHouse(ctx context.Context, cfg ClickHouseConfig) (*ClickHouseSink, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: cfg.Addr,
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		DialTimeout: 5 * time.Second,
		MaxOpenConns: 10,
	})
	if err != nil {
		return nil, err
	}
	s := &ClickHouseSink{conn: conn}
	if err := s.createSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ClickHouseSink) createSchema(ctx context.Context) error {
	return s.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS decoded_messages (
			icao24 String,
			df String,
			bds String,
			altitude Int64,
			squawk String,
			latitude Nullable(Float64),
			longitude Nullable(Float64),
			seen_at DateTime
		) ENGINE = MergeTree()
		ORDER BY (icao24, seen_at)
	`)
}

// Insert appends one decoded record, with an optional resolved position.
func (s *ClickHouseSink) Insert(ctx context.Context, msg *mode_s.DecodedMessage, lat, lon *float64, seenAt time.Time) error {
	batch, err := s.conn.PrepareBatch(ctx, "INSERT INTO decoded_messages")
	if err != nil {
		return err
	}
	if err := batch.Append(msg.ICAO, msg.DF, msg.BDS, msg.Altitude, msg.Squawk, lat, lon, seenAt); err != nil {
		return err
	}
	return batch.Send()
}
