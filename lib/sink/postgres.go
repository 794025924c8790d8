package sink

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"

	"github.com/xoolive/rs1090/lib/tracker/mode_s"
)

// PostgresSink is an alternate relational sink for deployments without
// ClickHouse, using sqlx + lib/pq with query logging wired through the
// same zerolog logger as the rest of the binary, per
// plane-watch-acars-parser/internal/storage/postgres.go's sqldb-logger
// pattern.
type PostgresSink struct {
	db *sqlx.DB
}

// OpenPostgres connects to dsn and ensures the decoded_messages table
// exists.
func OpenPostgres(dsn string) (*PostgresSink, error) {
	rawDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	logged := sqldblogger.OpenDriver(dsn, rawDB.Driver(), zerologadapter.New(log.Logger))
	db := sqlx.NewDb(logged, "postgres")

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS decoded_messages (
			icao24 TEXT NOT NULL,
			df TEXT NOT NULL,
			bds TEXT,
			altitude BIGINT,
			squawk TEXT,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			seen_at TIMESTAMPTZ NOT NULL
		)
	`); err != nil {
		return nil, err
	}
	return &PostgresSink{db: db}, nil
}

// Insert appends one decoded record via a named exec, following the
// teacher's sqlx.NamedExec idiom.
func (s *PostgresSink) Insert(msg *mode_s.DecodedMessage, lat, lon *float64, seenAt time.Time) error {
	_, err := s.db.NamedExec(`
		INSERT INTO decoded_messages (icao24, df, bds, altitude, squawk, latitude, longitude, seen_at)
		VALUES (:icao24, :df, :bds, :altitude, :squawk, :latitude, :longitude, :seen_at)
	`, map[string]interface{}{
		"icao24":    msg.ICAO,
		"df":        msg.DF,
		"bds":       msg.BDS,
		"altitude":  msg.Altitude,
		"squawk":    msg.Squawk,
		"latitude":  lat,
		"longitude": lon,
		"seen_at":   seenAt,
	})
	return err
}
