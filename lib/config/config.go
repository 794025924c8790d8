// Package config loads decoder configuration from environment variables,
// an optional config file, and CLI flags, the way the teacher's
// lib/setup/source.go layers REF_LAT/LAT-style env vars under explicit
// flags — generalized here to a single viper-backed Config struct.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds every setting a decode1090 deployment needs beyond the
// pure decoder: reference position for local CPR/FLARM resolution, sink
// connection strings, and store eviction policy.
type Config struct {
	RefLat float64
	RefLon float64

	NATSURL        string
	ClickHouseDSN  string
	PostgresDSN    string

	EvictAfterSeconds int
}

// Load builds a Config from (in ascending precedence) built-in defaults,
// a config file at path (if non-empty) and environment variables prefixed
// RS1090_. No command-line flags are bound here.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("rs1090")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("ref_lat", 0.0)
	v.SetDefault("ref_lon", 0.0)
	v.SetDefault("evict_after_seconds", 300)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Config{
		RefLat:            v.GetFloat64("ref_lat"),
		RefLon:            v.GetFloat64("ref_lon"),
		NATSURL:           v.GetString("nats_url"),
		ClickHouseDSN:     v.GetString("clickhouse_dsn"),
		PostgresDSN:       v.GetString("postgres_dsn"),
		EvictAfterSeconds: v.GetInt("evict_after_seconds"),
	}, nil
}
