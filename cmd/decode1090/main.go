// Command decode1090 is the CLI entry point: batch-decode hex frames read
// from stdin, stream realtime state as a table, print the current aircraft
// as GeoJSON, or serve Prometheus metrics. Structured the
// way the teacher's cmd/ binaries wire urfave/cli + zerolog + prometheus.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/xoolive/rs1090/lib/batch"
	"github.com/xoolive/rs1090/lib/config"
	"github.com/xoolive/rs1090/lib/logging"
	"github.com/xoolive/rs1090/lib/sink"
	"github.com/xoolive/rs1090/lib/tracker/mode_s"
	"github.com/xoolive/rs1090/lib/tracker/realtime"
)

func main() {
	app := &cli.App{
		Name:  "decode1090",
		Usage: "decode Mode S / ADS-B / FLARM frames",
		Commands: []*cli.Command{
			decodeCommand(),
			realtimeCommand(),
			aircraftCommand(),
			serveMetricsCommand(),
		},
		Before: func(c *cli.Context) error {
			logging.SetLoggingLevel(c)
			logging.ConfigureForCli()
			return nil
		},
	}
	logging.IncludeVerbosityFlags(app)

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("decode1090 failed")
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "decode one hex frame per line from stdin",
		Action: func(c *cli.Context) error {
			scanner := bufio.NewScanner(os.Stdin)
			frames := [][]byte{}
			for scanner.Scan() {
				raw, err := mode_s.ParseHex(scanner.Text())
				if err != nil {
					log.Warn().Err(err).Str("line", scanner.Text()).Msg("skipping malformed frame")
					continue
				}
				frames = append(frames, raw)
			}
			_, results := batch.Decode(context.Background(), frames, 4)
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(os.Stderr, "frame %d: %v\n", r.Index, r.Err)
					continue
				}
				body, _ := r.Message.MarshalJSON()
				fmt.Println(string(body))
			}
			return nil
		},
	}
}

// ingestStdin feeds stdin's hex lines into a fresh realtime store rooted
// at the configured reference position and returns its final snapshot.
func ingestStdin() ([]realtime.AircraftState, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	ref := orb.Point{cfg.RefLon, cfg.RefLat}
	store := realtime.New(&ref)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		raw, err := mode_s.ParseHex(scanner.Text())
		if err != nil {
			continue
		}
		if _, err := store.Ingest(raw, time.Now()); err != nil {
			log.Debug().Err(err).Msg("frame dropped")
		}
	}
	return store.Snapshot(), nil
}

func realtimeCommand() *cli.Command {
	return &cli.Command{
		Name:  "realtime",
		Usage: "stream hex frames from stdin into the realtime store, print a table",
		Action: func(c *cli.Context) error {
			states, err := ingestStdin()
			if err != nil {
				return err
			}
			printSnapshot(states)
			return nil
		},
	}
}

func aircraftCommand() *cli.Command {
	return &cli.Command{
		Name:  "aircraft",
		Usage: "stream hex frames from stdin into the realtime store, print as GeoJSON",
		Action: func(c *cli.Context) error {
			states, err := ingestStdin()
			if err != nil {
				return err
			}
			body, err := json.Marshal(sink.GeoJSONSnapshot(states))
			if err != nil {
				return err
			}
			fmt.Println(string(body))
			return nil
		},
	}
}

func printSnapshot(states []realtime.AircraftState) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ICAO24", "Callsign", "Squawk", "Altitude", "Lat", "Lon"})
	for _, st := range states {
		lat, lon := "", ""
		if st.Position != nil {
			lat = fmt.Sprintf("%.5f", st.Position.Lat())
			lon = fmt.Sprintf("%.5f", st.Position.Lon())
		}
		table.Append([]string{st.ICAO, st.Callsign, st.Squawk, fmt.Sprintf("%d", st.Altitude), lat, lon})
	}
	table.Render()
}

func serveMetricsCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve-metrics",
		Usage: "serve Prometheus metrics on :9090/metrics",
		Action: func(c *cli.Context) error {
			http.Handle("/metrics", promhttp.Handler())
			log.Info().Str("addr", ":9090").Msg("serving metrics")
			return http.ListenAndServe(":9090", nil)
		},
	}
}
