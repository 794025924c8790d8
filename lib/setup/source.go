// Package setup wires CLI flags to frame sources: network listeners or
// files that feed the decoder a stream of hex frames. Adapted from the
// teacher's producer.Option URL-scheme handling (avr/beast/sbs1 network
// sources selected by scheme://host:port?tag=&refLat=&refLon=), replacing
// the teacher's BEAST/AVR/SBS1 producer with a single raw-hex-line Source
// interface, since this module's core only understands raw Mode S hex.
package setup

import (
	"bufio"
	"io"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const (
	Fetch  = "fetch"
	Listen = "listen"
	File   = "file"
	RefLat = "ref-lat"
	RefLon = "ref-lon"
	Tag    = "tag"
)

var prometheusInputFrames = promauto.NewCounter(prometheus.CounterOpts{
	Name: "rs1090_input_frames_total",
	Help: "The total number of raw hex frames read from all sources.",
})

// Source yields a stream of raw hex frames (one per line) on Frames,
// closing the channel when the underlying connection or file is
// exhausted or Close is called.
type Source struct {
	Tag    string
	RefLat float64
	RefLon float64
	Frames chan string

	closer func() error
}

// Close stops the source's read loop.
func (s *Source) Close() error {
	if s.closer != nil {
		return s.closer()
	}
	return nil
}

func IncludeSourceFlags(app *cli.App) {
	app.Flags = append(app.Flags,
		&cli.StringSliceFlag{
			Name:    Fetch,
			Usage:   "Dial a TCP source in URL form. tcp://host:port?tag=MYTAG&refLat=-31.0&refLon=115.0",
			EnvVars: []string{"SOURCE"},
		},
		&cli.StringSliceFlag{
			Name:    Listen,
			Usage:   "Listen for a TCP source in URL form. tcp://host:port?tag=MYTAG&refLat=-31.0&refLon=115.0",
			EnvVars: []string{"LISTEN"},
		},
		&cli.StringSliceFlag{
			Name:    File,
			Usage:   "Read hex frames from a file in URL form. file:///path/to/file?tag=MYTAG&refLat=-31.0&refLon=115.0",
			EnvVars: []string{"FILE"},
		},
		&cli.Float64Flag{
			Name:    RefLat,
			Usage:   "Reference latitude for local CPR decoding. Needs to be within ~45nm of the receiver.",
			EnvVars: []string{"REF_LAT", "LAT"},
		},
		&cli.Float64Flag{
			Name:    RefLon,
			Usage:   "Reference longitude for local CPR decoding. Needs to be within ~45nm of the receiver.",
			EnvVars: []string{"REF_LON", "LONG"},
		},
		&cli.StringFlag{
			Name:    Tag,
			Usage:   "A value included alongside decoded output, naming where it came from.",
			EnvVars: []string{"TAG"},
		},
	)
}

func HandleSourceFlags(c *cli.Context) ([]*Source, error) {
	refLat := c.Float64(RefLat)
	refLon := c.Float64(RefLon)
	defaultTag := c.String(Tag)

	var out []*Source
	for _, u := range c.StringSlice(Fetch) {
		src, err := dialSource(u, defaultTag, refLat, refLon)
		if err != nil {
			log.Error().Err(err).Str("url", u).Msg("failed to dial source")
			return nil, err
		}
		out = append(out, src)
	}
	for _, u := range c.StringSlice(Listen) {
		src, err := listenSource(u, defaultTag, refLat, refLon)
		if err != nil {
			log.Error().Err(err).Str("url", u).Msg("failed to listen for source")
			return nil, err
		}
		out = append(out, src)
	}
	for _, u := range c.StringSlice(File) {
		src, err := fileSource(u, defaultTag, refLat, refLon)
		if err != nil {
			log.Error().Err(err).Str("url", u).Msg("failed to open file source")
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}

func getRef(parsed *url.URL, key string, fallback float64) float64 {
	if parsed == nil || !parsed.Query().Has(key) {
		return fallback
	}
	f, err := strconv.ParseFloat(parsed.Query().Get(key), 64)
	if err != nil {
		log.Error().Err(err).Str("query_param", key).Msg("could not parse reference value")
		return fallback
	}
	return f
}

func getTag(parsed *url.URL, fallback string) string {
	if parsed != nil && parsed.Query().Has("tag") {
		return parsed.Query().Get("tag")
	}
	return fallback
}

func dialSource(rawURL, defaultTag string, defaultLat, defaultLon float64) (*Source, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	conn, err := net.Dial("tcp", parsed.Host)
	if err != nil {
		return nil, err
	}
	return newSource(conn, parsed, defaultTag, defaultLat, defaultLon, conn.Close), nil
}

func listenSource(rawURL, defaultTag string, defaultLat, defaultLon float64) (*Source, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	ln, err := net.Listen("tcp", parsed.Host)
	if err != nil {
		return nil, err
	}
	conn, err := ln.Accept()
	if err != nil {
		ln.Close()
		return nil, err
	}
	return newSource(conn, parsed, defaultTag, defaultLat, defaultLon, func() error {
		conn.Close()
		return ln.Close()
	}), nil
}

func fileSource(rawURL, defaultTag string, defaultLat, defaultLon float64) (*Source, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(parsed.Path)
	if err != nil {
		return nil, err
	}
	return newSource(f, parsed, defaultTag, defaultLat, defaultLon, f.Close), nil
}

func newSource(r io.Reader, parsed *url.URL, defaultTag string, defaultLat, defaultLon float64, closer func() error) *Source {
	src := &Source{
		Tag:    getTag(parsed, defaultTag),
		RefLat: getRef(parsed, "refLat", defaultLat),
		RefLon: getRef(parsed, "refLon", defaultLon),
		Frames: make(chan string, 64),
		closer: closer,
	}
	go src.readLoop(r)
	return src
}

func (s *Source) readLoop(r io.Reader) {
	defer close(s.Frames)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		prometheusInputFrames.Inc()
		s.Frames <- line
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Str("tag", s.Tag).Msg("source read loop ended")
	}
}
