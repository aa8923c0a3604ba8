// Command trackctl extracts a single storm track from a local dataset file
// and prints it as JSON. It runs the same parsing and extraction code as the
// trackd service, which makes it handy for spot checks and fixture generation.
//
// Usage:
//
//	go run ./cmd/trackctl \
//	  -input hurdat2-1851-2023.txt \
//	  -format hurdat2 \
//	  -storm IRENE \
//	  -mode name
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
	"github.com/couchcryptid/cyclone-track-service/internal/extract"
	"github.com/couchcryptid/cyclone-track-service/internal/loader"
	"github.com/couchcryptid/cyclone-track-service/internal/observability"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	input := flag.String("input", "", "path to the dataset file")
	format := flag.String("format", "", "dataset format: hurdat2, ibtracs, or geojson")
	storm := flag.String("storm", "", "storm identifier to extract")
	mode := flag.String("mode", "name", "identifier mode: name or sid")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	out := flag.String("out", "", "output path (stdout when empty)")
	flag.Parse()

	if *input == "" || *format == "" || *storm == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -input, -format, -storm")
	}
	if !loader.KnownFormat(*format) {
		return fmt.Errorf("unknown format %q", *format)
	}
	idMode := domain.IDMode(*mode)
	if !idMode.Valid() {
		return fmt.Errorf("unknown identifier mode %q", *mode)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return fmt.Errorf("reading dataset: %w", err)
	}

	src, err := loader.Parse(*format, data)
	if err != nil {
		return fmt.Errorf("parsing dataset: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	extractor := extract.New(logger, observability.NewMetrics())

	track, err := extractor.Extract(src, *format, *storm, idMode)
	if err != nil {
		return err
	}

	var encoded []byte
	if *pretty {
		encoded, err = json.MarshalIndent(track, "", "  ")
	} else {
		encoded, err = json.Marshal(track)
	}
	if err != nil {
		return fmt.Errorf("encoding track: %w", err)
	}
	encoded = append(encoded, '\n')

	if *out == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(*out, encoded, 0o600)
}
