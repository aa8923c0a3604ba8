// Package loader parses best-track dataset files into record sources. Each
// loader normalizes its format's missing-value conventions at the boundary
// so the rest of the service sees one sentinel scheme.
package loader

import (
	"bytes"
	"fmt"

	"github.com/couchcryptid/cyclone-track-service/internal/source"
)

// Dataset formats accepted by Parse and the dataset registry.
const (
	FormatHURDAT2 = "hurdat2"
	FormatIBTrACS = "ibtracs"
	FormatGeoJSON = "geojson"
)

// KnownFormat reports whether format names a supported loader.
func KnownFormat(format string) bool {
	switch format {
	case FormatHURDAT2, FormatIBTrACS, FormatGeoJSON:
		return true
	}
	return false
}

// Parse loads raw dataset bytes into the record source for the named
// format.
func Parse(format string, data []byte) (source.RecordSource, error) {
	switch format {
	case FormatHURDAT2:
		rows, err := ParseHURDAT2(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return source.NewTabular(rows), nil
	case FormatIBTrACS:
		rows, err := ParseIBTrACS(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return source.NewTabular(rows), nil
	case FormatGeoJSON:
		rows, err := ParseGeoJSON(data)
		if err != nil {
			return nil, err
		}
		return source.NewGeometry(rows), nil
	}
	return nil, fmt.Errorf("unsupported dataset format %q", format)
}
