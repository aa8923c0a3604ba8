// Package source adapts the best-track record layouts (flat tabular rows,
// geometry-attributed rows, co-indexed attribute arrays) to the uniform
// per-observation view the extractor works over.
package source

import (
	"time"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
)

// RecordSource is the single capability the track extractor requires from a
// dataset format: report identifier membership up front, then yield raw
// observation candidates in source order.
type RecordSource interface {
	// HasStorm reports whether id exists in this source's identifier
	// universe under mode. Extraction checks it before any iteration so an
	// absent storm surfaces as a typed failure, never as an empty result.
	HasStorm(id string, mode domain.IDMode) bool

	// Candidates returns the raw observation candidates whose identifier
	// matches id under mode, in source order, before validity filtering.
	// Malformed records are dropped here and are not fatal.
	Candidates(id string, mode domain.IDMode) []domain.Observation
}

// Row is one flat tabular record with fields already parsed into their
// native types by a loader.
type Row struct {
	SID       string
	Name      string
	Season    int
	Timestamp time.Time
	Lat       float64
	Lon       float64
	Wind      float64
	Pressure  float64
}

func (r Row) identifier(mode domain.IDMode) string {
	if mode == domain.IDModeSID {
		return r.SID
	}
	return r.Name
}

func (r Row) observation() domain.Observation {
	return domain.Observation{
		StormID:   r.SID,
		Name:      r.Name,
		Timestamp: r.Timestamp,
		Lat:       r.Lat,
		Lon:       r.Lon,
		Wind:      r.Wind,
		Pressure:  r.Pressure,
	}
}
