package source

import (
	"github.com/paulmach/orb/geojson"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
)

// GeometryRow is a tabular row with an attached spatial value, as produced
// by point-feature datasets. The geometry travels with the row so it stays
// positionally aligned with the row's coordinates.
type GeometryRow struct {
	Row
	Geometry *geojson.Geometry
}

// Geometry exposes geometry-attributed rows. Name is the native selection
// field for these datasets; SID lookups work when the loader populated one.
type Geometry struct {
	rows  []GeometryRow
	names map[string]struct{}
	sids  map[string]struct{}
}

// NewGeometry builds a geometry source from loader rows.
func NewGeometry(rows []GeometryRow) *Geometry {
	s := &Geometry{
		rows:  rows,
		names: make(map[string]struct{}),
		sids:  make(map[string]struct{}),
	}
	for _, r := range rows {
		if r.Name != "" {
			s.names[r.Name] = struct{}{}
		}
		if r.SID != "" {
			s.sids[r.SID] = struct{}{}
		}
	}
	return s
}

// Len returns the number of rows, across all storms.
func (s *Geometry) Len() int { return len(s.rows) }

func (s *Geometry) HasStorm(id string, mode domain.IDMode) bool {
	if mode == domain.IDModeSID {
		_, ok := s.sids[id]
		return ok
	}
	_, ok := s.names[id]
	return ok
}

func (s *Geometry) Candidates(id string, mode domain.IDMode) []domain.Observation {
	var out []domain.Observation
	for _, r := range s.rows {
		if r.identifier(mode) != id {
			continue
		}
		o := r.observation()
		o.Geometry = r.Geometry
		out = append(out, o)
	}
	return out
}
