package source

import "github.com/couchcryptid/cyclone-track-service/internal/domain"

// Tabular exposes flat tabular rows (HURDAT2 text, IBTrACS CSV). Storms are
// addressable by name or by structured identifier; the caller picks the
// mode per lookup.
type Tabular struct {
	rows  []Row
	names map[string]struct{}
	sids  map[string]struct{}
}

// NewTabular builds a tabular source and indexes both identifier universes.
func NewTabular(rows []Row) *Tabular {
	s := &Tabular{
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
func (s *Tabular) Len() int { return len(s.rows) }

func (s *Tabular) HasStorm(id string, mode domain.IDMode) bool {
	if mode == domain.IDModeSID {
		_, ok := s.sids[id]
		return ok
	}
	_, ok := s.names[id]
	return ok
}

func (s *Tabular) Candidates(id string, mode domain.IDMode) []domain.Observation {
	var out []domain.Observation
	for _, r := range s.rows {
		if r.identifier(mode) != id {
			continue
		}
		out = append(out, r.observation())
	}
	return out
}
