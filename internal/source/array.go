package source

import (
	"fmt"
	"math"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
)

// Array exposes the NetCDF layout: one array per attribute, all co-indexed.
// Identifiers arrive as fixed-width character arrays and are decoded once
// at construction; an entry whose identifier cannot be decoded never
// matches. Positional order stands in for temporal order, since records are
// emitted chronologically within a storm's contiguous index block.
type Array struct {
	ids      []string // decoded once; "" marks an undecodable entry
	timeDays []float64
	lat      []float64
	lon      []float64
	wind     []float64
	pressure []float64
	universe map[string]struct{}
}

// NewArray builds an array source from co-indexed attribute slices. All six
// slices must share one length; timestamps are fractional-day offsets from
// [domain.Epoch].
func NewArray(sids [][]byte, timeDays, lat, lon, wind, pressure []float64) (*Array, error) {
	n := len(sids)
	for _, arr := range [][]float64{timeDays, lat, lon, wind, pressure} {
		if len(arr) != n {
			return nil, fmt.Errorf("co-indexed arrays must share one length: sid=%d time=%d lat=%d lon=%d wind=%d pressure=%d",
				len(sids), len(timeDays), len(lat), len(lon), len(wind), len(pressure))
		}
	}

	s := &Array{
		ids:      make([]string, n),
		timeDays: timeDays,
		lat:      lat,
		lon:      lon,
		wind:     wind,
		pressure: pressure,
		universe: make(map[string]struct{}),
	}
	for i, raw := range sids {
		id, err := domain.DecodeSID(raw)
		if err != nil {
			// Malformed identifier: the entry is unreachable but not fatal.
			continue
		}
		s.ids[i] = id
		s.universe[id] = struct{}{}
	}
	return s, nil
}

// Len returns the shared array length, including undecodable entries.
func (s *Array) Len() int { return len(s.ids) }

// HasStorm reports membership in the decoded identifier universe. The
// array layout carries no name field, so only SID mode can match.
func (s *Array) HasStorm(id string, mode domain.IDMode) bool {
	if mode != domain.IDModeSID {
		return false
	}
	_, ok := s.universe[id]
	return ok
}

func (s *Array) Candidates(id string, mode domain.IDMode) []domain.Observation {
	if mode != domain.IDModeSID {
		return nil
	}
	var out []domain.Observation
	for i, sid := range s.ids {
		if sid != id {
			continue
		}
		if math.IsNaN(s.timeDays[i]) {
			// Malformed timestamp offset: drop the record, keep going.
			continue
		}
		out = append(out, domain.Observation{
			StormID:   sid,
			Timestamp: domain.FromEpochDays(s.timeDays[i]),
			Lat:       s.lat[i],
			Lon:       s.lon[i],
			Wind:      s.wind[i],
			Pressure:  s.pressure[i],
		})
	}
	return out
}
