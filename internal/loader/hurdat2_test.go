package loader

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
)

const hurdat2Sample = `AL092011,               IRENE,      4,
20110821, 0000,  , TS, 15.0N,  59.0W,  45, 1006, 105,  105,   45,  120,    0,    0,    0,    0,    0,    0,    0,    0,
20110821, 0600,  , TS, 16.0N,  60.4W,  50, 1002, 120,  120,   60,  120,    0,    0,    0,    0,    0,    0,    0,    0,
20110821, 1200,  , TS, 16.8N,  61.9W,  60,  993, 120,  120,   60,  150,   60,   60,    0,   60,    0,    0,    0,    0,
20110824, 1200,  , HU, 24.5N,  76.1W, 100,  954, -999, -999, -999, -999, -999, -999, -999, -999, -999, -999, -999, -999,
AL011851,             UNNAMED,      1,
18510625, 0000,  , HU, 28.0N,  94.8W,  80,  -999, -99,  -99,  -99,  -99,  -99,  -99,  -99,  -99,  -99,  -99,  -99,  -99,
`

func TestParseHURDAT2(t *testing.T) {
	rows, err := ParseHURDAT2(strings.NewReader(hurdat2Sample))
	require.NoError(t, err)
	require.Len(t, rows, 5)

	first := rows[0]
	assert.Equal(t, "AL092011", first.SID)
	assert.Equal(t, "IRENE", first.Name)
	assert.Equal(t, 2011, first.Season)
	assert.Equal(t, time.Date(2011, time.August, 21, 0, 0, 0, 0, time.UTC), first.Timestamp)
	assert.Equal(t, 15.0, first.Lat)
	assert.Equal(t, -59.0, first.Lon, "western longitudes are negative")
	assert.Equal(t, 45.0, first.Wind)
	assert.Equal(t, 1006.0, first.Pressure)

	// Second header switches the current storm.
	last := rows[4]
	assert.Equal(t, "AL011851", last.SID)
	assert.Equal(t, "UNNAMED", last.Name)
	assert.Equal(t, 80.0, last.Wind)
	assert.Equal(t, domain.MissingSentinel, last.Pressure, "-999 normalizes to the sentinel")
}

func TestParseHURDAT2SkipsMalformedLines(t *testing.T) {
	input := `AL092011,               IRENE,      2,
not-a-date, 0000,  , TS, 15.0N,  59.0W,  45, 1006,
20110821, 0600,  , TS, 16.0N,  60.4W,  50, 1002,
short, line
`
	rows, err := ParseHURDAT2(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 50.0, rows[0].Wind)
}

func TestParseHURDAT2SkipsOrphanObservations(t *testing.T) {
	// Observation lines before any header have no storm to attach to.
	input := `20110821, 0000,  , TS, 15.0N,  59.0W,  45, 1006,
`
	rows, err := ParseHURDAT2(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseHemisphere(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		pos, neg string
		expected float64
	}{
		{"north", "15.0N", "N", "S", 15.0},
		{"south", "21.5S", "N", "S", -21.5},
		{"east", "138.2E", "E", "W", 138.2},
		{"west", "59.0W", "E", "W", -59.0},
		{"bare number", "12.5", "N", "S", 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHemisphere(tt.value, tt.pos, tt.neg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := parseHemisphere("garbage", "N", "S")
	assert.Error(t, err)
}
