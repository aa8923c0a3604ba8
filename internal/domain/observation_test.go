package domain

import (
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservationPredicates(t *testing.T) {
	valid := Observation{Lat: 15.0, Lon: -59.0, Wind: 45, Pressure: 1006}

	tests := []struct {
		name     string
		mutate   func(o Observation) Observation
		complete bool
	}{
		{"all fields present", func(o Observation) Observation { return o }, true},
		{"NaN latitude", func(o Observation) Observation { o.Lat = math.NaN(); return o }, false},
		{"NaN longitude", func(o Observation) Observation { o.Lon = math.NaN(); return o }, false},
		{"sentinel wind", func(o Observation) Observation { o.Wind = MissingSentinel; return o }, false},
		{"sentinel pressure", func(o Observation) Observation { o.Pressure = MissingSentinel; return o }, false},
		{"zero wind is physical", func(o Observation) Observation { o.Wind = 0; return o }, true},
		{"negative longitude is physical", func(o Observation) Observation { o.Lon = -179.9; return o }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.complete, tt.mutate(valid).Complete())
		})
	}
}

func TestIDModeValid(t *testing.T) {
	assert.True(t, IDModeName.Valid())
	assert.True(t, IDModeSID.Valid())
	assert.False(t, IDMode("").Valid())
	assert.False(t, IDMode("fuzzy").Valid())
}

func TestNewTrackStampsClock(t *testing.T) {
	fixed := time.Date(2024, time.September, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	defer SetClock(nil)

	track := NewTrack("ibtracs", "2012166N09269", nil)

	assert.Equal(t, "ibtracs", track.Dataset)
	assert.Equal(t, "2012166N09269", track.StormID)
	assert.Equal(t, fixed, track.ExtractedAt)
	assert.True(t, track.Empty())
}

func TestTrackSummaries(t *testing.T) {
	t0 := time.Date(2011, time.August, 21, 0, 0, 0, 0, time.UTC)
	track := Track{
		StormID: "AL092011",
		Observations: []Observation{
			{Timestamp: t0, Wind: 45, Pressure: 1006},
			{Timestamp: t0.Add(6 * time.Hour), Wind: 80, Pressure: 957},
			{Timestamp: t0.Add(12 * time.Hour), Wind: 70, Pressure: 965},
		},
	}

	wind, ok := track.PeakWind()
	require.True(t, ok)
	assert.Equal(t, 80.0, wind)

	pressure, ok := track.MinPressure()
	require.True(t, ok)
	assert.Equal(t, 957.0, pressure)

	first, last, ok := track.Span()
	require.True(t, ok)
	assert.Equal(t, t0, first)
	assert.Equal(t, t0.Add(12*time.Hour), last)
}

func TestTrackSummariesEmpty(t *testing.T) {
	var track Track

	_, ok := track.PeakWind()
	assert.False(t, ok)
	_, ok = track.MinPressure()
	assert.False(t, ok)
	_, _, ok = track.Span()
	assert.False(t, ok)
}
