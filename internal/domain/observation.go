package domain

import (
	"math"
	"time"

	"github.com/paulmach/orb/geojson"
)

// MissingSentinel marks a wind or pressure value that was never recorded.
// It is a dataset convention, not a physical reading.
const MissingSentinel = -9999.0

// IDMode selects which identifier field a storm lookup matches against.
type IDMode string

const (
	// IDModeName matches the uppercase human-readable storm name.
	IDModeName IDMode = "name"
	// IDModeSID matches the structured storm identifier.
	IDModeSID IDMode = "sid"
)

// Valid reports whether m is a recognized identifier mode.
func (m IDMode) Valid() bool {
	return m == IDModeName || m == IDModeSID
}

// Observation is one fixed-time sample of a storm's position and intensity.
type Observation struct {
	StormID   string    `json:"storm_id"`
	Name      string    `json:"name,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Wind      float64   `json:"wind"`     // knots
	Pressure  float64   `json:"pressure"` // millibars

	// Geometry carries the source spatial value for geometry-attributed
	// rows. It stays aligned with Lat/Lon for the same observation.
	Geometry *geojson.Geometry `json:"geometry,omitempty"`
}

// HasPosition reports whether both coordinates are real numbers.
func (o Observation) HasPosition() bool {
	return !math.IsNaN(o.Lat) && !math.IsNaN(o.Lon)
}

// HasWind reports whether the wind reading is a physical value.
func (o Observation) HasWind() bool {
	return o.Wind != MissingSentinel
}

// HasPressure reports whether the pressure reading is a physical value.
func (o Observation) HasPressure() bool {
	return o.Pressure != MissingSentinel
}

// Complete reports whether the observation passes every validity predicate
// and may appear in a Track.
func (o Observation) Complete() bool {
	return o.HasPosition() && o.HasWind() && o.HasPressure()
}

// Track is an ordered sequence of complete observations for one storm,
// sorted by timestamp ascending. A track with zero observations is a valid
// result, distinct from the storm being absent from the dataset.
type Track struct {
	Dataset      string        `json:"dataset,omitempty"`
	StormID      string        `json:"storm_id"`
	Observations []Observation `json:"observations"`
	ExtractedAt  time.Time     `json:"extracted_at"`
}

// NewTrack builds a Track and stamps the extraction time from the package
// clock, so tests can freeze it via SetClock.
func NewTrack(dataset, stormID string, observations []Observation) Track {
	return Track{
		Dataset:      dataset,
		StormID:      stormID,
		Observations: observations,
		ExtractedAt:  clock.Now().UTC(),
	}
}

// Empty reports whether the track carries no observations.
func (t Track) Empty() bool {
	return len(t.Observations) == 0
}

// Span returns the first and last observation timestamps. ok is false for
// an empty track.
func (t Track) Span() (first, last time.Time, ok bool) {
	if t.Empty() {
		return time.Time{}, time.Time{}, false
	}
	return t.Observations[0].Timestamp, t.Observations[len(t.Observations)-1].Timestamp, true
}

// PeakWind returns the maximum wind reading in knots. ok is false for an
// empty track.
func (t Track) PeakWind() (wind float64, ok bool) {
	if t.Empty() {
		return 0, false
	}
	wind = t.Observations[0].Wind
	for _, o := range t.Observations[1:] {
		if o.Wind > wind {
			wind = o.Wind
		}
	}
	return wind, true
}

// MinPressure returns the minimum central pressure in millibars. ok is
// false for an empty track.
func (t Track) MinPressure() (pressure float64, ok bool) {
	if t.Empty() {
		return 0, false
	}
	pressure = t.Observations[0].Pressure
	for _, o := range t.Observations[1:] {
		if o.Pressure < pressure {
			pressure = o.Pressure
		}
	}
	return pressure, true
}
