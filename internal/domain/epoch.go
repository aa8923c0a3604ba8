package domain

import (
	"math"
	"time"
)

// Epoch is the reference date for IBTrACS numeric time offsets: day zero of
// the modified Julian calendar, 1858-11-17T00:00:00Z.
var Epoch = time.Date(1858, time.November, 17, 0, 0, 0, 0, time.UTC)

// FromEpochDays converts a fractional day offset from Epoch to an absolute
// UTC timestamp, rounded to the nearest second to absorb float noise in the
// source arrays.
func FromEpochDays(days float64) time.Time {
	seconds := math.Round(days * 86400)
	return Epoch.Add(time.Duration(seconds) * time.Second)
}
