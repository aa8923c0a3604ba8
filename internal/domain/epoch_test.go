package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEpochDays(t *testing.T) {
	tests := []struct {
		name     string
		days     float64
		expected time.Time
	}{
		{"day zero", 0, time.Date(1858, time.November, 17, 0, 0, 0, 0, time.UTC)},
		{"day one", 1, time.Date(1858, time.November, 18, 0, 0, 0, 0, time.UTC)},
		{"half day", 0.5, time.Date(1858, time.November, 17, 12, 0, 0, 0, time.UTC)},
		{"quarter day", 56092.25, time.Date(2012, time.June, 14, 6, 0, 0, 0, time.UTC)},
		{"modern date", 56092, time.Date(2012, time.June, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromEpochDays(tt.days))
		})
	}
}

func TestFromEpochDaysRoundsFloatNoise(t *testing.T) {
	// Offsets read from float32 arrays arrive slightly off a second boundary.
	got := FromEpochDays(56092.249999998)
	assert.Equal(t, time.Date(2012, time.June, 14, 6, 0, 0, 0, time.UTC), got)
}
