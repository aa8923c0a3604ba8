package source

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
)

func phoebeRows() []Row {
	t0 := time.Date(2012, time.June, 14, 0, 0, 0, 0, time.UTC)
	return []Row{
		{SID: "2012166N09269", Name: "PHOEBE", Season: 2012, Timestamp: t0, Lat: 9.3, Lon: -91.2, Wind: 30, Pressure: 1004},
		{SID: "2012166N09269", Name: "PHOEBE", Season: 2012, Timestamp: t0.Add(6 * time.Hour), Lat: math.NaN(), Lon: -91.8, Wind: 35, Pressure: 1002},
		{SID: "1999001N10200", Name: "KIRRILY", Season: 1999, Timestamp: t0.AddDate(-13, 0, 0), Lat: 10.1, Lon: -160.0, Wind: 50, Pressure: 990},
	}
}

func TestTabularHasStorm(t *testing.T) {
	s := NewTabular(phoebeRows())

	assert.True(t, s.HasStorm("PHOEBE", domain.IDModeName))
	assert.True(t, s.HasStorm("2012166N09269", domain.IDModeSID))
	assert.False(t, s.HasStorm("PHOEBE", domain.IDModeSID), "name must not match in sid mode")
	assert.False(t, s.HasStorm("2012166N09269", domain.IDModeName), "sid must not match in name mode")
	assert.False(t, s.HasStorm("IRENE", domain.IDModeName))
	assert.False(t, s.HasStorm("phoebe", domain.IDModeName), "matching is case-sensitive")
}

func TestTabularCandidates(t *testing.T) {
	s := NewTabular(phoebeRows())

	got := s.Candidates("PHOEBE", domain.IDModeName)
	require.Len(t, got, 2, "both PHOEBE rows are candidates, validity is not the adapter's concern")
	assert.Equal(t, "2012166N09269", got[0].StormID)
	assert.Equal(t, "PHOEBE", got[0].Name)
	assert.True(t, got[0].Complete())
	assert.False(t, got[1].Complete(), "NaN latitude row survives until extraction filters it")

	bySID := s.Candidates("2012166N09269", domain.IDModeSID)
	require.Len(t, bySID, 2)
	assert.Equal(t, got[0], bySID[0])
	assert.True(t, math.IsNaN(bySID[1].Lat))

	assert.Empty(t, s.Candidates("IRENE", domain.IDModeName))
}

func TestTabularEmpty(t *testing.T) {
	s := NewTabular(nil)

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.HasStorm("PHOEBE", domain.IDModeName))
	assert.Empty(t, s.Candidates("PHOEBE", domain.IDModeName))
}
