package loader

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
)

const ibtracsSample = `SID,SEASON,NUMBER,BASIN,SUBBASIN,NAME,ISO_TIME,NATURE,LAT,LON,WMO_WIND,WMO_PRES
,Year,,,,,,,degrees_north,degrees_east,kts,mb
2012166N09269,2012,44,EP,MM,PHOEBE,2012-06-14 00:00:00,TS,9.3,-91.2,30,1004
2012166N09269,2012,44,EP,MM,PHOEBE,2012-06-14 06:00:00,TS,,-91.8,35,1002
2012166N09269,2012,44,EP,MM,PHOEBE,2012-06-14 12:00:00,TS,9.8,-92.1,,1000
1999001N10200,1999,1,SP,MM,KIRRILY,1999-01-01 00:00:00,TS,-10.1,160.0,50,990
`

func TestParseIBTrACS(t *testing.T) {
	rows, err := ParseIBTrACS(strings.NewReader(ibtracsSample))
	require.NoError(t, err)
	require.Len(t, rows, 4, "the units row is skipped")

	first := rows[0]
	assert.Equal(t, "2012166N09269", first.SID)
	assert.Equal(t, "PHOEBE", first.Name)
	assert.Equal(t, 2012, first.Season)
	assert.Equal(t, time.Date(2012, time.June, 14, 0, 0, 0, 0, time.UTC), first.Timestamp)
	assert.Equal(t, 9.3, first.Lat)
	assert.Equal(t, -91.2, first.Lon)
	assert.Equal(t, 30.0, first.Wind)
	assert.Equal(t, 1004.0, first.Pressure)

	assert.True(t, math.IsNaN(rows[1].Lat), "blank coordinate becomes NaN")
	assert.Equal(t, domain.MissingSentinel, rows[2].Wind, "blank wind becomes the sentinel")
	assert.Equal(t, -10.1, rows[3].Lat)
}

func TestParseIBTrACSMissingColumn(t *testing.T) {
	input := "SID,SEASON,NAME,ISO_TIME,LAT,LON,WMO_WIND\n"
	_, err := ParseIBTrACS(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WMO_PRES")
}

func TestParseIBTrACSEmptyBody(t *testing.T) {
	input := "SID,SEASON,NAME,ISO_TIME,LAT,LON,WMO_WIND,WMO_PRES\n"
	rows, err := ParseIBTrACS(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
