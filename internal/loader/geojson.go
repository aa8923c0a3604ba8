package loader

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
	"github.com/couchcryptid/cyclone-track-service/internal/source"
)

// ParseGeoJSON parses a point-feature collection, the GeoJSON rendering of
// the IBTrACS "points" shapefile. Feature properties reuse the shapefile
// attribute names (SID, NAME, ISO_TIME, LAT, LON, WMO_WIND, WMO_PRES).
// When LAT/LON properties are absent the point geometry supplies the
// coordinates; the geometry value itself is preserved on the row either
// way, positionally aligned with them. Features without a parseable
// timestamp are skipped.
func ParseGeoJSON(data []byte) ([]source.GeometryRow, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}

	var rows []source.GeometryRow
	for _, f := range fc.Features {
		row, ok := featureRow(f)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func featureRow(f *geojson.Feature) (source.GeometryRow, bool) {
	ts, err := time.Parse(ibtracsTimeLayout, propString(f, "ISO_TIME"))
	if err != nil {
		return source.GeometryRow{}, false
	}

	lat := propFloat(f, "LAT", math.NaN())
	lon := propFloat(f, "LON", math.NaN())
	if p, ok := f.Geometry.(orb.Point); ok {
		if math.IsNaN(lat) {
			lat = p[1]
		}
		if math.IsNaN(lon) {
			lon = p[0]
		}
	}

	return source.GeometryRow{
		Row: source.Row{
			SID:       propString(f, "SID"),
			Name:      propString(f, "NAME"),
			Season:    int(propFloat(f, "SEASON", 0)),
			Timestamp: ts.UTC(),
			Lat:       lat,
			Lon:       lon,
			Wind:      propFloat(f, "WMO_WIND", domain.MissingSentinel),
			Pressure:  propFloat(f, "WMO_PRES", domain.MissingSentinel),
		},
		Geometry: geojson.NewGeometry(f.Geometry),
	}, true
}

func propString(f *geojson.Feature, key string) string {
	if v, ok := f.Properties[key].(string); ok {
		return v
	}
	return ""
}

// propFloat reads a numeric property. JSON numbers decode as float64;
// string-typed attribute exports are parsed as a fallback.
func propFloat(f *geojson.Feature, key string, def float64) float64 {
	switch v := f.Properties[key].(type) {
	case float64:
		return v
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}
