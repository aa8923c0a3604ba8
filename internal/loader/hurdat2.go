package loader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
	"github.com/couchcryptid/cyclone-track-service/internal/source"
)

// hurdat2HeaderRe matches a storm header line's identifier field, e.g.
// "AL092011": two-letter basin, storm number, season.
var hurdat2HeaderRe = regexp.MustCompile(`^[A-Z]{2}\d{6}$`)

// ParseHURDAT2 parses the NHC best-track text format into tabular rows.
// The file alternates storm header lines ("AL092011, IRENE, 39,") with
// six-hourly observation lines. Missing wind (-99) and pressure (-999)
// values are normalized to the service-wide sentinel. Malformed lines are
// skipped; only a read failure is fatal.
func ParseHURDAT2(r io.Reader) ([]source.Row, error) {
	var (
		rows    []source.Row
		curSID  string
		curName string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := splitTrimmed(line)
		if len(fields) >= 2 && hurdat2HeaderRe.MatchString(fields[0]) {
			curSID = fields[0]
			curName = fields[1]
			continue
		}

		if curSID == "" {
			// Observation line before any header: nothing to attach it to.
			continue
		}
		row, ok := parseHURDAT2Observation(fields, curSID, curName)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read hurdat2: %w", err)
	}
	return rows, nil
}

// parseHURDAT2Observation decodes one data line:
//
//	20110821, 0000,  , TS, 15.0N,  59.0W,  45, 1006, ...
//
// columns: date, time, record identifier, status, latitude, longitude,
// max wind (kt), min pressure (mb).
func parseHURDAT2Observation(fields []string, sid, name string) (source.Row, bool) {
	if len(fields) < 8 {
		return source.Row{}, false
	}

	ts, err := time.Parse("200601021504", fields[0]+fields[1])
	if err != nil {
		return source.Row{}, false
	}

	lat, err := parseHemisphere(fields[4], "N", "S")
	if err != nil {
		return source.Row{}, false
	}
	lon, err := parseHemisphere(fields[5], "E", "W")
	if err != nil {
		return source.Row{}, false
	}

	return source.Row{
		SID:       sid,
		Name:      name,
		Season:    ts.Year(),
		Timestamp: ts.UTC(),
		Lat:       lat,
		Lon:       lon,
		Wind:      normalizeMissing(fields[6]),
		Pressure:  normalizeMissing(fields[7]),
	}, true
}

// parseHemisphere converts a coordinate like "15.0N" or "59.0W" to signed
// degrees. South and west are negative.
func parseHemisphere(s, pos, neg string) (float64, error) {
	s = strings.TrimSpace(s)
	sign := 1.0
	switch {
	case strings.HasSuffix(s, pos):
		s = strings.TrimSuffix(s, pos)
	case strings.HasSuffix(s, neg):
		s = strings.TrimSuffix(s, neg)
		sign = -1.0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return sign * v, nil
}

// normalizeMissing parses a wind or pressure field, mapping the HURDAT2
// missing markers (-99, -999) and unparseable values to the sentinel.
func normalizeMissing(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) {
		return domain.MissingSentinel
	}
	return v
}

func splitTrimmed(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
