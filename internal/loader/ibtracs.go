package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
	"github.com/couchcryptid/cyclone-track-service/internal/source"
)

// ibtracsTimeLayout is the ISO_TIME column format, e.g. "2012-06-14 12:00:00".
const ibtracsTimeLayout = "2006-01-02 15:04:05"

// ibtracsColumns are the header names this loader requires. The CSV carries
// ~160 columns; everything else is ignored.
var ibtracsColumns = []string{"SID", "SEASON", "NAME", "ISO_TIME", "LAT", "LON", "WMO_WIND", "WMO_PRES"}

// ParseIBTrACS parses the NCEI IBTrACS CSV export into tabular rows. The
// first row is the column header; the second is a units row, which fails
// timestamp parsing and is skipped like any other malformed row. Blank or
// unparseable coordinates become NaN; blank or unparseable wind/pressure
// become the sentinel, so the extractor's filtering rules apply uniformly.
func ParseIBTrACS(r io.Reader) ([]source.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read ibtracs header: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []source.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ibtracs record: %w", err)
		}
		row, ok := parseIBTrACSRecord(record, cols)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range ibtracsColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("ibtracs header missing column %q", required)
		}
	}
	return cols, nil
}

func parseIBTrACSRecord(record []string, cols map[string]int) (source.Row, bool) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	ts, err := time.Parse(ibtracsTimeLayout, field("ISO_TIME"))
	if err != nil {
		return source.Row{}, false
	}
	sid := field("SID")
	if sid == "" {
		return source.Row{}, false
	}

	season, _ := strconv.Atoi(field("SEASON"))

	return source.Row{
		SID:       sid,
		Name:      field("NAME"),
		Season:    season,
		Timestamp: ts.UTC(),
		Lat:       floatOrNaN(field("LAT")),
		Lon:       floatOrNaN(field("LON")),
		Wind:      floatOrSentinel(field("WMO_WIND")),
		Pressure:  floatOrSentinel(field("WMO_PRES")),
	}, true
}

func floatOrNaN(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func floatOrSentinel(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.MissingSentinel
	}
	return v
}
