package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal precondition errors. Any of these aborts the whole run before
// a single data row is processed.
var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrMissingColumn = errors.New("required column missing")
)

// candidate delimiters, sniffed from the header line.
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// DetectDelimiter picks the most frequent candidate delimiter in the
// header line. Ties and absence fall back to comma.
func DetectDelimiter(headerLine string) rune {
	best := ','
	bestCount := 0
	tied := false
	for _, d := range candidateDelimiters {
		n := strings.Count(headerLine, string(d))
		switch {
		case n > bestCount:
			best = d
			bestCount = n
			tied = false
		case n == bestCount && n > 0 && d != best:
			tied = true
		}
	}
	if tied || bestCount == 0 {
		return ','
	}
	return best
}

// ColumnMap holds the resolved 0-based positions of the four logical
// columns within a row.
type ColumnMap struct {
	Device int
	Lat    int
	Lon    int
	Time   int
}

// Header aliases, matched case-insensitively after whitespace
// normalization.
var (
	deviceAliases = []string{"device_id", "deviceid", "id"}
	latAliases    = []string{"lat", "latitude"}
	lonAliases    = []string{"lon", "lng", "longitude"}
	timeAliases   = []string{"timestamp", "time", "datetime", "ts"}
)

// ResolveHeader maps header fields to logical column positions. The
// first field matching an alias wins for each role. A missing role is
// fatal.
func ResolveHeader(fields []string) (ColumnMap, error) {
	cm := ColumnMap{Device: -1, Lat: -1, Lon: -1, Time: -1}
	for i, h := range fields {
		norm := normalizeHeader(h)
		switch {
		case cm.Device < 0 && matchesAlias(norm, deviceAliases):
			cm.Device = i
		case cm.Lat < 0 && matchesAlias(norm, latAliases):
			cm.Lat = i
		case cm.Lon < 0 && matchesAlias(norm, lonAliases):
			cm.Lon = i
		case cm.Time < 0 && matchesAlias(norm, timeAliases):
			cm.Time = i
		}
	}
	switch {
	case cm.Device < 0:
		return cm, fmt.Errorf("%w: device id", ErrMissingColumn)
	case cm.Lat < 0:
		return cm, fmt.Errorf("%w: latitude", ErrMissingColumn)
	case cm.Lon < 0:
		return cm, fmt.Errorf("%w: longitude", ErrMissingColumn)
	case cm.Time < 0:
		return cm, fmt.Errorf("%w: timestamp", ErrMissingColumn)
	}
	return cm, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

func matchesAlias(norm string, aliases []string) bool {
	for _, a := range aliases {
		if norm == a {
			return true
		}
	}
	return false
}
