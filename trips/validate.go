package trips

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Validator turns one raw row into a Point or a RejectRecord. The
// positional mapping of logical columns is resolved once by the caller
// and fixed at construction.
type Validator struct {
	deviceIdx int
	latIdx    int
	lonIdx    int
	timeIdx   int
}

// NewValidator creates a validator bound to the given column positions.
func NewValidator(deviceIdx, latIdx, lonIdx, timeIdx int) *Validator {
	return &Validator{deviceIdx: deviceIdx, latIdx: latIdx, lonIdx: lonIdx, timeIdx: timeIdx}
}

// Validate checks one raw row. Checks run in a fixed order and the
// first failure wins. Returns (point, nil, true) on success,
// (zero, reject, false) on a recoverable failure, and
// (zero, nil, false) for an entirely blank row, which is skipped
// silently and not counted as a reject.
func (v *Validator) Validate(fields []string, lineNo int) (Point, *RejectRecord, bool) {
	if allBlank(fields) {
		return Point{}, nil, false
	}

	reject := func(reason RejectReason) (Point, *RejectRecord, bool) {
		return Point{}, &RejectRecord{LineNo: lineNo, Reason: reason, RawFields: fields}, false
	}

	deviceID := strings.TrimSpace(fieldAt(fields, v.deviceIdx))
	if deviceID == "" {
		return reject(RejectEmptyDeviceID)
	}

	lat, latErr := ParseCoord(fieldAt(fields, v.latIdx))
	lon, lonErr := ParseCoord(fieldAt(fields, v.lonIdx))
	if latErr != nil || lonErr != nil {
		return reject(RejectNonNumericCoords)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return reject(RejectCoordsOutOfRange)
	}

	ts, err := ParseTimestamp(fieldAt(fields, v.timeIdx))
	if err != nil {
		return reject(RejectInvalidTimestamp)
	}

	return Point{DeviceID: deviceID, Lat: lat, Lon: lon, Timestamp: ts}, nil, true
}

func allBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func fieldAt(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

// ParseCoord parses a coordinate value. Besides plain decimal notation
// it accepts a comma as decimal separator ("14,5995"), a format some
// device exports use. NaN and infinities are rejected.
func ParseCoord(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}

// timestampLayouts are the calendar encodings accepted for fixes, tried
// in order. Layouts without a zone are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
}

// ParseTimestamp parses an absolute instant from any accepted encoding:
// the layouts above, or a bare integer taken as Unix epoch seconds
// (milliseconds when 13+ digits).
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n >= 1e12 || n <= -1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
