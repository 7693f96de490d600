package trips

import "time"

// Default segmentation thresholds. A gap above either one forces a trip
// boundary between consecutive fixes of the same device.
const (
	DefaultMaxGapSeconds = 1500.0
	DefaultMaxJumpKM     = 2.0
)

// Point is a validated GPS fix. Every Point downstream of the validator
// has a non-empty trimmed DeviceID, Lat in [-90,90] and Lon in
// [-180,180].
type Point struct {
	DeviceID  string
	Lat       float64
	Lon       float64
	Timestamp time.Time
}

// RejectReason identifies why a row was dropped during validation.
type RejectReason string

const (
	RejectEmptyDeviceID    RejectReason = "empty device_id"
	RejectNonNumericCoords RejectReason = "non-numeric lat/lon"
	RejectCoordsOutOfRange RejectReason = "coords out of range"
	RejectInvalidTimestamp RejectReason = "invalid timestamp"
)

// RejectRecord describes a dropped row with enough context to diagnose
// it: the 1-based source line, the reason, and the original field
// values. Rejects never re-enter the pipeline.
type RejectRecord struct {
	LineNo    int
	Reason    RejectReason
	RawFields []string
}

// DeviceTrack is one device's fixes sorted ascending by timestamp,
// ties broken by original input order.
type DeviceTrack struct {
	DeviceID string
	Points   []Point
}

// Trip is a maximal contiguous run of a device track with no internal
// time or distance gap. Always non-empty.
type Trip struct {
	DeviceID string
	Points   []Point
}

// TripStats holds the derived kinematics for one trip at full
// precision. Rounding to display precision is the formatter's job.
type TripStats struct {
	PointCount      int
	TotalDistanceKM float64
	DurationMin     float64
	AvgSpeedKMH     float64
	MaxSpeedKMH     float64
	StartTime       time.Time
	EndTime         time.Time
}

// Thresholds are the gap limits applied by the Segmenter.
type Thresholds struct {
	MaxGapSeconds float64
	MaxJumpKM     float64
}

// DefaultThresholds returns the standard 25-minute / 2 km limits.
func DefaultThresholds() Thresholds {
	return Thresholds{MaxGapSeconds: DefaultMaxGapSeconds, MaxJumpKM: DefaultMaxJumpKM}
}
