package trips

import (
	"github.com/urban-mobility-tools/gpsfix-to-geojson/geomath"
)

// Segmenter splits a device track into trips at time or distance gaps.
type Segmenter struct {
	thresholds Thresholds
}

// NewSegmenter creates a segmenter with the given gap thresholds.
func NewSegmenter(t Thresholds) *Segmenter {
	return &Segmenter{thresholds: t}
}

// Segment walks the track's time-ordered points and produces maximal
// runs separated by gaps: a new trip starts whenever the time delta to
// the previous accepted point exceeds MaxGapSeconds or the great-circle
// distance exceeds MaxJumpKM. A single-point track yields a single
// one-point trip.
func (s *Segmenter) Segment(track DeviceTrack) []Trip {
	if len(track.Points) == 0 {
		return nil
	}

	var result []Trip
	current := []Point{track.Points[0]}
	for _, curr := range track.Points[1:] {
		prev := current[len(current)-1]
		dt := curr.Timestamp.Sub(prev.Timestamp).Seconds()
		dist := geomath.HaversineKM(prev.Lat, prev.Lon, curr.Lat, curr.Lon)
		if dt > s.thresholds.MaxGapSeconds || dist > s.thresholds.MaxJumpKM {
			result = append(result, Trip{DeviceID: track.DeviceID, Points: current})
			current = []Point{curr}
			continue
		}
		current = append(current, curr)
	}
	result = append(result, Trip{DeviceID: track.DeviceID, Points: current})
	return result
}
