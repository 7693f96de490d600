package trips

import (
	"github.com/urban-mobility-tools/gpsfix-to-geojson/geomath"
)

// ComputeStats derives the kinematics for one trip's ordered points.
// Values are returned at full precision. For a single-point trip all
// distances, durations and speeds are zero and start equals end.
func ComputeStats(points []Point) TripStats {
	stats := TripStats{
		PointCount: len(points),
		StartTime:  points[0].Timestamp,
		EndTime:    points[len(points)-1].Timestamp,
	}

	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]
		segKM := geomath.HaversineKM(prev.Lat, prev.Lon, curr.Lat, curr.Lon)
		stats.TotalDistanceKM += segKM

		// Zero-duration segments are excluded from the max: they carry
		// no usable rate, only an undefined division.
		dtSec := curr.Timestamp.Sub(prev.Timestamp).Seconds()
		if dtSec > 0 {
			speed := segKM / (dtSec / 3600)
			if speed > stats.MaxSpeedKMH {
				stats.MaxSpeedKMH = speed
			}
		}
	}

	durSec := stats.EndTime.Sub(stats.StartTime).Seconds()
	if durSec < 0 {
		durSec = 0
	}
	stats.DurationMin = durSec / 60
	if stats.DurationMin > 0 {
		stats.AvgSpeedKMH = stats.TotalDistanceKM / (stats.DurationMin / 60)
	}
	return stats
}
