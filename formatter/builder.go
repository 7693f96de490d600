package formatter

import (
	"fmt"
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/urban-mobility-tools/gpsfix-to-geojson/trips"
)

// Fixed style hints attached to every feature.
const (
	strokeWidth   = 3
	strokeOpacity = 1.0
)

// Display precision, in decimal places.
const (
	coordDigits    = 6
	distanceDigits = 3
	durationDigits = 1
	speedDigits    = 2
)

// Build assembles the output FeatureCollection: one LineString feature
// per trip in emission order, with computed statistics, the device and
// trip identifiers, and a stroke color from colorFn. Trip identifiers
// are sequential 1-based across the whole collection ("trip_1",
// "trip_2", ...).
func Build(tripList []trips.Trip, colorFn ColorFunc) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, trip := range tripList {
		stats := trips.ComputeStats(trip.Points)

		line := make(orb.LineString, 0, len(trip.Points))
		for _, p := range trip.Points {
			line = append(line, orb.Point{roundTo(p.Lon, coordDigits), roundTo(p.Lat, coordDigits)})
		}

		f := geojson.NewFeature(line)
		f.Properties = geojson.Properties{
			"trip_id":           fmt.Sprintf("trip_%d", i+1),
			"device_id":         trip.DeviceID,
			"point_count":       stats.PointCount,
			"total_distance_km": roundTo(stats.TotalDistanceKM, distanceDigits),
			"duration_min":      roundTo(stats.DurationMin, durationDigits),
			"avg_speed_kmh":     roundTo(stats.AvgSpeedKMH, speedDigits),
			"max_speed_kmh":     roundTo(stats.MaxSpeedKMH, speedDigits),
			"start_time":        iso8601UTC(stats.StartTime),
			"end_time":          iso8601UTC(stats.EndTime),
			"stroke":            colorFn(i),
			"stroke-width":      strokeWidth,
			"stroke-opacity":    strokeOpacity,
		}
		fc.Append(f)
	}
	return fc
}

func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}

func iso8601UTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
