package trips

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-mobility-tools/gpsfix-to-geojson/geomath"
)

func TestComputeStatsSinglePoint(t *testing.T) {
	p := fix(0, 48, 11)
	stats := ComputeStats([]Point{p})

	assert.Equal(t, 1, stats.PointCount)
	assert.Zero(t, stats.TotalDistanceKM)
	assert.Zero(t, stats.DurationMin)
	assert.Zero(t, stats.AvgSpeedKMH)
	assert.Zero(t, stats.MaxSpeedKMH)
	assert.True(t, stats.StartTime.Equal(stats.EndTime))
	assert.True(t, stats.StartTime.Equal(p.Timestamp))
}

func TestComputeStatsTwoPoints(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	a := Point{DeviceID: "bus-1", Lat: 0, Lon: 0, Timestamp: start}
	b := Point{DeviceID: "bus-1", Lat: 0, Lon: 1, Timestamp: start.Add(time.Hour)}

	stats := ComputeStats([]Point{a, b})
	wantKM := geomath.HaversineKM(0, 0, 0, 1)

	assert.Equal(t, 2, stats.PointCount)
	assert.InDelta(t, wantKM, stats.TotalDistanceKM, 1e-9)
	assert.InDelta(t, 60, stats.DurationMin, 1e-9)
	assert.InDelta(t, wantKM, stats.AvgSpeedKMH, 1e-9)
	assert.InDelta(t, wantKM, stats.MaxSpeedKMH, 1e-9)
	assert.True(t, stats.StartTime.Equal(start))
	assert.True(t, stats.EndTime.Equal(start.Add(time.Hour)))
}

func TestComputeStatsMaxPicksFastestSegment(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	points := []Point{
		{DeviceID: "d", Lat: 48, Lon: 11, Timestamp: start},
		// ~0.5 km in 10 min → 3 km/h
		{DeviceID: "d", Lat: 48 + 0.5*latPerKM, Lon: 11, Timestamp: start.Add(10 * time.Minute)},
		// ~1.5 km in 2 min → 45 km/h
		{DeviceID: "d", Lat: 48 + 2.0*latPerKM, Lon: 11, Timestamp: start.Add(12 * time.Minute)},
	}

	stats := ComputeStats(points)
	assert.InDelta(t, 45, stats.MaxSpeedKMH, 1.0)
	assert.Greater(t, stats.MaxSpeedKMH, stats.AvgSpeedKMH)
}

func TestComputeStatsZeroDurationSegmentsExcludedFromMax(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	points := []Point{
		{DeviceID: "d", Lat: 48, Lon: 11, Timestamp: start},
		{DeviceID: "d", Lat: 48 + 1.0*latPerKM, Lon: 11, Timestamp: start},
	}

	stats := ComputeStats(points)
	require.Equal(t, 2, stats.PointCount)
	assert.Greater(t, stats.TotalDistanceKM, 0.0, "distance still accumulates")
	assert.Zero(t, stats.DurationMin)
	assert.Zero(t, stats.AvgSpeedKMH, "no duration means no average speed")
	assert.Zero(t, stats.MaxSpeedKMH, "zero-duration segments are excluded from the max")
}

func TestComputeStatsFullPrecision(t *testing.T) {
	// The calculator must not round; display rounding happens in the
	// formatter.
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	points := []Point{
		{DeviceID: "d", Lat: 48, Lon: 11, Timestamp: start},
		{DeviceID: "d", Lat: 48.0031415, Lon: 11.0027182, Timestamp: start.Add(137 * time.Second)},
	}

	stats := ComputeStats(points)
	want := geomath.HaversineKM(48, 11, 48.0031415, 11.0027182)
	assert.Equal(t, want, stats.TotalDistanceKM)
	assert.Equal(t, 137.0/60, stats.DurationMin)
}
