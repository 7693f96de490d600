package formatter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-mobility-tools/gpsfix-to-geojson/trips"
)

func samplePoint(device string, lat, lon float64, minuteOffset int) trips.Point {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return trips.Point{
		DeviceID:  device,
		Lat:       lat,
		Lon:       lon,
		Timestamp: base.Add(time.Duration(minuteOffset) * time.Minute),
	}
}

func TestBuildFeatures(t *testing.T) {
	tripList := []trips.Trip{
		{DeviceID: "bus-1", Points: []trips.Point{
			samplePoint("bus-1", 48.1234567, 11.7654321, 0),
			samplePoint("bus-1", 48.13, 11.77, 10),
		}},
		{DeviceID: "bus-2", Points: []trips.Point{
			samplePoint("bus-2", 10, 20, 0),
		}},
	}

	fc := Build(tripList, DefaultPalette(len(tripList)))
	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	assert.Equal(t, "trip_1", first.Properties["trip_id"])
	assert.Equal(t, "bus-1", first.Properties["device_id"])
	assert.Equal(t, 2, first.Properties["point_count"])
	assert.Equal(t, 3, first.Properties["stroke-width"])
	assert.Equal(t, 1.0, first.Properties["stroke-opacity"])
	assert.Equal(t, "2024-05-01T10:00:00Z", first.Properties["start_time"])
	assert.Equal(t, "2024-05-01T10:10:00Z", first.Properties["end_time"])

	// Coordinates are [lon, lat] rounded to 6 decimals.
	line, ok := first.Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.Point{11.765432, 48.123457}, line[0])

	second := fc.Features[1]
	assert.Equal(t, "trip_2", second.Properties["trip_id"])
	assert.Equal(t, 0.0, second.Properties["total_distance_km"])
	assert.Equal(t, 0.0, second.Properties["duration_min"])
	assert.Equal(t, 0.0, second.Properties["avg_speed_kmh"])
	assert.Equal(t, 0.0, second.Properties["max_speed_kmh"])

	// Distinct trips get distinct strokes.
	assert.NotEqual(t, first.Properties["stroke"], second.Properties["stroke"])
}

func TestBuildEmpty(t *testing.T) {
	fc := Build(nil, DefaultPalette(0))
	doc, err := NewDocumentBuilder().BuildJSON(fc)
	require.NoError(t, err)

	var parsed struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(doc, &parsed))
	assert.Equal(t, "FeatureCollection", parsed.Type)
	assert.NotNil(t, parsed.Features)
	assert.Empty(t, parsed.Features)
}

func TestBuildJSONDeterministic(t *testing.T) {
	tripList := []trips.Trip{
		{DeviceID: "bus-1", Points: []trips.Point{samplePoint("bus-1", 48, 11, 0)}},
	}
	fc := Build(tripList, DefaultPalette(1))

	db := NewDocumentBuilder()
	a, err := db.BuildJSON(fc)
	require.NoError(t, err)
	b, err := db.BuildJSON(fc)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRoundingDoesNotReorderPoints(t *testing.T) {
	// Two points closer than the rounding step still come out as two
	// coordinates in input order.
	tripList := []trips.Trip{
		{DeviceID: "d", Points: []trips.Point{
			samplePoint("d", 48.10000004, 11.2, 0),
			samplePoint("d", 48.10000006, 11.2, 1),
		}},
	}
	fc := Build(tripList, DefaultPalette(1))
	line := fc.Features[0].Geometry.(orb.LineString)
	require.Len(t, line, 2)
	assert.Equal(t, line[0], line[1], "rounding may collapse values but never drops points")
}
