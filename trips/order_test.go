package trips

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(device string, minuteOffset int) Point {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return Point{DeviceID: device, Lat: 48, Lon: 11, Timestamp: base.Add(time.Duration(minuteOffset) * time.Minute)}
}

func TestOrderByDeviceSortsByTimestamp(t *testing.T) {
	points := []Point{
		pt("bus-1", 30),
		pt("bus-1", 10),
		pt("bus-1", 20),
		pt("bus-1", 0),
	}

	tracks := OrderByDevice(points)
	require.Len(t, tracks, 1)
	track := tracks[0]
	for i := 1; i < len(track.Points); i++ {
		assert.False(t, track.Points[i].Timestamp.Before(track.Points[i-1].Timestamp),
			"track must be sorted ascending at index %d", i)
	}
}

func TestOrderByDeviceStableOnTies(t *testing.T) {
	a := pt("bus-1", 5)
	a.Lat = 1
	b := pt("bus-1", 5)
	b.Lat = 2
	c := pt("bus-1", 5)
	c.Lat = 3

	tracks := OrderByDevice([]Point{a, b, c})
	require.Len(t, tracks, 1)
	got := []float64{tracks[0].Points[0].Lat, tracks[0].Points[1].Lat, tracks[0].Points[2].Lat}
	assert.Equal(t, []float64{1, 2, 3}, got, "equal timestamps keep arrival order")
}

func TestOrderByDeviceEmissionOrder(t *testing.T) {
	points := []Point{
		pt("beta", 0),
		pt("Alpha", 0),
		pt("gamma-2", 0),
		pt("Gamma-10", 0),
	}

	tracks := OrderByDevice(points)
	ids := make([]string, len(tracks))
	for i, tr := range tracks {
		ids[i] = tr.DeviceID
	}
	assert.Equal(t, []string{"Alpha", "beta", "Gamma-10", "gamma-2"}, ids)
}

func TestOrderByDeviceGroupsCaseSensitively(t *testing.T) {
	// Grouping is exact; only the emission order ignores case.
	points := []Point{
		pt("Bus-1", 0),
		pt("bus-1", 1),
		pt("Bus-1", 2),
	}

	tracks := OrderByDevice(points)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Bus-1", tracks[0].DeviceID)
	assert.Len(t, tracks[0].Points, 2)
	assert.Equal(t, "bus-1", tracks[1].DeviceID)
	assert.Len(t, tracks[1].Points, 1)
}

func TestOrderByDeviceEmpty(t *testing.T) {
	assert.Empty(t, OrderByDevice(nil))
}
