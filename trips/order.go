package trips

import (
	"sort"
	"strings"
)

// OrderByDevice groups points by exact device identifier, stable-sorts
// each group by timestamp ascending (ties keep arrival order), and
// returns the tracks in case-insensitive lexicographic device order.
// The track order fixes the order trips are emitted in.
func OrderByDevice(points []Point) []DeviceTrack {
	groups := make(map[string][]Point)
	var deviceOrder []string
	for _, p := range points {
		if _, seen := groups[p.DeviceID]; !seen {
			deviceOrder = append(deviceOrder, p.DeviceID)
		}
		groups[p.DeviceID] = append(groups[p.DeviceID], p)
	}

	sort.Slice(deviceOrder, func(i, j int) bool {
		a, b := deviceOrder[i], deviceOrder[j]
		la, lb := strings.ToLower(a), strings.ToLower(b)
		if la != lb {
			return la < lb
		}
		return a < b
	})

	tracks := make([]DeviceTrack, 0, len(deviceOrder))
	for _, id := range deviceOrder {
		pts := groups[id]
		sort.SliceStable(pts, func(i, j int) bool {
			return pts[i].Timestamp.Before(pts[j].Timestamp)
		})
		tracks = append(tracks, DeviceTrack{DeviceID: id, Points: pts})
	}
	return tracks
}
