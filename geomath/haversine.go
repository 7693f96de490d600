package geomath

import "math"

// EarthRadiusKM is the mean Earth radius in kilometers.
const EarthRadiusKM = 6371.0088

// HaversineKM returns the great-circle distance between two lat/lon
// pairs (degrees) in kilometers. The square root argument is clamped to
// [0,1] so floating-point overshoot near antipodal or coincident points
// cannot push Asin outside its domain.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return 2 * EarthRadiusKM * math.Asin(math.Sqrt(a))
}
