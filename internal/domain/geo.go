package domain

import "math"

// Earth radius in kilometers used by the haversine formula.
const earthRadiusKm = 6371

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers using the haversine formula. The result is symmetric and zero
// for identical points.
func DistanceKm(a, b Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}
