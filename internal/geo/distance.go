// Package geo provides great-circle distance computation.
package geo

import "math"

// earthRadiusMiles is the Earth radius used by the Haversine formula.
const earthRadiusMiles = 3959.0

// Distance returns the great-circle distance in miles between two points,
// rounded to 1 decimal place. Coordinates outside the valid lat/lng ranges
// are not rejected; they produce mathematically defined but meaningless
// results.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadiusMiles * c

	return math.Round(distance*10) / 10
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
