package geo

import (
	"math"

	"github.com/huynhtrandev/brewpoint-backend/pkg/types"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle (haversine) distance between two
// coordinates in kilometers. Symmetric, and zero iff both points are equal.
func DistanceKm(a, b types.Coordinate) float64 {
	if a == b {
		return 0
	}

	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*sinLng*sinLng
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
