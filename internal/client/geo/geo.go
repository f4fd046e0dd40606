// Package geo contains the small amount of geometry the map screen needs.
package geo

import (
	"math"

	"github.com/tfernandez-dev/menumap/internal/client/models"
)

const earthRadiusMeters = 6371000

// DistanceMeters returns the great-circle distance between two positions.
func DistanceMeters(a, b models.Position) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
