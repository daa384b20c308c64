package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/trailyn/transport/internal/pkg/models"
)

// Spherical earth radius in meters, shared by all distance checks.
const earthRadiusM = 6371000.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// DistanceMeters calculates the great-circle distance between two points in
// meters using the haversine formula.
func DistanceMeters(p1, p2 GeoPoint) float64 {
	lat1 := p1.Latitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	dLat := (p2.Latitude - p1.Latitude) * math.Pi / 180.0
	dLon := (p2.Longitude - p1.Longitude) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// WithinRange reports whether two points are within threshold meters of each
// other, returning the measured distance either way.
func WithinRange(p1, p2 GeoPoint, thresholdM float64) (bool, float64) {
	d := DistanceMeters(p1, p2)
	return d <= thresholdM, d
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(loc models.Location) GeoPoint {
	return GeoPoint{Latitude: loc.Latitude, Longitude: loc.Longitude}
}
