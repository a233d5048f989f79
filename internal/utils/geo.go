package utils

import (
	"math"

	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// Earth's radius in kilometers
const earthRadiusKm = 6371.0

// CalculateDistance calculates the great-circle distance between two points
// in kilometers using the Haversine formula, rounded to 2 decimal places
func CalculateDistance(p1, p2 models.Point) float64 {
	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return RoundKm(earthRadiusKm * c)
}

// RoundKm rounds a distance to 2 decimal places
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// EncodePoint converts a point to a geohash string
func EncodePoint(p models.Point, precision uint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}

// DecodeGeohash converts a geohash string back to a point
func DecodeGeohash(hash string) models.Point {
	lat, lng := geohash.Decode(hash)
	return models.Point{Latitude: lat, Longitude: lng}
}
