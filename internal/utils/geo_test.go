package utils

import (
	"testing"

	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance_SamePoint(t *testing.T) {
	p := models.Point{Latitude: 35.6812, Longitude: 139.7671}

	assert.Equal(t, 0.0, CalculateDistance(p, p))
}

func TestCalculateDistance_TokyoToYokohama(t *testing.T) {
	tokyo := models.Point{Latitude: 35.6812, Longitude: 139.7671}
	yokohama := models.Point{Latitude: 35.4437, Longitude: 139.6380}

	distance := CalculateDistance(tokyo, yokohama)

	// Roughly 29km between the two stations
	assert.InDelta(t, 29.0, distance, 2.0)
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := models.Point{Latitude: 35.6812, Longitude: 139.7671}
	b := models.Point{Latitude: 34.6937, Longitude: 135.5023}

	assert.Equal(t, CalculateDistance(a, b), CalculateDistance(b, a))
}

func TestCalculateDistance_RoundedToTwoDecimals(t *testing.T) {
	a := models.Point{Latitude: 35.6812, Longitude: 139.7671}
	b := models.Point{Latitude: 35.6938, Longitude: 139.7034}

	distance := CalculateDistance(a, b)

	assert.Equal(t, RoundKm(distance), distance)
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 12.35, RoundKm(12.345))
	assert.Equal(t, 12.34, RoundKm(12.344))
	assert.Equal(t, 0.0, RoundKm(0.004))
}

func TestEncodeDecodeGeohash(t *testing.T) {
	p := models.Point{Latitude: 35.6812, Longitude: 139.7671}

	hash := EncodePoint(p, 9)
	decoded := DecodeGeohash(hash)

	assert.Len(t, hash, 9)
	assert.InDelta(t, p.Latitude, decoded.Latitude, 0.001)
	assert.InDelta(t, p.Longitude, decoded.Longitude, 0.001)
}
