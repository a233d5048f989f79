package matching

import "errors"

// Geocoder failure classes
var (
	ErrGeoNotFound    = errors.New("geocoder: address not found")
	ErrGeoRateLimited = errors.New("geocoder: rate limited")
	ErrGeoUnavailable = errors.New("geocoder: service unavailable")
)

// Repository failures
var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderConflict is returned when an order mutation loses the
	// compare-and-swap on updated_at
	ErrOrderConflict = errors.New("order was modified concurrently")
)
