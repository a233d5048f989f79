package constants

// Redis key formats
const (
	// Matching Service
	KeyProfessionalOffers = "professional:offers:%s" // Format: professional:offers:{professional_id}, hash of order_id -> order JSON
	KeyGeocodeCache       = "geocode:addr:%s"        // Format: geocode:addr:{normalized_address}
)
