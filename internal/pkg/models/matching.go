package models

import (
	"time"

	"github.com/google/uuid"
)

// Point is a geographic coordinate pair
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Candidate is a skill-eligible professional paired with the distance
// from the order address, in kilometers. Geohash encodes the professional's
// resolved coordinates for offer notifications.
type Candidate struct {
	Professional Professional `json:"professional"`
	DistanceKm   float64      `json:"distance_km"`
	Geohash      string       `json:"geohash,omitempty"`
}

// SessionInfo is the observable state of one matching session
type SessionInfo struct {
	OrderID         uuid.UUID `json:"order_id"`
	Cursor          int       `json:"cursor"`
	TotalCandidates int       `json:"total_candidates"`
	NotifiedCount   int       `json:"notified_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// AcceptRequest is a professional's claim on an offered order
type AcceptRequest struct {
	ProfessionalID uuid.UUID `json:"professional_id"`
	SelectedDate   time.Time `json:"selected_date"`
}
