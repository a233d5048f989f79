package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/kurashiworks/kurashi/services/matching"
)

// MatchingUC implements the matching use case interface
type MatchingUC struct {
	cfg              *models.Config
	professionalRepo matching.ProfessionalRepo
	orderRepo        matching.OrderRepo
	offerRepo        matching.OfferRepo
	geocoder         matching.GeocoderGW
	notifier         matching.NotifierGW

	waitWindow     time.Duration
	searchRadiusKm float64

	// sessions is the only engine-owned mutable shared state; every
	// create/advance/deactivate/delete on it happens under mu.
	mu       sync.Mutex
	sessions map[uuid.UUID]*matchSession
}

// NewMatchingUC creates a new matching use case
func NewMatchingUC(
	cfg *models.Config,
	professionalRepo matching.ProfessionalRepo,
	orderRepo matching.OrderRepo,
	offerRepo matching.OfferRepo,
	geocoder matching.GeocoderGW,
	notifier matching.NotifierGW,
) *MatchingUC {
	waitWindow := time.Duration(cfg.Matching.WaitWindowSeconds) * time.Second
	if waitWindow <= 0 {
		waitWindow = 7 * time.Minute
	}
	radius := cfg.Matching.SearchRadiusKm
	if radius <= 0 {
		radius = 80.0
	}

	return &MatchingUC{
		cfg:              cfg,
		professionalRepo: professionalRepo,
		orderRepo:        orderRepo,
		offerRepo:        offerRepo,
		geocoder:         geocoder,
		notifier:         notifier,
		waitWindow:       waitWindow,
		searchRadiusKm:   radius,
		sessions:         make(map[uuid.UUID]*matchSession),
	}
}
