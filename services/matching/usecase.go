package matching

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kurashiworks/kurashi/services/matching MatchingUC

// MatchingUC defines the matching service business logic
type MatchingUC interface {
	// Order lifecycle
	PlaceOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID) error
	RematchOrder(ctx context.Context, orderID uuid.UUID) error

	// Sequential matching engine
	StartMatching(ctx context.Context, order *models.Order)
	Accept(ctx context.Context, orderID, professionalID uuid.UUID, selectedDate time.Time) bool
	StopMatching(ctx context.Context, orderID uuid.UUID)
	ActiveSessions() []models.SessionInfo

	// Professional offer view
	ListOffers(ctx context.Context, professionalID uuid.UUID) ([]*models.Order, error)
}
