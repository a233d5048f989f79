package matching

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kurashiworks/kurashi/services/matching ProfessionalRepo,OrderRepo,OfferRepo

// ProfessionalRepo defines read access to the professional directory
type ProfessionalRepo interface {
	ListActive(ctx context.Context) ([]*models.Professional, error)
	GetByID(ctx context.Context, professionalID uuid.UUID) (*models.Professional, error)
}

// OrderRepo defines order persistence operations
type OrderRepo interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) error
	// UpdateMatched finalizes a match. The update is guarded by a
	// compare-and-swap on updated_at; ErrOrderConflict is returned when the
	// row changed since prevUpdatedAt was read.
	UpdateMatched(ctx context.Context, orderID, professionalID uuid.UUID, scheduledDate time.Time, prevUpdatedAt time.Time) error
}

// OfferRepo defines the per-professional offer queue. An entry here is what
// makes an order visible to a notified professional as acceptable.
type OfferRepo interface {
	AddOffer(ctx context.Context, professionalID uuid.UUID, order *models.Order) error
	RemoveOffer(ctx context.Context, professionalID, orderID uuid.UUID) error
	ListOffers(ctx context.Context, professionalID uuid.UUID) ([]*models.Order, error)
}
