package matching

import (
	"context"

	"github.com/kurashiworks/kurashi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kurashiworks/kurashi/services/matching GeocoderGW,NotifierGW

// GeocoderGW resolves addresses to coordinates through the external
// geocoding service
type GeocoderGW interface {
	Geocode(ctx context.Context, address string) (models.Point, error)
}

// NotifierGW delivers outbound notifications. Email delivery is best-effort;
// order events feed the admin-facing views.
type NotifierGW interface {
	NotifyEmail(ctx context.Context, recipient string, template models.EmailTemplate, payload map[string]interface{}) error
	PublishOrderEvent(ctx context.Context, subject string, event models.OrderEvent) error
}
