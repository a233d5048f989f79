package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/kurashiworks/kurashi/internal/pkg/constants"
	"github.com/kurashiworks/kurashi/internal/pkg/database"
	"github.com/kurashiworks/kurashi/internal/pkg/logger"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
)

// OfferRepo implements the per-professional offer queue backed by Redis
// hashes, keyed by professional with one field per offered order
type OfferRepo struct {
	redisClient *database.RedisClient
}

// NewOfferRepo creates a new offer repository
func NewOfferRepo(redisClient *database.RedisClient) *OfferRepo {
	return &OfferRepo{redisClient: redisClient}
}

func offerKey(professionalID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyProfessionalOffers, professionalID)
}

// AddOffer makes an order visible in a professional's offer queue
func (r *OfferRepo) AddOffer(ctx context.Context, professionalID uuid.UUID, order *models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	if err := r.redisClient.HSet(ctx, offerKey(professionalID), order.ID.String(), data); err != nil {
		return fmt.Errorf("failed to add offer: %w", err)
	}

	return nil
}

// RemoveOffer removes an order from a professional's offer queue
func (r *OfferRepo) RemoveOffer(ctx context.Context, professionalID, orderID uuid.UUID) error {
	if err := r.redisClient.HDel(ctx, offerKey(professionalID), orderID.String()); err != nil {
		return fmt.Errorf("failed to remove offer: %w", err)
	}

	return nil
}

// ListOffers returns the orders currently offered to a professional
func (r *OfferRepo) ListOffers(ctx context.Context, professionalID uuid.UUID) ([]*models.Order, error) {
	values, err := r.redisClient.HVals(ctx, offerKey(professionalID))
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	orders := make([]*models.Order, 0, len(values))
	for _, v := range values {
		var order models.Order
		if err := json.Unmarshal([]byte(v), &order); err != nil {
			logger.Warn("Skipping undecodable offer entry",
				logger.String("professional_id", professionalID.String()),
				logger.Err(err))
			continue
		}
		orders = append(orders, &order)
	}

	return orders, nil
}
