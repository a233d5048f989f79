package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kurashiworks/kurashi/internal/pkg/constants"
	"github.com/kurashiworks/kurashi/internal/pkg/logger"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
)

// PlaceOrder persists a new order and kicks off matching for it in the
// background
func (uc *MatchingUC) PlaceOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.ID = uuid.New()
	order.Status = models.OrderStatusPending
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	uc.publishEvent(ctx, constants.SubjectOrderCreated, order, nil)

	if err := uc.notifier.NotifyEmail(ctx, order.CustomerEmail, models.TemplateOrderCreated, map[string]interface{}{
		"order_id":   order.ID.String(),
		"service_id": order.ServiceID,
		"plan_id":    order.PlanID,
	}); err != nil {
		logger.Warn("Order confirmation email delivery failed",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}

	// Matching runs detached from the request lifecycle
	go uc.StartMatching(context.Background(), order)

	return order, nil
}

// GetOrder retrieves an order by ID
func (uc *MatchingUC) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return uc.orderRepo.GetByID(ctx, orderID)
}

// ListOrders retrieves all orders
func (uc *MatchingUC) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return uc.orderRepo.List(ctx)
}

// CancelOrder cancels an order and tears down any matching session in flight
func (uc *MatchingUC) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status == models.OrderStatusCompleted || order.Status == models.OrderStatusCancelled {
		return fmt.Errorf("order %s cannot be cancelled in status %s", orderID, order.Status)
	}

	uc.StopMatching(ctx, orderID)

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, models.OrderStatusCancelled); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = models.OrderStatusCancelled
	uc.publishEvent(ctx, constants.SubjectOrderCancelled, order, order.ProfessionalID)

	if err := uc.notifier.NotifyEmail(ctx, order.CustomerEmail, models.TemplateOrderCancelled, map[string]interface{}{
		"order_id": order.ID.String(),
	}); err != nil {
		logger.Warn("Cancellation email delivery failed",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}

	return nil
}

// RematchOrder restarts matching for an order that is still pending
func (uc *MatchingUC) RematchOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status != models.OrderStatusPending {
		return fmt.Errorf("order %s is not pending, cannot rematch", orderID)
	}

	go uc.StartMatching(context.Background(), order)
	return nil
}

// ListOffers returns the orders currently offered to a professional
func (uc *MatchingUC) ListOffers(ctx context.Context, professionalID uuid.UUID) ([]*models.Order, error) {
	return uc.offerRepo.ListOffers(ctx, professionalID)
}
