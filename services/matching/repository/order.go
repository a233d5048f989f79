package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/kurashiworks/kurashi/services/matching"
)

// OrderRepo implements the order store interface
type OrderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOrderRepo creates a new order repository
func NewOrderRepo(cfg *models.Config, db *sqlx.DB) *OrderRepo {
	return &OrderRepo{cfg: cfg, db: db}
}

// Create inserts a new order
func (r *OrderRepo) Create(ctx context.Context, order *models.Order) error {
	dto := order.ToDTO()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (
			id, service_id, plan_id, status,
			customer_name, customer_email, customer_phone,
			prefecture, city, street,
			professional_id, scheduled_date, created_at, updated_at
		) VALUES (
			:id, :service_id, :plan_id, :status,
			:customer_name, :customer_email, :customer_phone,
			:prefecture, :city, :street,
			:professional_id, :scheduled_date, :created_at, :updated_at
		)
	`
	if _, err = tx.NamedExecContext(ctx, query, dto); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return tx.Commit()
}

// GetByID retrieves an order by ID
func (r *OrderRepo) GetByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	query := `
		SELECT id, service_id, plan_id, status,
			customer_name, customer_email, customer_phone,
			COALESCE(prefecture, '') AS prefecture,
			COALESCE(city, '') AS city,
			COALESCE(street, '') AS street,
			professional_id, scheduled_date, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var dto models.OrderDTO
	if err := r.db.GetContext(ctx, &dto, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, matching.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return dto.ToOrder(), nil
}

// List retrieves all orders, newest first
func (r *OrderRepo) List(ctx context.Context) ([]*models.Order, error) {
	query := `
		SELECT id, service_id, plan_id, status,
			customer_name, customer_email, customer_phone,
			COALESCE(prefecture, '') AS prefecture,
			COALESCE(city, '') AS city,
			COALESCE(street, '') AS street,
			professional_id, scheduled_date, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
	`

	var dtos []models.OrderDTO
	if err := r.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*models.Order, 0, len(dtos))
	for i := range dtos {
		orders = append(orders, dtos[i].ToOrder())
	}
	return orders, nil
}

// UpdateStatus updates an order's status
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return matching.ErrOrderNotFound
	}

	return nil
}

// UpdateMatched finalizes a match. The WHERE clause compares updated_at
// against the value the caller read, so a concurrent mutation makes this a
// no-op and surfaces as ErrOrderConflict.
func (r *OrderRepo) UpdateMatched(ctx context.Context, orderID, professionalID uuid.UUID, scheduledDate time.Time, prevUpdatedAt time.Time) error {
	query := `
		UPDATE orders
		SET status = $1, professional_id = $2, scheduled_date = $3, updated_at = $4
		WHERE id = $5 AND status = $6 AND updated_at = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		models.OrderStatusMatched, professionalID, scheduledDate, time.Now(),
		orderID, models.OrderStatusPending, prevUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update matched order: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return matching.ErrOrderConflict
	}

	return nil
}
