package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the current status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusMatched    OrderStatus = "matched"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Address is a postal address used for distance ranking
type Address struct {
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
	Street     string `json:"street,omitempty"`
}

// Usable reports whether the address carries enough detail to geocode.
// Professionals without a usable address cannot be distance-ranked.
func (a Address) Usable() bool {
	return a.Prefecture != "" && a.City != ""
}

// String returns the address as a single geocodable line
func (a Address) String() string {
	s := a.Prefecture + " " + a.City
	if a.Street != "" {
		s += " " + a.Street
	}
	return s
}

// Order represents a customer order for a service plan
type Order struct {
	ID             uuid.UUID   `json:"order_id" db:"id"`
	ServiceID      string      `json:"service_id" db:"service_id"`
	PlanID         string      `json:"plan_id" db:"plan_id"`
	Status         OrderStatus `json:"status" db:"status"`
	CustomerName   string      `json:"customer_name" db:"customer_name"`
	CustomerEmail  string      `json:"customer_email" db:"customer_email"`
	CustomerPhone  string      `json:"customer_phone" db:"customer_phone"`
	Address        Address     `json:"address"`
	ProfessionalID *uuid.UUID  `json:"professional_id,omitempty" db:"professional_id"`
	ScheduledDate  *time.Time  `json:"scheduled_date,omitempty" db:"scheduled_date"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}

// OrderDTO flattens the nested Address for database operations
type OrderDTO struct {
	ID             uuid.UUID   `db:"id"`
	ServiceID      string      `db:"service_id"`
	PlanID         string      `db:"plan_id"`
	Status         OrderStatus `db:"status"`
	CustomerName   string      `db:"customer_name"`
	CustomerEmail  string      `db:"customer_email"`
	CustomerPhone  string      `db:"customer_phone"`
	Prefecture     string      `db:"prefecture"`
	City           string      `db:"city"`
	Street         string      `db:"street"`
	ProfessionalID *uuid.UUID  `db:"professional_id"`
	ScheduledDate  *time.Time  `db:"scheduled_date"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

// ToDTO converts an Order to an OrderDTO
func (o *Order) ToDTO() *OrderDTO {
	return &OrderDTO{
		ID:             o.ID,
		ServiceID:      o.ServiceID,
		PlanID:         o.PlanID,
		Status:         o.Status,
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		CustomerPhone:  o.CustomerPhone,
		Prefecture:     o.Address.Prefecture,
		City:           o.Address.City,
		Street:         o.Address.Street,
		ProfessionalID: o.ProfessionalID,
		ScheduledDate:  o.ScheduledDate,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ToOrder converts an OrderDTO back to an Order
func (dto *OrderDTO) ToOrder() *Order {
	return &Order{
		ID:            dto.ID,
		ServiceID:     dto.ServiceID,
		PlanID:        dto.PlanID,
		Status:        dto.Status,
		CustomerName:  dto.CustomerName,
		CustomerEmail: dto.CustomerEmail,
		CustomerPhone: dto.CustomerPhone,
		Address: Address{
			Prefecture: dto.Prefecture,
			City:       dto.City,
			Street:     dto.Street,
		},
		ProfessionalID: dto.ProfessionalID,
		ScheduledDate:  dto.ScheduledDate,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	}
}
