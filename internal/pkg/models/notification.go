package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailTemplate identifies the mail template the notification worker renders
type EmailTemplate string

const (
	TemplateOrderCreated      EmailTemplate = "order_created"
	TemplateOfferReceived     EmailTemplate = "offer_received"
	TemplateMatchCustomer     EmailTemplate = "match_customer"
	TemplateMatchProfessional EmailTemplate = "match_professional"
	TemplateOrderCancelled    EmailTemplate = "order_cancelled"
)

// EmailJob is an asynchronous mail delivery job published to the
// notification worker
type EmailJob struct {
	Recipient string                 `json:"recipient"`
	Template  EmailTemplate          `json:"template"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// OrderEvent is a domain event describing an order lifecycle transition
type OrderEvent struct {
	OrderID        uuid.UUID   `json:"order_id"`
	Status         OrderStatus `json:"status"`
	ProfessionalID *uuid.UUID  `json:"professional_id,omitempty"`
	OccurredAt     time.Time   `json:"occurred_at"`
}
