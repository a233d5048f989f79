package models

import (
	"time"

	"github.com/google/uuid"
)

// Label is a skill tag attached to professionals and mapped from service plans
type Label struct {
	ID       uuid.UUID `json:"label_id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Category string    `json:"category" db:"category"`
}

// Professional represents a registered service professional
type Professional struct {
	ID            uuid.UUID `json:"professional_id" db:"id"`
	FullName      string    `json:"fullname" db:"fullname"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	Labels        []Label   `json:"labels"`
	Address       Address   `json:"address"`
	Rating        float64   `json:"rating" db:"rating"`
	CompletedJobs int       `json:"completed_jobs" db:"completed_jobs"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
