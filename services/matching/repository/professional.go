package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
)

// ProfessionalRepo implements the professional directory interface
type ProfessionalRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewProfessionalRepo creates a new professional repository
func NewProfessionalRepo(cfg *models.Config, db *sqlx.DB) *ProfessionalRepo {
	return &ProfessionalRepo{cfg: cfg, db: db}
}

type professionalRow struct {
	ID            uuid.UUID `db:"id"`
	FullName      string    `db:"fullname"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	IsActive      bool      `db:"is_active"`
	Prefecture    string    `db:"prefecture"`
	City          string    `db:"city"`
	Street        string    `db:"street"`
	Rating        float64   `db:"rating"`
	CompletedJobs int       `db:"completed_jobs"`
	CreatedAt     sql.NullTime `db:"created_at"`
	UpdatedAt     sql.NullTime `db:"updated_at"`
}

func (row *professionalRow) toProfessional() *models.Professional {
	p := &models.Professional{
		ID:       row.ID,
		FullName: row.FullName,
		Email:    row.Email,
		Phone:    row.Phone,
		IsActive: row.IsActive,
		Address: models.Address{
			Prefecture: row.Prefecture,
			City:       row.City,
			Street:     row.Street,
		},
		Rating:        row.Rating,
		CompletedJobs: row.CompletedJobs,
	}
	if row.CreatedAt.Valid {
		p.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		p.UpdatedAt = row.UpdatedAt.Time
	}
	return p
}

// ListActive retrieves all active professionals with their label sets
func (r *ProfessionalRepo) ListActive(ctx context.Context) ([]*models.Professional, error) {
	query := `
		SELECT id, fullname, email, phone, is_active,
			COALESCE(prefecture, '') AS prefecture,
			COALESCE(city, '') AS city,
			COALESCE(street, '') AS street,
			rating, completed_jobs, created_at, updated_at
		FROM professionals
		WHERE is_active = true
		ORDER BY created_at
	`

	var rows []professionalRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list active professionals: %w", err)
	}

	professionals := make([]*models.Professional, 0, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		professionals = append(professionals, rows[i].toProfessional())
		ids = append(ids, rows[i].ID)
	}

	if err := r.attachLabels(ctx, professionals, ids); err != nil {
		return nil, err
	}

	return professionals, nil
}

// GetByID retrieves a professional by ID
func (r *ProfessionalRepo) GetByID(ctx context.Context, professionalID uuid.UUID) (*models.Professional, error) {
	query := `
		SELECT id, fullname, email, phone, is_active,
			COALESCE(prefecture, '') AS prefecture,
			COALESCE(city, '') AS city,
			COALESCE(street, '') AS street,
			rating, completed_jobs, created_at, updated_at
		FROM professionals
		WHERE id = $1
	`

	var row professionalRow
	if err := r.db.GetContext(ctx, &row, query, professionalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("professional not found")
		}
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}

	professional := row.toProfessional()
	if err := r.attachLabels(ctx, []*models.Professional{professional}, []uuid.UUID{professional.ID}); err != nil {
		return nil, err
	}

	return professional, nil
}

type labelRow struct {
	ProfessionalID uuid.UUID `db:"professional_id"`
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	Category       string    `db:"category"`
}

// attachLabels loads the label sets for the given professionals in one query
func (r *ProfessionalRepo) attachLabels(ctx context.Context, professionals []*models.Professional, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
		SELECT pl.professional_id, l.id, l.name, l.category
		FROM labels l
		JOIN professional_labels pl ON pl.label_id = l.id
		WHERE pl.professional_id IN (?)
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to build label query: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []labelRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("failed to load professional labels: %w", err)
	}

	byProfessional := make(map[uuid.UUID][]models.Label, len(professionals))
	for _, row := range rows {
		byProfessional[row.ProfessionalID] = append(byProfessional[row.ProfessionalID], models.Label{
			ID:       row.ID,
			Name:     row.Name,
			Category: row.Category,
		})
	}

	for _, p := range professionals {
		p.Labels = byProfessional[p.ID]
	}

	return nil
}
