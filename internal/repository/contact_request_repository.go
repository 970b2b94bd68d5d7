package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
)

const contactRequestColumns = `id, name, email, phone, service, budget_range, desired_timeline,
		project_location, how_found_us, message, status, created_at, updated_at`

type contactRequestRepository struct {
	db *sql.DB
}

func NewContactRequestRepository(db *sql.DB) interfaces.ContactRequestRepository {
	return &contactRequestRepository{db: db}
}

func (r *contactRequestRepository) Create(ctx context.Context, req *models.ContactRequest) error {
	if req.Status == "" {
		req.Status = models.ContactStatusPending
	}

	query := `
		INSERT INTO contact_requests (
			name, email, phone, service, budget_range, desired_timeline,
			project_location, how_found_us, message, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		req.Name,
		req.Email,
		nullableText(req.Phone),
		nullableText(req.Service),
		nullableText(req.BudgetRange),
		nullableText(req.DesiredTimeline),
		nullableText(req.ProjectLocation),
		nullableText(req.HowFoundUs),
		req.Message,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		log.Printf("Error creating contact request: %v", err)
		return fmt.Errorf("failed to create contact request: %w", err)
	}
	return nil
}

func (r *contactRequestRepository) GetByID(ctx context.Context, id string) (*models.ContactRequest, error) {
	query := `SELECT ` + contactRequestColumns + ` FROM contact_requests WHERE id = $1`

	req, err := scanContactRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting contact request: %v", err)
		return nil, fmt.Errorf("failed to get contact request: %w", err)
	}
	return req, nil
}

// List returns every request, newest first.
func (r *contactRequestRepository) List(ctx context.Context) ([]models.ContactRequest, error) {
	query := `SELECT ` + contactRequestColumns + ` FROM contact_requests ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing contact requests: %v", err)
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}
	defer rows.Close()

	var requests []models.ContactRequest
	for rows.Next() {
		req, err := scanContactRequest(rows)
		if err != nil {
			log.Printf("Error scanning contact request: %v", err)
			return nil, fmt.Errorf("failed to scan contact request: %w", err)
		}
		requests = append(requests, *req)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus overwrites the status. Transition rules are checked by the
// caller.
func (r *contactRequestRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error {
	query := `UPDATE contact_requests SET status = $1, updated_at = NOW() WHERE id = $2`
	return execAffectingOne(ctx, r.db, "contact request", "update", query, status, id)
}

func scanContactRequest(s rowScanner) (*models.ContactRequest, error) {
	var c models.ContactRequest
	if err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Service,
		&c.BudgetRange,
		&c.DesiredTimeline,
		&c.ProjectLocation,
		&c.HowFoundUs,
		&c.Message,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
