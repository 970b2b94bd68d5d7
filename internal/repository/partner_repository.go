package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
)

const partnerColumns = `id, name, logo_url, website_url, description, is_active, display_order,
		created_at, updated_at`

type partnerRepository struct {
	db *sql.DB
}

func NewPartnerRepository(db *sql.DB) interfaces.PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	query := `
		INSERT INTO partners (name, logo_url, website_url, description, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		partner.Name,
		partner.LogoURL,
		nullableText(partner.WebsiteURL),
		nullableText(partner.Description),
		partner.IsActive,
		partner.DisplayOrder,
	).Scan(&partner.ID, &partner.CreatedAt, &partner.UpdatedAt)
	if err != nil {
		log.Printf("Error creating partner: %v", err)
		return fmt.Errorf("failed to create partner: %w", err)
	}
	return nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`

	partner, err := scanPartner(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting partner: %v", err)
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	return partner, nil
}

func (r *partnerRepository) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Partner, error) {
	opts.FeaturedOnly = false
	query, args := listQuery(`SELECT `+partnerColumns+` FROM partners`, opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing partners: %v", err)
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	defer rows.Close()

	var partners []models.Partner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			log.Printf("Error scanning partner: %v", err)
			return nil, fmt.Errorf("failed to scan partner: %w", err)
		}
		partners = append(partners, *partner)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partners: %w", err)
	}
	return partners, nil
}

func (r *partnerRepository) Update(ctx context.Context, id string, req *models.UpdatePartnerRequest) error {
	var b updateBuilder
	if req.Name != nil {
		b.set("name", *req.Name)
	}
	if req.LogoURL != nil {
		b.set("logo_url", *req.LogoURL)
	}
	if req.WebsiteURL != nil {
		b.set("website_url", nullableText(req.WebsiteURL))
	}
	if req.Description != nil {
		b.set("description", nullableText(req.Description))
	}
	if req.IsActive != nil {
		b.set("is_active", *req.IsActive)
	}
	if req.DisplayOrder != nil {
		b.set("display_order", *req.DisplayOrder)
	}

	query, args, err := b.build("partners", id)
	if err != nil {
		return err
	}
	return execAffectingOne(ctx, r.db, "partner", "update", query, args...)
}

func (r *partnerRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, "partner", "delete", `DELETE FROM partners WHERE id = $1`, id)
}

func scanPartner(s rowScanner) (*models.Partner, error) {
	var p models.Partner
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.LogoURL,
		&p.WebsiteURL,
		&p.Description,
		&p.IsActive,
		&p.DisplayOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
