package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
)

const galleryColumns = `id, title, description, image_url, category, is_logo, is_footer_logo,
		display_order, is_active, created_at, updated_at`

type galleryRepository struct {
	db *sql.DB
}

func NewGalleryRepository(db *sql.DB) interfaces.GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	query := `
		INSERT INTO gallery (
			title, description, image_url, category, is_logo, is_footer_logo,
			display_order, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		item.Title,
		nullableText(item.Description),
		item.ImageURL,
		item.Category,
		item.IsLogo,
		item.IsFooterLogo,
		item.DisplayOrder,
		item.IsActive,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		log.Printf("Error creating gallery item: %v", err)
		return fmt.Errorf("failed to create gallery item: %w", err)
	}
	return nil
}

func (r *galleryRepository) GetByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery WHERE id = $1`

	item, err := scanGalleryItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting gallery item: %v", err)
		return nil, fmt.Errorf("failed to get gallery item: %w", err)
	}
	return item, nil
}

func (r *galleryRepository) List(ctx context.Context, opts interfaces.ListOptions) ([]models.GalleryItem, error) {
	opts.FeaturedOnly = false
	query, args := listQuery(`SELECT `+galleryColumns+` FROM gallery`, opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing gallery: %v", err)
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	defer rows.Close()

	var items []models.GalleryItem
	for rows.Next() {
		item, err := scanGalleryItem(rows)
		if err != nil {
			log.Printf("Error scanning gallery item: %v", err)
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, *item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery: %w", err)
	}
	return items, nil
}

func (r *galleryRepository) Update(ctx context.Context, id string, req *models.UpdateGalleryItemRequest) error {
	var b updateBuilder
	if req.Title != nil {
		b.set("title", *req.Title)
	}
	if req.Description != nil {
		b.set("description", nullableText(req.Description))
	}
	if req.ImageURL != nil {
		b.set("image_url", *req.ImageURL)
	}
	if req.Category != nil {
		b.set("category", *req.Category)
	}
	if req.IsLogo != nil {
		b.set("is_logo", *req.IsLogo)
	}
	if req.IsFooterLogo != nil {
		b.set("is_footer_logo", *req.IsFooterLogo)
	}
	if req.DisplayOrder != nil {
		b.set("display_order", *req.DisplayOrder)
	}
	if req.IsActive != nil {
		b.set("is_active", *req.IsActive)
	}

	query, args, err := b.build("gallery", id)
	if err != nil {
		return err
	}
	return execAffectingOne(ctx, r.db, "gallery item", "update", query, args...)
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, "gallery item", "delete", `DELETE FROM gallery WHERE id = $1`, id)
}

func scanGalleryItem(s rowScanner) (*models.GalleryItem, error) {
	var g models.GalleryItem
	if err := s.Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.ImageURL,
		&g.Category,
		&g.IsLogo,
		&g.IsFooterLogo,
		&g.DisplayOrder,
		&g.IsActive,
		&g.CreatedAt,
		&g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}
