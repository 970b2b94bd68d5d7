package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
)

const projectColumns = `id, title, description, image_url, location, project_type, status,
		start_date, end_date, is_featured, display_order, gallery_images,
		created_at, updated_at`

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) interfaces.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	imagesJSON, err := marshalGalleryImages(project.GalleryImages)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (
			title, description, image_url, location, project_type, status,
			start_date, end_date, is_featured, display_order, gallery_images
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRowContext(ctx, query,
		project.Title,
		nullableText(project.Description),
		nullableText(project.ImageURL),
		nullableText(project.Location),
		nullableText(project.ProjectType),
		project.Status,
		nullableText(project.StartDate),
		nullableText(project.EndDate),
		project.IsFeatured,
		project.DisplayOrder,
		imagesJSON,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		log.Printf("Error creating project: %v", err)
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting project: %v", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// List returns projects in display order. ActiveOnly has no meaning for
// projects; visibility is controlled by FeaturedOnly.
func (r *projectRepository) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Project, error) {
	opts.ActiveOnly = false
	query, args := listQuery(`SELECT `+projectColumns+` FROM projects`, opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			log.Printf("Error scanning project: %v", err)
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, id string, req *models.UpdateProjectRequest) error {
	var b updateBuilder
	if req.Title != nil {
		b.set("title", *req.Title)
	}
	if req.Description != nil {
		b.set("description", nullableText(req.Description))
	}
	if req.ImageURL != nil {
		b.set("image_url", nullableText(req.ImageURL))
	}
	if req.Location != nil {
		b.set("location", nullableText(req.Location))
	}
	if req.ProjectType != nil {
		b.set("project_type", nullableText(req.ProjectType))
	}
	if req.Status != nil {
		b.set("status", *req.Status)
	}
	if req.StartDate != nil {
		b.set("start_date", nullableText(req.StartDate))
	}
	if req.EndDate != nil {
		b.set("end_date", nullableText(req.EndDate))
	}
	if req.IsFeatured != nil {
		b.set("is_featured", *req.IsFeatured)
	}
	if req.DisplayOrder != nil {
		b.set("display_order", *req.DisplayOrder)
	}
	if req.GalleryImages != nil {
		imagesJSON, err := marshalGalleryImages(*req.GalleryImages)
		if err != nil {
			return err
		}
		b.set("gallery_images", imagesJSON)
	}

	query, args, err := b.build("projects", id)
	if err != nil {
		return err
	}
	return execAffectingOne(ctx, r.db, "project", "update", query, args...)
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, "project", "delete", `DELETE FROM projects WHERE id = $1`, id)
}

func scanProject(s rowScanner) (*models.Project, error) {
	var p models.Project
	var startDate, endDate sql.NullTime
	var imagesJSON []byte
	if err := s.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.ImageURL,
		&p.Location,
		&p.ProjectType,
		&p.Status,
		&startDate,
		&endDate,
		&p.IsFeatured,
		&p.DisplayOrder,
		&imagesJSON,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.StartDate = dateString(startDate)
	p.EndDate = dateString(endDate)

	p.GalleryImages = []models.GalleryImage{}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.GalleryImages); err != nil {
			return nil, fmt.Errorf("unmarshal gallery images: %w", err)
		}
	}
	return &p, nil
}

func marshalGalleryImages(images []models.GalleryImage) ([]byte, error) {
	if images == nil {
		images = []models.GalleryImage{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("marshal gallery images: %w", err)
	}
	return b, nil
}
