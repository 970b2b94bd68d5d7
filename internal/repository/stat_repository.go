package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
)

const statColumns = `id, icon_name, number, label, suffix, display_order, is_active,
		created_at, updated_at`

type statRepository struct {
	db *sql.DB
}

func NewStatRepository(db *sql.DB) interfaces.StatRepository {
	return &statRepository{db: db}
}

func (r *statRepository) Create(ctx context.Context, stat *models.Stat) error {
	query := `
		INSERT INTO stats (icon_name, number, label, suffix, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		stat.IconName,
		stat.Number,
		stat.Label,
		stat.Suffix,
		stat.DisplayOrder,
		stat.IsActive,
	).Scan(&stat.ID, &stat.CreatedAt, &stat.UpdatedAt)
	if err != nil {
		log.Printf("Error creating stat: %v", err)
		return fmt.Errorf("failed to create stat: %w", err)
	}
	return nil
}

func (r *statRepository) GetByID(ctx context.Context, id string) (*models.Stat, error) {
	query := `SELECT ` + statColumns + ` FROM stats WHERE id = $1`

	stat, err := scanStat(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting stat: %v", err)
		return nil, fmt.Errorf("failed to get stat: %w", err)
	}
	return stat, nil
}

func (r *statRepository) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Stat, error) {
	opts.FeaturedOnly = false
	query, args := listQuery(`SELECT `+statColumns+` FROM stats`, opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing stats: %v", err)
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}
	defer rows.Close()

	var stats []models.Stat
	for rows.Next() {
		stat, err := scanStat(rows)
		if err != nil {
			log.Printf("Error scanning stat: %v", err)
			return nil, fmt.Errorf("failed to scan stat: %w", err)
		}
		stats = append(stats, *stat)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stats: %w", err)
	}
	return stats, nil
}

func (r *statRepository) Update(ctx context.Context, id string, req *models.UpdateStatRequest) error {
	var b updateBuilder
	if req.IconName != nil {
		b.set("icon_name", *req.IconName)
	}
	if req.Number != nil {
		b.set("number", *req.Number)
	}
	if req.Label != nil {
		b.set("label", *req.Label)
	}
	if req.Suffix != nil {
		b.set("suffix", *req.Suffix)
	}
	if req.DisplayOrder != nil {
		b.set("display_order", *req.DisplayOrder)
	}
	if req.IsActive != nil {
		b.set("is_active", *req.IsActive)
	}

	query, args, err := b.build("stats", id)
	if err != nil {
		return err
	}
	return execAffectingOne(ctx, r.db, "stat", "update", query, args...)
}

func (r *statRepository) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, "stat", "delete", `DELETE FROM stats WHERE id = $1`, id)
}

func scanStat(s rowScanner) (*models.Stat, error) {
	var st models.Stat
	if err := s.Scan(
		&st.ID,
		&st.IconName,
		&st.Number,
		&st.Label,
		&st.Suffix,
		&st.DisplayOrder,
		&st.IsActive,
		&st.CreatedAt,
		&st.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &st, nil
}
