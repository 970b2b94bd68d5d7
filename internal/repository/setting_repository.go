package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
)

const upsertSettingQuery = `
	INSERT INTO settings (key, value, description)
	VALUES ($1, $2, $3)
	ON CONFLICT (key) DO UPDATE SET
		value = EXCLUDED.value,
		description = COALESCE(EXCLUDED.description, settings.description),
		updated_at = NOW()
	RETURNING id, description, created_at, updated_at
`

type settingRepository struct {
	db *sql.DB
}

func NewSettingRepository(db *sql.DB) interfaces.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) List(ctx context.Context) ([]models.Setting, error) {
	query := `
		SELECT id, key, value, description, created_at, updated_at
		FROM settings
		ORDER BY key
	`
	return r.query(ctx, query)
}

func (r *settingRepository) GetByKeys(ctx context.Context, keys []string) ([]models.Setting, error) {
	query := `
		SELECT id, key, value, description, created_at, updated_at
		FROM settings
		WHERE key = ANY($1)
		ORDER BY key
	`
	return r.query(ctx, query, pq.Array(keys))
}

func (r *settingRepository) Upsert(ctx context.Context, setting *models.Setting) error {
	err := r.db.QueryRowContext(ctx, upsertSettingQuery,
		setting.Key,
		setting.Value,
		setting.Description,
	).Scan(&setting.ID, &setting.Description, &setting.CreatedAt, &setting.UpdatedAt)
	if err != nil {
		log.Printf("Error upserting setting %s: %v", setting.Key, err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

// UpsertMany writes all settings in one transaction so a bulk save either
// lands completely or not at all.
func (r *settingRepository) UpsertMany(ctx context.Context, settings []models.Setting) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range settings {
		s := &settings[i]
		if err := tx.QueryRowContext(ctx, upsertSettingQuery,
			s.Key,
			s.Value,
			s.Description,
		).Scan(&s.ID, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			log.Printf("Error upserting setting %s: %v", s.Key, err)
			return fmt.Errorf("failed to upsert setting %s: %w", s.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}

func (r *settingRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Setting, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing settings: %v", err)
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []models.Setting
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			log.Printf("Error scanning setting: %v", err)
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings: %w", err)
	}
	return settings, nil
}
