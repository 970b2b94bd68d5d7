package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) interfaces.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `
		SELECT id, email, full_name, role, password_hash, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
	return r.get(ctx, query, id)
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `
		SELECT id, email, full_name, role, password_hash, created_at, updated_at
		FROM profiles
		WHERE lower(email) = lower($1)
	`
	return r.get(ctx, query, email)
}

// UpsertAdmin creates the profile or promotes an existing one with the same
// email to admin, replacing its password hash.
func (r *profileRepository) UpsertAdmin(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (email, full_name, role, password_hash)
		VALUES ($1, $2, 'admin', $3)
		ON CONFLICT (email) DO UPDATE SET
			role = 'admin',
			password_hash = EXCLUDED.password_hash,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	profile.Role = models.RoleAdmin
	err := r.db.QueryRowContext(ctx, query,
		profile.Email,
		nullableText(profile.FullName),
		profile.PasswordHash,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert admin profile: %w", err)
	}
	return nil
}

func (r *profileRepository) get(ctx context.Context, query string, arg string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID,
		&p.Email,
		&p.FullName,
		&p.Role,
		&p.PasswordHash,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}
