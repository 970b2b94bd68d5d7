package interfaces

import (
	"context"

	"cwdp/internal/models"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	UpsertAdmin(ctx context.Context, profile *models.Profile) error
}
