package interfaces

import (
	"context"

	"cwdp/internal/models"
)

// SettingRepository stores key/value settings. Writes are upserts keyed on
// the unique setting key.
type SettingRepository interface {
	List(ctx context.Context) ([]models.Setting, error)
	GetByKeys(ctx context.Context, keys []string) ([]models.Setting, error)
	Upsert(ctx context.Context, setting *models.Setting) error
	UpsertMany(ctx context.Context, settings []models.Setting) error
}
