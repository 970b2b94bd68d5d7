package interfaces

import (
	"context"

	"cwdp/internal/models"
)

type StatRepository interface {
	Create(ctx context.Context, stat *models.Stat) error
	GetByID(ctx context.Context, id string) (*models.Stat, error)
	List(ctx context.Context, opts ListOptions) ([]models.Stat, error)
	Update(ctx context.Context, id string, req *models.UpdateStatRequest) error
	Delete(ctx context.Context, id string) error
}
