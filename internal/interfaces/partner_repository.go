package interfaces

import (
	"context"

	"cwdp/internal/models"
)

// PartnerRepository defines the interface for partner data operations
type PartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) error
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	List(ctx context.Context, opts ListOptions) ([]models.Partner, error)
	Update(ctx context.Context, id string, req *models.UpdatePartnerRequest) error
	Delete(ctx context.Context, id string) error
}
