package interfaces

import (
	"context"

	"cwdp/internal/models"
)

// GalleryRepository defines the interface for gallery data operations
type GalleryRepository interface {
	Create(ctx context.Context, item *models.GalleryItem) error
	GetByID(ctx context.Context, id string) (*models.GalleryItem, error)
	List(ctx context.Context, opts ListOptions) ([]models.GalleryItem, error)
	Update(ctx context.Context, id string, req *models.UpdateGalleryItemRequest) error
	Delete(ctx context.Context, id string) error
}
