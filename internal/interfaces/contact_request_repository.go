package interfaces

import (
	"context"

	"cwdp/internal/models"
)

// ContactRequestRepository defines the interface for contact request data
// operations. Requests are never deleted and only their status changes.
type ContactRequestRepository interface {
	Create(ctx context.Context, req *models.ContactRequest) error
	GetByID(ctx context.Context, id string) (*models.ContactRequest, error)
	List(ctx context.Context) ([]models.ContactRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error
}
