package interfaces

import (
	"context"

	"cwdp/internal/models"
)

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context, opts ListOptions) ([]models.Project, error)
	Update(ctx context.Context, id string, req *models.UpdateProjectRequest) error
	Delete(ctx context.Context, id string) error
}
