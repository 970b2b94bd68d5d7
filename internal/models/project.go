package models

import "time"

type ProjectStatus string

const (
	ProjectStatusOngoing   ProjectStatus = "ongoing"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusPlanned   ProjectStatus = "planned"
)

// Label is the Portuguese badge text shown on the public gallery.
func (s ProjectStatus) Label() string {
	switch s {
	case ProjectStatusOngoing:
		return "Em Andamento"
	case ProjectStatusPlanned:
		return "Planeado"
	default:
		return "Concluído"
	}
}

type GalleryImage struct {
	URL         string  `json:"url" validate:"required,url"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Project struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   *string        `json:"description,omitempty"`
	ImageURL      *string        `json:"image_url,omitempty"`
	Location      *string        `json:"location,omitempty"`
	ProjectType   *string        `json:"project_type,omitempty"`
	Status        ProjectStatus  `json:"status"`
	StartDate     *string        `json:"start_date,omitempty"`
	EndDate       *string        `json:"end_date,omitempty"`
	IsFeatured    bool           `json:"is_featured"`
	DisplayOrder  int            `json:"display_order"`
	GalleryImages []GalleryImage `json:"gallery_images"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type CreateProjectRequest struct {
	Title         string         `json:"title" validate:"required,max=255"`
	Description   *string        `json:"description,omitempty"`
	ImageURL      *string        `json:"image_url,omitempty" validate:"omitempty,url"`
	Location      *string        `json:"location,omitempty" validate:"omitempty,max=255"`
	ProjectType   *string        `json:"project_type,omitempty" validate:"omitempty,max=100"`
	Status        ProjectStatus  `json:"status,omitempty" validate:"omitempty,oneof=ongoing completed planned"`
	StartDate     *string        `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate       *string        `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsFeatured    bool           `json:"is_featured"`
	DisplayOrder  int            `json:"display_order" validate:"min=0"`
	GalleryImages []GalleryImage `json:"gallery_images,omitempty" validate:"omitempty,dive"`
}

func (req CreateProjectRequest) Project() *Project {
	status := req.Status
	if status == "" {
		status = ProjectStatusCompleted
	}
	images := req.GalleryImages
	if images == nil {
		images = []GalleryImage{}
	}
	return &Project{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Location:      req.Location,
		ProjectType:   req.ProjectType,
		Status:        status,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		IsFeatured:    req.IsFeatured,
		DisplayOrder:  req.DisplayOrder,
		GalleryImages: images,
	}
}

// Update turns a full edit form into an update touching every column.
// Omitted optional fields become empty strings, which are stored as NULL.
func (req CreateProjectRequest) Update() *UpdateProjectRequest {
	p := req.Project()
	return &UpdateProjectRequest{
		Title:         &p.Title,
		Description:   orEmpty(p.Description),
		ImageURL:      orEmpty(p.ImageURL),
		Location:      orEmpty(p.Location),
		ProjectType:   orEmpty(p.ProjectType),
		Status:        &p.Status,
		StartDate:     orEmpty(p.StartDate),
		EndDate:       orEmpty(p.EndDate),
		IsFeatured:    &p.IsFeatured,
		DisplayOrder:  &p.DisplayOrder,
		GalleryImages: &p.GalleryImages,
	}
}

type UpdateProjectRequest struct {
	Title         *string         `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description   *string         `json:"description,omitempty"`
	ImageURL      *string         `json:"image_url,omitempty" validate:"omitempty,url"`
	Location      *string         `json:"location,omitempty" validate:"omitempty,max=255"`
	ProjectType   *string         `json:"project_type,omitempty" validate:"omitempty,max=100"`
	Status        *ProjectStatus  `json:"status,omitempty" validate:"omitempty,oneof=ongoing completed planned"`
	StartDate     *string         `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate       *string         `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsFeatured    *bool           `json:"is_featured,omitempty"`
	DisplayOrder  *int            `json:"display_order,omitempty" validate:"omitempty,min=0"`
	GalleryImages *[]GalleryImage `json:"gallery_images,omitempty" validate:"omitempty,dive"`
}

func (req *UpdateProjectRequest) Empty() bool {
	return req.Title == nil && req.Description == nil && req.ImageURL == nil &&
		req.Location == nil && req.ProjectType == nil && req.Status == nil &&
		req.StartDate == nil && req.EndDate == nil && req.IsFeatured == nil &&
		req.DisplayOrder == nil && req.GalleryImages == nil
}
