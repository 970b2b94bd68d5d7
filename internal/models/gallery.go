package models

import "time"

const DefaultGalleryCategory = "general"

type GalleryItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	ImageURL     string    `json:"image_url"`
	Category     string    `json:"category"`
	IsLogo       bool      `json:"is_logo"`
	IsFooterLogo bool      `json:"is_footer_logo"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateGalleryItemRequest struct {
	Title        string  `json:"title" validate:"required,max=255"`
	Description  *string `json:"description,omitempty"`
	ImageURL     string  `json:"image_url" validate:"required,url"`
	Category     string  `json:"category,omitempty" validate:"omitempty,max=50"`
	IsLogo       bool    `json:"is_logo"`
	IsFooterLogo bool    `json:"is_footer_logo"`
	DisplayOrder int     `json:"display_order" validate:"min=0"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (req CreateGalleryItemRequest) GalleryItem() *GalleryItem {
	category := req.Category
	if category == "" {
		category = DefaultGalleryCategory
	}
	return &GalleryItem{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Category:     category,
		IsLogo:       req.IsLogo,
		IsFooterLogo: req.IsFooterLogo,
		DisplayOrder: req.DisplayOrder,
		IsActive:     boolOr(req.IsActive, true),
	}
}

func (req CreateGalleryItemRequest) Update() *UpdateGalleryItemRequest {
	item := req.GalleryItem()
	return &UpdateGalleryItemRequest{
		Title:        &item.Title,
		Description:  orEmpty(item.Description),
		ImageURL:     &item.ImageURL,
		Category:     &item.Category,
		IsLogo:       &item.IsLogo,
		IsFooterLogo: &item.IsFooterLogo,
		DisplayOrder: &item.DisplayOrder,
		IsActive:     &item.IsActive,
	}
}

type UpdateGalleryItemRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Category     *string `json:"category,omitempty" validate:"omitempty,min=1,max=50"`
	IsLogo       *bool   `json:"is_logo,omitempty"`
	IsFooterLogo *bool   `json:"is_footer_logo,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,min=0"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (req *UpdateGalleryItemRequest) Empty() bool {
	return req.Title == nil && req.Description == nil && req.ImageURL == nil &&
		req.Category == nil && req.IsLogo == nil && req.IsFooterLogo == nil &&
		req.DisplayOrder == nil && req.IsActive == nil
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
