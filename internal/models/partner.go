package models

import "time"

type Partner struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LogoURL      string    `json:"logo_url"`
	WebsiteURL   *string   `json:"website_url,omitempty"`
	Description  *string   `json:"description,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreatePartnerRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	LogoURL      string  `json:"logo_url" validate:"required,url"`
	WebsiteURL   *string `json:"website_url,omitempty" validate:"omitempty,url"`
	Description  *string `json:"description,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
	DisplayOrder int     `json:"display_order" validate:"min=0"`
}

func (req CreatePartnerRequest) Partner() *Partner {
	return &Partner{
		Name:         req.Name,
		LogoURL:      req.LogoURL,
		WebsiteURL:   req.WebsiteURL,
		Description:  req.Description,
		IsActive:     boolOr(req.IsActive, true),
		DisplayOrder: req.DisplayOrder,
	}
}

func (req CreatePartnerRequest) Update() *UpdatePartnerRequest {
	p := req.Partner()
	return &UpdatePartnerRequest{
		Name:         &p.Name,
		LogoURL:      &p.LogoURL,
		WebsiteURL:   orEmpty(p.WebsiteURL),
		Description:  orEmpty(p.Description),
		IsActive:     &p.IsActive,
		DisplayOrder: &p.DisplayOrder,
	}
}

type UpdatePartnerRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	LogoURL      *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	WebsiteURL   *string `json:"website_url,omitempty" validate:"omitempty,url"`
	Description  *string `json:"description,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,min=0"`
}

func (req *UpdatePartnerRequest) Empty() bool {
	return req.Name == nil && req.LogoURL == nil && req.WebsiteURL == nil &&
		req.Description == nil && req.IsActive == nil && req.DisplayOrder == nil
}
