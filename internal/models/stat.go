package models

import "time"

// IconName is a symbolic key into the fixed icon set used by the stats
// section.
type IconName string

const (
	IconBuilding2 IconName = "Building2"
	IconWrench    IconName = "Wrench"
	IconUsers     IconName = "Users"
	IconAward     IconName = "Award"
	IconStar      IconName = "Star"
	IconZap       IconName = "Zap"
)

var KnownIcons = []IconName{IconBuilding2, IconWrench, IconUsers, IconAward, IconStar, IconZap}

func (n IconName) Known() bool {
	for _, k := range KnownIcons {
		if k == n {
			return true
		}
	}
	return false
}

type Stat struct {
	ID           string    `json:"id"`
	IconName     IconName  `json:"icon_name"`
	Number       int       `json:"number"`
	Label        string    `json:"label"`
	Suffix       string    `json:"suffix"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateStatRequest struct {
	IconName     IconName `json:"icon_name" validate:"required,oneof=Building2 Wrench Users Award Star Zap"`
	Number       int      `json:"number" validate:"min=0"`
	Label        string   `json:"label" validate:"required,max=100"`
	Suffix       *string  `json:"suffix,omitempty" validate:"omitempty,max=10"`
	DisplayOrder int      `json:"display_order" validate:"min=0"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

func (req CreateStatRequest) Stat() *Stat {
	suffix := "+"
	if req.Suffix != nil {
		suffix = *req.Suffix
	}
	return &Stat{
		IconName:     req.IconName,
		Number:       req.Number,
		Label:        req.Label,
		Suffix:       suffix,
		DisplayOrder: req.DisplayOrder,
		IsActive:     boolOr(req.IsActive, true),
	}
}

func (req CreateStatRequest) Update() *UpdateStatRequest {
	s := req.Stat()
	return &UpdateStatRequest{
		IconName:     &s.IconName,
		Number:       &s.Number,
		Label:        &s.Label,
		Suffix:       &s.Suffix,
		DisplayOrder: &s.DisplayOrder,
		IsActive:     &s.IsActive,
	}
}

type UpdateStatRequest struct {
	IconName     *IconName `json:"icon_name,omitempty" validate:"omitempty,oneof=Building2 Wrench Users Award Star Zap"`
	Number       *int      `json:"number,omitempty" validate:"omitempty,min=0"`
	Label        *string   `json:"label,omitempty" validate:"omitempty,min=1,max=100"`
	Suffix       *string   `json:"suffix,omitempty" validate:"omitempty,max=10"`
	DisplayOrder *int      `json:"display_order,omitempty" validate:"omitempty,min=0"`
	IsActive     *bool     `json:"is_active,omitempty"`
}

func (req *UpdateStatRequest) Empty() bool {
	return req.IconName == nil && req.Number == nil && req.Label == nil &&
		req.Suffix == nil && req.DisplayOrder == nil && req.IsActive == nil
}
