package models

import (
	"strings"
	"time"
)

type ContactStatus string

const (
	ContactStatusPending    ContactStatus = "pending"
	ContactStatusInProgress ContactStatus = "in_progress"
	ContactStatusCompleted  ContactStatus = "completed"
)

var contactStatusRank = map[ContactStatus]int{
	ContactStatusPending:    0,
	ContactStatusInProgress: 1,
	ContactStatusCompleted:  2,
}

func (s ContactStatus) Valid() bool {
	_, ok := contactStatusRank[s]
	return ok
}

// CanTransitionTo reports whether an admin may move a request from s to next.
// Requests only move forward: pending -> in_progress -> completed, and
// pending may jump straight to completed.
func (s ContactStatus) CanTransitionTo(next ContactStatus) bool {
	from, ok := contactStatusRank[s]
	if !ok {
		return false
	}
	to, ok := contactStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

type ContactRequest struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           *string       `json:"phone,omitempty"`
	Service         *string       `json:"service,omitempty"`
	BudgetRange     *string       `json:"budget_range,omitempty"`
	DesiredTimeline *string       `json:"desired_timeline,omitempty"`
	ProjectLocation *string       `json:"project_location,omitempty"`
	HowFoundUs      *string       `json:"how_found_us,omitempty"`
	Message         string        `json:"message"`
	Status          ContactStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ContactSubmission is what a visitor fills in on the contact form.
type ContactSubmission struct {
	Name            string `json:"name" schema:"name" validate:"required,max=200,singleline"`
	Email           string `json:"email" schema:"email" validate:"required,email,max=254,singleline"`
	Phone           string `json:"phone" schema:"phone" validate:"required,max=50,singleline"`
	Service         string `json:"service,omitempty" schema:"service" validate:"max=200,singleline"`
	BudgetRange     string `json:"budget_range,omitempty" schema:"budget_range" validate:"max=100,singleline"`
	DesiredTimeline string `json:"desired_timeline,omitempty" schema:"desired_timeline" validate:"max=100,singleline"`
	ProjectLocation string `json:"project_location,omitempty" schema:"project_location" validate:"max=200,singleline"`
	HowFoundUs      string `json:"how_found_us,omitempty" schema:"how_found_us" validate:"max=100,singleline"`
	Message         string `json:"message" schema:"message" validate:"required,max=5000"`
}

// Normalize trims surrounding whitespace so blank input fails "required".
func (s *ContactSubmission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Service = strings.TrimSpace(s.Service)
	s.BudgetRange = strings.TrimSpace(s.BudgetRange)
	s.DesiredTimeline = strings.TrimSpace(s.DesiredTimeline)
	s.ProjectLocation = strings.TrimSpace(s.ProjectLocation)
	s.HowFoundUs = strings.TrimSpace(s.HowFoundUs)
	s.Message = strings.TrimSpace(s.Message)
}

// ContactRequest converts the submission into a new pending request. Empty
// optional fields are stored as NULL.
func (s ContactSubmission) ContactRequest() *ContactRequest {
	return &ContactRequest{
		Name:            s.Name,
		Email:           s.Email,
		Phone:           nullIfEmpty(s.Phone),
		Service:         nullIfEmpty(s.Service),
		BudgetRange:     nullIfEmpty(s.BudgetRange),
		DesiredTimeline: nullIfEmpty(s.DesiredTimeline),
		ProjectLocation: nullIfEmpty(s.ProjectLocation),
		HowFoundUs:      nullIfEmpty(s.HowFoundUs),
		Message:         s.Message,
		Status:          ContactStatusPending,
	}
}

type UpdateContactStatusRequest struct {
	Status ContactStatus `json:"status" validate:"required,oneof=pending in_progress completed"`
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orEmpty(s *string) *string {
	if s == nil {
		empty := ""
		return &empty
	}
	return s
}
