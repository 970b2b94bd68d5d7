package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
	"cwdp/internal/services"
)

const notifyTimeout = 30 * time.Second

// ContactNotifier is told about every stored contact request.
type ContactNotifier interface {
	Notify(ctx context.Context, req *models.ContactRequest)
}

type ContactHandler struct {
	repo     interfaces.ContactRequestRepository
	cache    *services.QueryCache
	notifier ContactNotifier
	v        *validator.Validate
}

func NewContactHandler(repo interfaces.ContactRequestRepository, cache *services.QueryCache, notifier ContactNotifier) *ContactHandler {
	return &ContactHandler{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		v:        newValidator(),
	}
}

// submit stores a normalized, validated submission as a pending request and
// fires the notification in the background.
func (h *ContactHandler) submit(ctx context.Context, sub models.ContactSubmission) (*models.ContactRequest, error) {
	req := sub.ContactRequest()
	if err := h.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	h.cache.InvalidateCollection(services.CollectionContactRequests)

	if h.notifier != nil {
		go func(ctx context.Context) {
			ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
			defer cancel()
			h.notifier.Notify(ctx, req)
		}(context.WithoutCancel(ctx))
	}
	return req, nil
}

// @Tags Contact
// @Summary Submit a contact request
// @Accept json
// @Produce json
// @Param body body models.ContactSubmission true "Contact form"
// @Success 201 {object} models.ContactRequest
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /contact-requests [post]
func (h *ContactHandler) CreateContactRequest(w http.ResponseWriter, r *http.Request) {
	var sub models.ContactSubmission
	if !decodeJSON(w, r, &sub) {
		return
	}
	sub.Normalize()
	if err := h.v.Struct(sub); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", validationMessage(err))
		return
	}

	req, err := h.submit(r.Context(), sub)
	if err != nil {
		log.Printf("Error creating contact request: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "create_contact_request_failed", "Failed to send contact request")
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

// @Tags Contact
// @Summary List contact requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ContactRequest
// @Router /admin/contact-requests [get]
func (h *ContactHandler) ListContactRequests(w http.ResponseWriter, r *http.Request) {
	listCached(w, r, h.cache, services.KeyAdminContactRequests, "contact request", h.repo.List)
}

// @Tags Contact
// @Summary Get a contact request
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact request ID"
// @Success 200 {object} models.ContactRequest
// @Failure 404 {object} map[string]interface{}
// @Router /admin/contact-requests/{id} [get]
func (h *ContactHandler) GetContactRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err, "contact request", "get")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// @Tags Contact
// @Summary Move a contact request forward
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact request ID"
// @Param body body models.UpdateContactStatusRequest true "New status"
// @Success 200 {object} models.ContactRequest
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /admin/contact-requests/{id}/status [patch]
func (h *ContactHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body models.UpdateContactStatusRequest
	if !decodeAndValidate(w, r, h.v, &body) {
		return
	}

	current, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "contact request", "get")
		return
	}
	if !current.Status.CanTransitionTo(body.Status) {
		writeJSONErrorResponse(w, http.StatusConflict, "invalid_transition",
			"Cannot move request from "+string(current.Status)+" to "+string(body.Status))
		return
	}

	if err := h.repo.UpdateStatus(r.Context(), id, body.Status); err != nil {
		writeRepoError(w, err, "contact request", "update")
		return
	}
	h.cache.InvalidateCollection(services.CollectionContactRequests)

	current.Status = body.Status
	current.UpdatedAt = time.Now().UTC()
	writeJSON(w, http.StatusOK, current)
}
