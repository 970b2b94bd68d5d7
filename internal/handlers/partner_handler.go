package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
	"cwdp/internal/services"
)

type PartnerHandler struct {
	repo  interfaces.PartnerRepository
	cache *services.QueryCache
	v     *validator.Validate
}

func NewPartnerHandler(repo interfaces.PartnerRepository, cache *services.QueryCache) *PartnerHandler {
	return &PartnerHandler{repo: repo, cache: cache, v: newValidator()}
}

// @Tags Partners
// @Summary List all partners
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Partner
// @Router /admin/partners [get]
func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	listCached(w, r, h.cache, services.KeyAdminPartners, "partner", func(ctx context.Context) ([]models.Partner, error) {
		return h.repo.List(ctx, interfaces.ListOptions{})
	})
}

// @Tags Partners
// @Summary Get a partner
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Success 200 {object} models.Partner
// @Failure 404 {object} map[string]interface{}
// @Router /admin/partners/{id} [get]
func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err, "partner", "get")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// @Tags Partners
// @Summary Create a partner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreatePartnerRequest true "Partner"
// @Success 201 {object} models.Partner
// @Failure 400 {object} map[string]interface{}
// @Router /admin/partners [post]
func (h *PartnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePartnerRequest
	if !decodeAndValidate(w, r, h.v, &req) {
		return
	}

	item := req.Partner()
	if err := h.repo.Create(r.Context(), item); err != nil {
		writeRepoError(w, err, "partner", "create")
		return
	}
	h.cache.InvalidateCollection(services.CollectionPartners)
	writeJSON(w, http.StatusCreated, item)
}

// @Tags Partners
// @Summary Edit some partner fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Param body body models.UpdatePartnerRequest true "Fields to change"
// @Success 200 {object} models.Partner
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/partners/{id} [patch]
func (h *PartnerHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePartnerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Empty() {
		writeJSONErrorResponse(w, http.StatusBadRequest, "no_fields", "No fields to update")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", validationMessage(err))
		return
	}
	h.update(w, r, &req)
}

// @Tags Partners
// @Summary Replace a partner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Param body body models.CreatePartnerRequest true "Partner"
// @Success 200 {object} models.Partner
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/partners/{id} [put]
func (h *PartnerHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePartnerRequest
	if !decodeAndValidate(w, r, h.v, &req) {
		return
	}
	h.update(w, r, req.Update())
}

func (h *PartnerHandler) update(w http.ResponseWriter, r *http.Request, req *models.UpdatePartnerRequest) {
	id := chi.URLParam(r, "id")
	if err := h.repo.Update(r.Context(), id, req); err != nil {
		writeRepoError(w, err, "partner", "update")
		return
	}
	h.cache.InvalidateCollection(services.CollectionPartners)

	item, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "partner", "get")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// @Tags Partners
// @Summary Delete a partner
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/partners/{id} [delete]
func (h *PartnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err, "partner", "delete")
		return
	}
	h.cache.InvalidateCollection(services.CollectionPartners)
	writeJSONMessage(w, http.StatusOK, "partner deleted")
}
