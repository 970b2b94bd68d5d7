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

type StatHandler struct {
	repo  interfaces.StatRepository
	cache *services.QueryCache
	v     *validator.Validate
}

func NewStatHandler(repo interfaces.StatRepository, cache *services.QueryCache) *StatHandler {
	return &StatHandler{repo: repo, cache: cache, v: newValidator()}
}

// @Tags Stats
// @Summary List all stats
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Stat
// @Router /admin/stats [get]
func (h *StatHandler) List(w http.ResponseWriter, r *http.Request) {
	listCached(w, r, h.cache, services.KeyAdminStats, "stat", func(ctx context.Context) ([]models.Stat, error) {
		return h.repo.List(ctx, interfaces.ListOptions{})
	})
}

// @Tags Stats
// @Summary Get a stat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stat ID"
// @Success 200 {object} models.Stat
// @Failure 404 {object} map[string]interface{}
// @Router /admin/stats/{id} [get]
func (h *StatHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err, "stat", "get")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// @Tags Stats
// @Summary Create a stat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateStatRequest true "Stat"
// @Success 201 {object} models.Stat
// @Failure 400 {object} map[string]interface{}
// @Router /admin/stats [post]
func (h *StatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStatRequest
	if !decodeAndValidate(w, r, h.v, &req) {
		return
	}

	item := req.Stat()
	if err := h.repo.Create(r.Context(), item); err != nil {
		writeRepoError(w, err, "stat", "create")
		return
	}
	h.cache.InvalidateCollection(services.CollectionStats)
	writeJSON(w, http.StatusCreated, item)
}

// @Tags Stats
// @Summary Edit some stat fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stat ID"
// @Param body body models.UpdateStatRequest true "Fields to change"
// @Success 200 {object} models.Stat
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/stats/{id} [patch]
func (h *StatHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateStatRequest
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

// @Tags Stats
// @Summary Replace a stat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stat ID"
// @Param body body models.CreateStatRequest true "Stat"
// @Success 200 {object} models.Stat
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/stats/{id} [put]
func (h *StatHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStatRequest
	if !decodeAndValidate(w, r, h.v, &req) {
		return
	}
	h.update(w, r, req.Update())
}

func (h *StatHandler) update(w http.ResponseWriter, r *http.Request, req *models.UpdateStatRequest) {
	id := chi.URLParam(r, "id")
	if err := h.repo.Update(r.Context(), id, req); err != nil {
		writeRepoError(w, err, "stat", "update")
		return
	}
	h.cache.InvalidateCollection(services.CollectionStats)

	item, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "stat", "get")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// @Tags Stats
// @Summary Delete a stat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stat ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/stats/{id} [delete]
func (h *StatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err, "stat", "delete")
		return
	}
	h.cache.InvalidateCollection(services.CollectionStats)
	writeJSONMessage(w, http.StatusOK, "stat deleted")
}
