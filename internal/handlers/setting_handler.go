package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
	"cwdp/internal/services"
)

type SettingHandler struct {
	repo  interfaces.SettingRepository
	cache *services.QueryCache
	v     *validator.Validate
}

func NewSettingHandler(repo interfaces.SettingRepository, cache *services.QueryCache) *SettingHandler {
	return &SettingHandler{repo: repo, cache: cache, v: newValidator()}
}

// @Tags Settings
// @Summary List settings
// @Description Without keys every setting is returned, ordered by key.
// @Produce json
// @Security BearerAuth
// @Param keys query string false "Comma separated keys"
// @Success 200 {array} models.Setting
// @Router /admin/settings [get]
func (h *SettingHandler) List(w http.ResponseWriter, r *http.Request) {
	var keys []string
	for _, k := range strings.Split(r.URL.Query().Get("keys"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		listCached(w, r, h.cache, services.KeyAdminSettings, "setting", h.repo.List)
		return
	}

	settings, err := h.repo.GetByKeys(r.Context(), keys)
	if err != nil {
		writeRepoError(w, err, "setting", "list")
		return
	}
	if settings == nil {
		settings = []models.Setting{}
	}
	writeJSON(w, http.StatusOK, settings)
}

// @Tags Settings
// @Summary Upsert several settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.BulkUpsertSettingsRequest true "Settings"
// @Success 200 {array} models.Setting
// @Failure 400 {object} map[string]interface{}
// @Router /admin/settings [put]
func (h *SettingHandler) BulkUpsert(w http.ResponseWriter, r *http.Request) {
	var req models.BulkUpsertSettingsRequest
	if !decodeAndValidate(w, r, h.v, &req) {
		return
	}

	settings := make([]models.Setting, 0, len(req.Settings))
	for _, s := range req.Settings {
		settings = append(settings, models.Setting{Key: s.Key, Value: s.Value, Description: s.Description})
	}
	if err := h.repo.UpsertMany(r.Context(), settings); err != nil {
		writeRepoError(w, err, "setting", "save")
		return
	}
	h.cache.InvalidateCollection(services.CollectionSettings)
	writeJSON(w, http.StatusOK, settings)
}

// @Tags Settings
// @Summary Upsert one setting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param body body models.UpsertSettingRequest true "Value and description"
// @Success 200 {object} models.Setting
// @Failure 400 {object} map[string]interface{}
// @Router /admin/settings/{key} [put]
func (h *SettingHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertSettingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Key = chi.URLParam(r, "key")
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", validationMessage(err))
		return
	}

	setting := &models.Setting{Key: req.Key, Value: req.Value, Description: req.Description}
	if err := h.repo.Upsert(r.Context(), setting); err != nil {
		writeRepoError(w, err, "setting", "save")
		return
	}
	h.cache.InvalidateCollection(services.CollectionSettings)
	writeJSON(w, http.StatusOK, setting)
}
