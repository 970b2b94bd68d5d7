package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
	"cwdp/internal/services"
)

// LogoHandler lets an admin pick the site and footer logos from the gallery
// or from a freshly uploaded image.
type LogoHandler struct {
	gallery  interfaces.GalleryRepository
	settings interfaces.SettingRepository
	cache    *services.QueryCache
	v        *validator.Validate
}

func NewLogoHandler(gallery interfaces.GalleryRepository, settings interfaces.SettingRepository, cache *services.QueryCache) *LogoHandler {
	return &LogoHandler{gallery: gallery, settings: settings, cache: cache, v: newValidator()}
}

// @Tags Logos
// @Summary Current logos and pickable gallery images
// @Produce json
// @Security BearerAuth
// @Param category query string false "Gallery category"
// @Param q query string false "Title or description substring"
// @Success 200 {object} models.LogoOverview
// @Router /admin/logos [get]
func (h *LogoHandler) Overview(w http.ResponseWriter, r *http.Request) {
	current, err := h.settings.GetByKeys(r.Context(), []string{models.SettingSiteLogoURL, models.SettingFooterLogoURL})
	if err != nil {
		writeRepoError(w, err, "setting", "list")
		return
	}
	items, err := h.gallery.List(r.Context(), interfaces.ListOptions{ActiveOnly: true})
	if err != nil {
		writeRepoError(w, err, "gallery item", "list")
		return
	}

	values := models.SettingsFromList(current)
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	overview := models.LogoOverview{
		SiteLogoURL:   values.Get(models.SettingSiteLogoURL, ""),
		FooterLogoURL: values.Get(models.SettingFooterLogoURL, ""),
		Categories:    []string{},
		Images:        []models.GalleryItem{},
	}
	seen := map[string]bool{}
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			overview.Categories = append(overview.Categories, item.Category)
		}
		if category != "" && category != "all" && item.Category != category {
			continue
		}
		if q != "" && !matchesQuery(item, q) {
			continue
		}
		overview.Images = append(overview.Images, item)
	}
	sort.Strings(overview.Categories)

	writeJSON(w, http.StatusOK, overview)
}

func matchesQuery(item models.GalleryItem, q string) bool {
	if strings.Contains(strings.ToLower(item.Title), q) {
		return true
	}
	return item.Description != nil && strings.Contains(strings.ToLower(*item.Description), q)
}

// @Tags Logos
// @Summary Select the site or footer logo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param target path string true "site or footer"
// @Param body body models.SelectLogoRequest true "Gallery item or image URL"
// @Success 200 {object} models.Setting
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/logos/{target} [put]
func (h *LogoHandler) Select(w http.ResponseWriter, r *http.Request) {
	key, description, ok := models.LogoTarget(chi.URLParam(r, "target")).SettingKey()
	if !ok {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_target", "Target must be site or footer")
		return
	}

	var req models.SelectLogoRequest
	if !decodeAndValidate(w, r, h.v, &req) {
		return
	}
	if (req.GalleryID == "") == (req.ImageURL == "") {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "Provide exactly one of gallery_id or image_url")
		return
	}

	url := req.ImageURL
	if req.GalleryID != "" {
		item, err := h.gallery.GetByID(r.Context(), req.GalleryID)
		if err != nil {
			writeRepoError(w, err, "gallery item", "get")
			return
		}
		url = item.ImageURL
	}

	setting := &models.Setting{Key: key, Value: &url, Description: &description}
	if err := h.settings.Upsert(r.Context(), setting); err != nil {
		writeRepoError(w, err, "setting", "save")
		return
	}
	h.cache.InvalidateCollection(services.CollectionSettings)
	writeJSON(w, http.StatusOK, setting)
}
