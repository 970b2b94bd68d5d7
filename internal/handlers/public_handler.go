package handlers

import (
	"log"
	"net/http"
	"strconv"

	"cwdp/internal/services"
)

const maxFeaturedLimit = 50

// PublicHandler serves the cached, visitor-facing reads as JSON.
type PublicHandler struct {
	content *services.Content
}

func NewPublicHandler(content *services.Content) *PublicHandler {
	return &PublicHandler{content: content}
}

func writeContentError(w http.ResponseWriter, err error, section string) {
	log.Printf("Failed to load %s: %v", section, err)
	writeJSONErrorResponse(w, http.StatusInternalServerError, "load_"+section+"_failed", "Failed to load "+section)
}

// @Tags Public
// @Summary Featured projects
// @Produce json
// @Param limit query int false "Maximum number of projects (default 6)"
// @Success 200 {array} models.Project
// @Failure 400 {object} map[string]interface{}
// @Router /public/projects [get]
func (h *PublicHandler) Projects(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxFeaturedLimit {
			writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_limit", "limit must be between 1 and 50")
			return
		}
		limit = n
	}

	projects, err := h.content.FeaturedProjects(r.Context(), limit)
	if err != nil {
		writeContentError(w, err, "projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// @Tags Public
// @Summary Active partners
// @Produce json
// @Success 200 {array} models.Partner
// @Router /public/partners [get]
func (h *PublicHandler) Partners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.content.ActivePartners(r.Context())
	if err != nil {
		writeContentError(w, err, "partners")
		return
	}
	writeJSON(w, http.StatusOK, partners)
}

// @Tags Public
// @Summary Active stats
// @Produce json
// @Success 200 {array} models.Stat
// @Router /public/stats [get]
func (h *PublicHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.content.ActiveStats(r.Context())
	if err != nil {
		writeContentError(w, err, "stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// @Tags Public
// @Summary Active gallery items
// @Produce json
// @Success 200 {array} models.GalleryItem
// @Router /public/gallery [get]
func (h *PublicHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ActiveGallery(r.Context())
	if err != nil {
		writeContentError(w, err, "gallery")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Tags Public
// @Summary Site settings as a key to value map
// @Produce json
// @Success 200 {object} map[string]string
// @Router /public/settings [get]
func (h *PublicHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.content.Settings(r.Context())
	if err != nil {
		writeContentError(w, err, "settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
