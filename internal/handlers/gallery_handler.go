package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
	"cwdp/internal/services"
)

// ImageRemover deletes stored images by their public URL.
type ImageRemover interface {
	RemoveByURL(ctx context.Context, bucket models.Bucket, publicURL string) error
}

type GalleryHandler struct {
	repo   interfaces.GalleryRepository
	cache  *services.QueryCache
	images ImageRemover
	v      *validator.Validate
}

func NewGalleryHandler(repo interfaces.GalleryRepository, cache *services.QueryCache, images ImageRemover) *GalleryHandler {
	return &GalleryHandler{repo: repo, cache: cache, images: images, v: newValidator()}
}

// @Tags Gallery
// @Summary List all gallery items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.GalleryItem
// @Router /admin/gallery [get]
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	listCached(w, r, h.cache, services.KeyAdminGallery, "gallery item", func(ctx context.Context) ([]models.GalleryItem, error) {
		return h.repo.List(ctx, interfaces.ListOptions{})
	})
}

// @Tags Gallery
// @Summary Get a gallery item
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Success 200 {object} models.GalleryItem
// @Failure 404 {object} map[string]interface{}
// @Router /admin/gallery/{id} [get]
func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err, "gallery item", "get")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// @Tags Gallery
// @Summary Create a gallery item
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateGalleryItemRequest true "Gallery item"
// @Success 201 {object} models.GalleryItem
// @Failure 400 {object} map[string]interface{}
// @Router /admin/gallery [post]
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGalleryItemRequest
	if !decodeAndValidate(w, r, h.v, &req) {
		return
	}

	item := req.GalleryItem()
	if err := h.repo.Create(r.Context(), item); err != nil {
		writeRepoError(w, err, "gallery item", "create")
		return
	}
	h.cache.InvalidateCollection(services.CollectionGallery)
	writeJSON(w, http.StatusCreated, item)
}

// @Tags Gallery
// @Summary Edit some gallery item fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Param body body models.UpdateGalleryItemRequest true "Fields to change"
// @Success 200 {object} models.GalleryItem
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/gallery/{id} [patch]
func (h *GalleryHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateGalleryItemRequest
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

// @Tags Gallery
// @Summary Replace a gallery item
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Param body body models.CreateGalleryItemRequest true "Gallery item"
// @Success 200 {object} models.GalleryItem
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/gallery/{id} [put]
func (h *GalleryHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGalleryItemRequest
	if !decodeAndValidate(w, r, h.v, &req) {
		return
	}
	h.update(w, r, req.Update())
}

func (h *GalleryHandler) update(w http.ResponseWriter, r *http.Request, req *models.UpdateGalleryItemRequest) {
	id := chi.URLParam(r, "id")
	if err := h.repo.Update(r.Context(), id, req); err != nil {
		writeRepoError(w, err, "gallery item", "update")
		return
	}
	h.cache.InvalidateCollection(services.CollectionGallery)

	item, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "gallery item", "get")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// @Tags Gallery
// @Summary Delete a gallery item
// @Description The row is removed first; the stored image is then removed best effort.
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "gallery item", "get")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err, "gallery item", "delete")
		return
	}
	h.cache.InvalidateCollection(services.CollectionGallery)

	if h.images != nil {
		if err := h.images.RemoveByURL(r.Context(), models.BucketGallery, item.ImageURL); err != nil {
			log.Printf("Failed to remove image for gallery item %s: %v", id, err)
		}
	}
	writeJSONMessage(w, http.StatusOK, "gallery item deleted")
}
