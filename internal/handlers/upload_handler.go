package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"cwdp/internal/models"
	"cwdp/internal/services"
)

const (
	uploadIDHeader = "X-Upload-ID"
	// Room for multipart boundaries and the folder field on top of the file.
	multipartOverhead = 1 << 20
	multipartMemory   = 1 << 20
)

type UploadHandler struct {
	uploader *services.ImageUploader
	progress *services.ProgressTracker
}

func NewUploadHandler(uploader *services.ImageUploader, progress *services.ProgressTracker) *UploadHandler {
	return &UploadHandler{uploader: uploader, progress: progress}
}

// @Tags Uploads
// @Summary Upload an image
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param bucket path string true "projects, gallery or logos"
// @Param file formData file true "Image (jpeg, png, webp or gif)"
// @Param folder formData string false "Folder inside the bucket"
// @Param X-Upload-ID header string false "Client chosen id for progress polling"
// @Success 201 {object} models.UploadResult
// @Failure 400 {object} map[string]interface{}
// @Failure 413 {object} map[string]interface{}
// @Failure 415 {object} map[string]interface{}
// @Router /admin/uploads/{bucket} [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	bucket := models.Bucket(chi.URLParam(r, "bucket"))
	if !bucket.Valid() {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_bucket", "Bucket must be projects, gallery or logos")
		return
	}

	limit := h.uploader.MaxBytes() + multipartOverhead
	if r.ContentLength > limit {
		writeJSONErrorResponse(w, http.StatusRequestEntityTooLarge, "file_too_large", services.ErrFileTooLarge.Error())
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONErrorResponse(w, http.StatusRequestEntityTooLarge, "file_too_large", services.ErrFileTooLarge.Error())
			return
		}
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Expected a multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "missing_file", "A file field is required")
		return
	}
	defer file.Close()

	res, err := h.uploader.Upload(r.Context(), bucket, r.FormValue("folder"), file, header.Size, r.Header.Get(uploadIDHeader))
	if err != nil {
		writeUploadError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func writeUploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrFileTooLarge):
		writeJSONErrorResponse(w, http.StatusRequestEntityTooLarge, "file_too_large", err.Error())
	case errors.Is(err, services.ErrUnsupportedType):
		writeJSONErrorResponse(w, http.StatusUnsupportedMediaType, "unsupported_type", err.Error())
	case errors.Is(err, services.ErrInvalidBucket),
		errors.Is(err, services.ErrInvalidFolder),
		errors.Is(err, services.ErrEmptyFile):
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_upload", err.Error())
	default:
		log.Printf("Error storing upload: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "upload_failed", "Failed to store file")
	}
}

// @Tags Uploads
// @Summary Poll upload progress
// @Produce json
// @Security BearerAuth
// @Param uploadID path string true "Value sent in X-Upload-ID"
// @Success 200 {object} models.UploadProgress
// @Failure 404 {object} map[string]interface{}
// @Router /admin/uploads/progress/{uploadID} [get]
func (h *UploadHandler) Progress(w http.ResponseWriter, r *http.Request) {
	p, ok := h.progress.Get(chi.URLParam(r, "uploadID"))
	if !ok {
		writeJSONErrorResponse(w, http.StatusNotFound, "upload_not_found", "Unknown upload")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// @Tags Uploads
// @Summary Delete a stored object
// @Produce json
// @Security BearerAuth
// @Param bucket path string true "projects, gallery or logos"
// @Param path query string true "Object path inside the bucket"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /admin/uploads/{bucket} [delete]
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bucket := models.Bucket(chi.URLParam(r, "bucket"))
	objectPath := strings.TrimSpace(r.URL.Query().Get("path"))
	if objectPath == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "missing_path", "The path query parameter is required")
		return
	}

	if err := h.uploader.Remove(r.Context(), bucket, objectPath); err != nil {
		writeUploadError(w, err)
		return
	}
	writeJSONMessage(w, http.StatusOK, "file deleted")
}
