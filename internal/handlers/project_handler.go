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

type ProjectHandler struct {
	repo  interfaces.ProjectRepository
	cache *services.QueryCache
	v     *validator.Validate
}

func NewProjectHandler(repo interfaces.ProjectRepository, cache *services.QueryCache) *ProjectHandler {
	return &ProjectHandler{repo: repo, cache: cache, v: newValidator()}
}

// @Tags Projects
// @Summary List all projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Project
// @Router /admin/projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	listCached(w, r, h.cache, services.KeyAdminProjects, "project", func(ctx context.Context) ([]models.Project, error) {
		return h.repo.List(ctx, interfaces.ListOptions{})
	})
}

// @Tags Projects
// @Summary Get a project
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]interface{}
// @Router /admin/projects/{id} [get]
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err, "project", "get")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// @Tags Projects
// @Summary Create a project
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateProjectRequest true "Project"
// @Success 201 {object} models.Project
// @Failure 400 {object} map[string]interface{}
// @Router /admin/projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if !decodeAndValidate(w, r, h.v, &req) {
		return
	}

	project := req.Project()
	if err := h.repo.Create(r.Context(), project); err != nil {
		writeRepoError(w, err, "project", "create")
		return
	}
	h.cache.InvalidateCollection(services.CollectionProjects)
	writeJSON(w, http.StatusCreated, project)
}

// @Tags Projects
// @Summary Edit some project fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param body body models.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} models.Project
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/projects/{id} [patch]
func (h *ProjectHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProjectRequest
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

// @Tags Projects
// @Summary Replace a project
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param body body models.CreateProjectRequest true "Project"
// @Success 200 {object} models.Project
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/projects/{id} [put]
func (h *ProjectHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if !decodeAndValidate(w, r, h.v, &req) {
		return
	}
	h.update(w, r, req.Update())
}

func (h *ProjectHandler) update(w http.ResponseWriter, r *http.Request, req *models.UpdateProjectRequest) {
	id := chi.URLParam(r, "id")
	if err := h.repo.Update(r.Context(), id, req); err != nil {
		writeRepoError(w, err, "project", "update")
		return
	}
	h.cache.InvalidateCollection(services.CollectionProjects)

	project, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "project", "get")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// @Tags Projects
// @Summary Delete a project
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/projects/{id} [delete]
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err, "project", "delete")
		return
	}
	h.cache.InvalidateCollection(services.CollectionProjects)
	writeJSONMessage(w, http.StatusOK, "project deleted")
}
