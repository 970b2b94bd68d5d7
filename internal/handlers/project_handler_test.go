package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"cwdp/internal/models"
	"cwdp/internal/services"
)

func TestPutProjectRefreshesFeaturedList(t *testing.T) {
	repos := newTestRepos()
	repos.projects.projects = []models.Project{
		{ID: "project-1", Title: "Moradia em Braga", Status: models.ProjectStatusCompleted, IsFeatured: true},
	}
	cache := services.NewQueryCache(time.Minute)
	admin := NewProjectHandler(repos.projects, cache)
	public := NewPublicHandler(repos.content(cache))

	r := chi.NewRouter()
	r.Get("/public/projects", public.Projects)
	r.Put("/admin/projects/{id}", admin.Put)

	var featured []models.Project
	w := doJSON(t, r, http.MethodGet, "/public/projects?limit=3", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &featured); err != nil || len(featured) != 1 {
		t.Fatalf("expected one featured project, got %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, "/admin/projects/project-1", map[string]any{
		"title":       "Moradia em Braga",
		"status":      "completed",
		"is_featured": false,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/public/projects?limit=3", nil)
	featured = nil
	if err := json.Unmarshal(w.Body.Bytes(), &featured); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(featured) != 0 {
		t.Fatalf("expected featured cache to be invalidated, got %+v", featured)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	repos := newTestRepos()
	h := NewProjectHandler(repos.projects, services.NewQueryCache(time.Minute))
	r := chi.NewRouter()
	r.Post("/admin/projects", h.Create)

	w := doJSON(t, r, http.MethodPost, "/admin/projects", map[string]any{
		"title":  "Armazém",
		"status": "demolished",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if len(repos.projects.projects) != 0 {
		t.Fatalf("expected no insert")
	}
}

func TestPublicProjectsRejectsBadLimit(t *testing.T) {
	public := NewPublicHandler(newTestRepos().content(services.NewQueryCache(time.Minute)))
	r := chi.NewRouter()
	r.Get("/public/projects", public.Projects)

	w := doJSON(t, r, http.MethodGet, "/public/projects?limit=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}
