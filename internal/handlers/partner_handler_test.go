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

func partnerRouter(repos *testRepos) http.Handler {
	cache := services.NewQueryCache(time.Minute)
	admin := NewPartnerHandler(repos.partners, cache)
	public := NewPublicHandler(repos.content(cache))

	r := chi.NewRouter()
	r.Get("/public/partners", public.Partners)
	r.Route("/admin/partners", func(r chi.Router) {
		r.Get("/", admin.List)
		r.Post("/", admin.Create)
		r.Get("/{id}", admin.Get)
		r.Patch("/{id}", admin.Patch)
		r.Put("/{id}", admin.Put)
		r.Delete("/{id}", admin.Delete)
	})
	return r
}

func decodePartners(t *testing.T, body []byte) []models.Partner {
	t.Helper()
	var list []models.Partner
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("invalid json %s: %v", body, err)
	}
	return list
}

func TestPartnerLifecycleAcrossAdminAndPublicLists(t *testing.T) {
	repos := newTestRepos()
	repos.partners.partners = []models.Partner{
		{ID: "existing", Name: "Betão Norte", LogoURL: "https://cdn.example/b.png", IsActive: true, DisplayOrder: 3},
	}
	router := partnerRouter(repos)

	// Warm both caches so the create has something to invalidate.
	doJSON(t, router, http.MethodGet, "/admin/partners", nil)
	doJSON(t, router, http.MethodGet, "/public/partners", nil)

	w := doJSON(t, router, http.MethodPost, "/admin/partners", map[string]any{
		"name":          "Acme",
		"logo_url":      "https://cdn.example/acme.png",
		"display_order": 0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	var acme models.Partner
	if err := json.Unmarshal(w.Body.Bytes(), &acme); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !acme.IsActive {
		t.Fatalf("expected partner to default to active")
	}

	admin := decodePartners(t, doJSON(t, router, http.MethodGet, "/admin/partners", nil).Body.Bytes())
	public := decodePartners(t, doJSON(t, router, http.MethodGet, "/public/partners", nil).Body.Bytes())
	if len(admin) != 2 || admin[0].Name != "Acme" {
		t.Fatalf("expected Acme first in admin list, got %+v", admin)
	}
	if len(public) != 2 || public[0].Name != "Acme" {
		t.Fatalf("expected Acme first in public list, got %+v", public)
	}

	w = doJSON(t, router, http.MethodPatch, "/admin/partners/"+acme.ID, map[string]any{"is_active": false})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	admin = decodePartners(t, doJSON(t, router, http.MethodGet, "/admin/partners", nil).Body.Bytes())
	public = decodePartners(t, doJSON(t, router, http.MethodGet, "/public/partners", nil).Body.Bytes())
	if len(admin) != 2 {
		t.Fatalf("admin list should keep inactive partners, got %+v", admin)
	}
	if len(public) != 1 || public[0].Name != "Betão Norte" {
		t.Fatalf("public list should drop Acme, got %+v", public)
	}
}

func TestCreatePartnerValidation(t *testing.T) {
	repos := newTestRepos()
	w := doJSON(t, partnerRouter(repos), http.MethodPost, "/admin/partners", map[string]any{
		"name":     "Acme",
		"logo_url": "not a url",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if len(repos.partners.partners) != 0 {
		t.Fatalf("expected no insert")
	}
}

func TestPatchPartnerRequiresFields(t *testing.T) {
	repos := newTestRepos()
	repos.partners.partners = []models.Partner{{ID: "p1", Name: "Acme", LogoURL: "https://cdn.example/a.png"}}

	w := doJSON(t, partnerRouter(repos), http.MethodPatch, "/admin/partners/p1", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestPutPartnerClearsOmittedOptionals(t *testing.T) {
	repos := newTestRepos()
	site := "https://acme.pt"
	repos.partners.partners = []models.Partner{{ID: "p1", Name: "Acme", LogoURL: "https://cdn.example/a.png", WebsiteURL: &site, IsActive: true}}

	w := doJSON(t, partnerRouter(repos), http.MethodPut, "/admin/partners/p1", map[string]any{
		"name":          "Acme SA",
		"logo_url":      "https://cdn.example/a2.png",
		"display_order": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	got := repos.partners.partners[0]
	if got.Name != "Acme SA" || got.DisplayOrder != 2 {
		t.Fatalf("unexpected partner %+v", got)
	}
	if got.WebsiteURL == nil || *got.WebsiteURL != "" {
		t.Fatalf("expected website to be cleared, got %v", got.WebsiteURL)
	}
}

func TestDeletePartnerNotFound(t *testing.T) {
	w := doJSON(t, partnerRouter(newTestRepos()), http.MethodDelete, "/admin/partners/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}
