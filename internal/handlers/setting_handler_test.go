package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"cwdp/internal/models"
	"cwdp/internal/services"
)

func TestBulkUpsertSettingsRefreshesPublicSettings(t *testing.T) {
	repos := newTestRepos()
	repos.settings.values[models.SettingShowProjectsSection] = "true"
	cache := services.NewQueryCache(time.Minute)
	content := repos.content(cache)
	h := NewSettingHandler(repos.settings, cache)

	r := chi.NewRouter()
	r.Put("/admin/settings", h.BulkUpsert)

	before, err := content.Settings(context.Background())
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if !before.Enabled(models.SettingShowProjectsSection) {
		t.Fatalf("expected projects section enabled")
	}

	w := doJSON(t, r, http.MethodPut, "/admin/settings", map[string]any{
		"settings": []map[string]any{
			{"key": models.SettingShowProjectsSection, "value": "false"},
			{"key": models.SettingStatsTitle, "value": "Os nossos números"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	after, err := content.Settings(context.Background())
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if after.Enabled(models.SettingShowProjectsSection) {
		t.Fatalf("expected cached settings to be invalidated")
	}
	if after.Get(models.SettingStatsTitle, "") != "Os nossos números" {
		t.Fatalf("unexpected stats title %q", after.Get(models.SettingStatsTitle, ""))
	}
	if repos.settings.lists != 2 {
		t.Fatalf("expected exactly one reload, got %d loads", repos.settings.lists)
	}
}

func TestBulkUpsertSettingsValidation(t *testing.T) {
	repos := newTestRepos()
	h := NewSettingHandler(repos.settings, services.NewQueryCache(time.Minute))
	r := chi.NewRouter()
	r.Put("/admin/settings", h.BulkUpsert)

	w := doJSON(t, r, http.MethodPut, "/admin/settings", map[string]any{"settings": []any{}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestUpsertSettingByKeyAndListSubset(t *testing.T) {
	repos := newTestRepos()
	repos.settings.values[models.SettingCompanyName] = "CWDP"
	h := NewSettingHandler(repos.settings, services.NewQueryCache(time.Minute))
	r := chi.NewRouter()
	r.Get("/admin/settings", h.List)
	r.Put("/admin/settings/{key}", h.Upsert)

	w := doJSON(t, r, http.MethodPut, "/admin/settings/"+models.SettingContactEmail, map[string]any{"value": "geral@cwdp.pt"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/admin/settings?keys="+models.SettingContactEmail+",missing", nil)
	var list []models.Setting
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(list) != 1 || list[0].Key != models.SettingContactEmail || *list[0].Value != "geral@cwdp.pt" {
		t.Fatalf("unexpected subset %+v", list)
	}
}
