package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"cwdp/internal/services"
	"cwdp/internal/site"
)

func siteRouter(t *testing.T, repos *testRepos) http.Handler {
	t.Helper()
	cache := services.NewQueryCache(time.Minute)
	renderer, err := site.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	contacts := NewContactHandler(repos.contacts, cache, nil)
	h := NewSiteHandler(site.NewBuilder(repos.content(cache), services.DefaultFeaturedLimit), renderer, contacts)

	r := chi.NewRouter()
	r.Get("/", h.Home)
	r.Post("/contato", h.SubmitContact)
	r.Post("/consent", h.Consent)
	r.Get("/privacidade", h.Privacy)
	r.Get("/termos", h.Terms)
	return r
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validContactForm() url.Values {
	return url.Values{
		"name":             {"Ana Silva"},
		"email":            {"ana@example.pt"},
		"phone":            {"+351 912 345 678"},
		"service":          {"Remodelação"},
		"budget_range":     {""},
		"project_location": {"Porto"},
		"message":          {"Quero remodelar a cozinha."},
	}
}

func TestHomeRenders(t *testing.T) {
	w := httptest.NewRecorder()
	siteRouter(t, newTestRepos()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html got %q", ct)
	}
	if !strings.Contains(w.Body.String(), `action="/contato#contato"`) {
		t.Fatalf("expected contact form in page")
	}
}

func TestHomeRendersWhenSectionsFail(t *testing.T) {
	repos := newTestRepos()
	repos.stats.err = errDB

	w := httptest.NewRecorder()
	siteRouter(t, repos).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
}

func TestSubmitContactFormRedirectsOnSuccess(t *testing.T) {
	repos := newTestRepos()
	w := postForm(siteRouter(t, repos), "/contato", validContactForm())

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d (%s)", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/?contato=enviado#contato" {
		t.Fatalf("unexpected redirect %q", loc)
	}
	if repos.contacts.count() != 1 {
		t.Fatalf("expected exactly one insert, got %d", repos.contacts.count())
	}
	stored := repos.contacts.requests[0]
	if stored.BudgetRange != nil {
		t.Fatalf("expected blank budget stored as NULL")
	}
	if stored.ProjectLocation == nil || *stored.ProjectLocation != "Porto" {
		t.Fatalf("unexpected location %v", stored.ProjectLocation)
	}
}

func TestSubmitContactFormMissingFields(t *testing.T) {
	repos := newTestRepos()
	form := validContactForm()
	form.Set("phone", "  ")
	form.Del("message")

	w := postForm(siteRouter(t, repos), "/contato", form)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if repos.contacts.count() != 0 {
		t.Fatalf("expected no insert")
	}
	body := w.Body.String()
	if strings.Count(body, `class="error"`) != 2 {
		t.Fatalf("expected two field errors in page")
	}
	if !strings.Contains(body, `value="Ana Silva"`) {
		t.Fatalf("expected submitted values to be kept")
	}
}

func TestSubmitContactFormInsertFailureKeepsValues(t *testing.T) {
	repos := newTestRepos()
	repos.contacts.createErr = errDB

	w := postForm(siteRouter(t, repos), "/contato", validContactForm())

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "tente novamente") {
		t.Fatalf("expected failure notice")
	}
	if !strings.Contains(body, `value="Ana Silva"`) {
		t.Fatalf("expected submitted values to be kept")
	}
}

func TestConsentSetsCookieAndRedirects(t *testing.T) {
	router := siteRouter(t, newTestRepos())

	w := postForm(router, "/consent", url.Values{
		"choice":    {"custom"},
		"analytics": {"true"},
		"redirect":  {"/privacidade"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/privacidade" {
		t.Fatalf("unexpected redirect %q", loc)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != site.ConsentCookieName {
		t.Fatalf("expected consent cookie, got %v", cookies)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	prefs, ok := site.ReadConsent(req)
	if !ok || !prefs.Necessary || !prefs.Analytics || prefs.Marketing {
		t.Fatalf("unexpected preferences %+v (ok=%v)", prefs, ok)
	}
}

func TestConsentRejectsUnknownChoice(t *testing.T) {
	w := postForm(siteRouter(t, newTestRepos()), "/consent", url.Values{"choice": {"some"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestLocalRedirect(t *testing.T) {
	cases := map[string]string{
		"":                  "/",
		"/termos":           "/termos",
		"//evil.example":    "/",
		"https://evil.pt/x": "/",
		"/\\evil.example":   "/",
		"/?contato=enviado": "/?contato=enviado",
	}
	for in, want := range cases {
		if got := localRedirect(in); got != want {
			t.Fatalf("localRedirect(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLegalPagesRender(t *testing.T) {
	router := siteRouter(t, newTestRepos())
	for _, path := range []string{"/privacidade", "/termos"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, w.Code)
		}
	}
}
