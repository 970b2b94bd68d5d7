package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cwdp/internal/handlers"
	"cwdp/internal/site"
)

// RegisterSiteRoutes mounts the rendered pages, their form posts and the
// embedded static assets.
func RegisterSiteRoutes(router chi.Router, h *handlers.SiteHandler) {
	router.Get("/", h.Home)
	router.Post("/contato", h.SubmitContact)
	router.Post("/consent", h.Consent)
	router.Get("/privacidade", h.Privacy)
	router.Get("/termos", h.Terms)

	static := http.StripPrefix("/static/", http.FileServer(http.FS(site.StaticFS())))
	router.Handle("/static/*", static)
}
