package routes

import (
	"github.com/go-chi/chi/v5"

	"cwdp/internal/handlers"
)

func RegisterPublicRoutes(router chi.Router, h *handlers.PublicHandler) {
	router.Route("/public", func(r chi.Router) {
		r.Get("/projects", h.Projects)
		r.Get("/partners", h.Partners)
		r.Get("/stats", h.Stats)
		r.Get("/gallery", h.Gallery)
		r.Get("/settings", h.Settings)
	})
}
