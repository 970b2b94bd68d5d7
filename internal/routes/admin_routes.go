package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cwdp/internal/handlers"
)

type adminHandlers struct {
	projects *handlers.ProjectHandler
	gallery  *handlers.GalleryHandler
	partners *handlers.PartnerHandler
	stats    *handlers.StatHandler
	settings *handlers.SettingHandler
	contacts *handlers.ContactHandler
	logos    *handlers.LogoHandler
	uploads  *handlers.UploadHandler
}

type crudHandler interface {
	List(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Patch(http.ResponseWriter, *http.Request)
	Put(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

func registerCRUD(router chi.Router, pattern string, h crudHandler) {
	router.Route(pattern, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Patch("/", h.Patch)
			r.Put("/", h.Put)
			r.Delete("/", h.Delete)
		})
	})
}

// RegisterAdminRoutes expects router to be guarded by JWT and admin checks.
func RegisterAdminRoutes(router chi.Router, h adminHandlers) {
	registerCRUD(router, "/projects", h.projects)
	registerCRUD(router, "/gallery", h.gallery)
	registerCRUD(router, "/partners", h.partners)
	registerCRUD(router, "/stats", h.stats)

	router.Route("/settings", func(r chi.Router) {
		r.Get("/", h.settings.List)
		r.Put("/", h.settings.BulkUpsert)
		r.Put("/{key}", h.settings.Upsert)
	})

	router.Route("/contact-requests", func(r chi.Router) {
		r.Get("/", h.contacts.ListContactRequests)
		r.Get("/{id}", h.contacts.GetContactRequest)
		r.Patch("/{id}/status", h.contacts.UpdateContactStatus)
	})

	router.Route("/logos", func(r chi.Router) {
		r.Get("/", h.logos.Overview)
		r.Put("/{target}", h.logos.Select)
	})

	router.Route("/uploads", func(r chi.Router) {
		r.Get("/progress/{uploadID}", h.uploads.Progress)
		r.Post("/{bucket}", h.uploads.Upload)
		r.Delete("/{bucket}", h.uploads.Delete)
	})
}
