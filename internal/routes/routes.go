// internal/routes/routes.go
package routes

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"cwdp/internal/config"
	"cwdp/internal/handlers"
	"cwdp/internal/repository"
	"cwdp/internal/services"
	"cwdp/internal/site"
	"cwdp/internal/storage"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, store storage.ObjectStore, mailer services.EmailSender) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Upload-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	projects := repository.NewProjectRepository(db)
	gallery := repository.NewGalleryRepository(db)
	partners := repository.NewPartnerRepository(db)
	stats := repository.NewStatRepository(db)
	settings := repository.NewSettingRepository(db)
	contacts := repository.NewContactRequestRepository(db)
	profiles := repository.NewProfileRepository(db)

	cache := services.NewQueryCache(cfg.CacheTTL)
	content := services.NewContent(projects, gallery, partners, stats, settings, cache)
	progress := services.NewProgressTracker()
	uploader := services.NewImageUploader(store, cfg.UploadMaxBytes, progress)
	notifier := services.NewContactNotifier(mailer, content)

	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load site templates: %w", err)
	}

	base := handlers.NewBaseHandler(db, cfg)
	contactHandler := handlers.NewContactHandler(contacts, cache, notifier)
	siteHandler := handlers.NewSiteHandler(site.NewBuilder(content, services.DefaultFeaturedLimit), renderer, contactHandler)

	// Health check
	r.Get("/health", base.Health)

	RegisterSwaggerRoutes(r)
	RegisterSiteRoutes(r, siteHandler)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		RegisterPublicRoutes(r, handlers.NewPublicHandler(content))
		r.Post("/contact-requests", contactHandler.CreateContactRequest)
		RegisterAuthRoutes(r, profiles, cfg)

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin(cfg, profiles))
			RegisterAdminRoutes(r, adminHandlers{
				projects: handlers.NewProjectHandler(projects, cache),
				gallery:  handlers.NewGalleryHandler(gallery, cache, uploader),
				partners: handlers.NewPartnerHandler(partners, cache),
				stats:    handlers.NewStatHandler(stats, cache),
				settings: handlers.NewSettingHandler(settings, cache),
				contacts: contactHandler,
				logos:    handlers.NewLogoHandler(gallery, settings, cache),
				uploads:  handlers.NewUploadHandler(uploader, progress),
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Página não encontrada", http.StatusNotFound)
	})

	return r, nil
}
