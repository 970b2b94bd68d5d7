package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cwdp/internal/config"
	"cwdp/internal/handlers"
	"cwdp/internal/interfaces"
	"cwdp/internal/middleware"
)

func requireAdmin(cfg *config.Config, profiles interfaces.ProfileRepository) func(http.Handler) http.Handler {
	auth := middleware.JWTAuth(cfg.JWTSecret)
	admin := middleware.RequireAdmin(profiles)
	return func(next http.Handler) http.Handler {
		return auth(admin(next))
	}
}

func RegisterAuthRoutes(router chi.Router, profiles interfaces.ProfileRepository, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(profiles, cfg)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.With(middleware.JWTAuth(cfg.JWTSecret)).Get("/me", authHandler.Me)
	})
}
