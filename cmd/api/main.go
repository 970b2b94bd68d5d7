// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"cwdp/internal/config"
	"cwdp/internal/db"
	"cwdp/internal/db/migrations"
	"cwdp/internal/repository"
	"cwdp/internal/routes"
	"cwdp/internal/services"
	"cwdp/internal/storage"
)

// @title CWDP API
// @version 1.0
// @description Content and contact API behind the CWDP construction company site.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Create database if it doesn't exist
	if err := db.CreateDatabaseIfNotExists(startupCtx, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	// Initialize database
	database, err := db.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run database migrations
	if err := migrations.RunMigrations(database.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	admin, err := services.EnsureAdmin(startupCtx, repository.NewProfileRepository(database.DB), cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to ensure admin profile: %v", err)
	}
	if admin != nil {
		log.Printf("Admin profile ready for %s", admin.Email)
	}

	store, err := storage.New(startupCtx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	var mailer services.EmailSender = services.NoopSender{}
	if cfg.SMTPEnabled() {
		mailer = services.NewSMTPSender(cfg)
	} else {
		log.Println("SMTP not configured, contact notifications disabled")
	}

	// Create router and setup routes
	router, err := routes.SetupRoutes(database.DB, cfg, store, mailer)
	if err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}

	// Create server
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %s (%s)", cfg.Port, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give server 5 seconds to finish current requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
