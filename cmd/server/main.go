package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/portfolio-content-api/internal/api"
	"github.com/portfolio-content-api/internal/auth"
	"github.com/portfolio-content-api/internal/config"
	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/secrets"
	"github.com/portfolio-content-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting portfolio content API server...")

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Resolve secrets, falling back to environment values
	ctx := context.Background()
	provider := secrets.New(cfg.Secrets, log)
	dsn := provider.DatabaseDSN(ctx, cfg.Database.GetDSN())
	cfg.Auth.SigningSecret = provider.SigningSecret(ctx, cfg.Auth.SigningSecret)
	bootstrap := provider.Bootstrap(ctx, secrets.BootstrapAdmin{
		Email:    cfg.Auth.BootstrapEmail,
		Password: cfg.Auth.BootstrapPassword,
		Name:     cfg.Auth.BootstrapName,
	})

	// Initialize database
	db, err := database.New(dsn, &cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Seed the initial admin account
	if bootstrap.Email != "" && bootstrap.Password != "" {
		hash, err := auth.HashPassword(bootstrap.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash bootstrap password")
		}
		if err := repos.User.EnsureBootstrapAdmin(ctx, bootstrap.Email, bootstrap.Name, hash); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed bootstrap admin")
		}
		log.Info().Str("email", bootstrap.Email).Msg("Bootstrap admin ensured")
	}

	// Select the credential verifier
	var verifier auth.Verifier
	switch cfg.Auth.Mode {
	case "remote":
		verifier = auth.NewRemoteVerifier(cfg.Auth.ProviderURL, cfg.Auth.ProviderKey)
		log.Info().Str("provider", cfg.Auth.ProviderURL).Msg("Using remote token verification")
	default:
		verifier = auth.NewLocalVerifier(cfg.Auth.SigningSecret)
		log.Info().Msg("Using local token verification")
	}
	issuer := auth.NewIssuer(cfg.Auth.SigningSecret, cfg.Auth.TokenTTL)

	// Initialize router
	router := api.NewRouter(db, repos, verifier, issuer, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
