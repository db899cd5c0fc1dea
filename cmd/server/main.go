package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/amrbashir/erp-system-sub001/internal/auth"
	"github.com/amrbashir/erp-system-sub001/internal/models"
	"github.com/amrbashir/erp-system-sub001/internal/service"
	"github.com/amrbashir/erp-system-sub001/internal/storage"
	"github.com/amrbashir/erp-system-sub001/internal/storage/sqlite"
	"github.com/amrbashir/erp-system-sub001/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/erp.db")
	addr := ":" + getEnv("PORT", "8080")
	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	if err := seed(store); err != nil {
		slog.Error("Failed to seed default organization", "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(jwtSecret, 24*time.Hour)
	router := service.Router(store, jwtManager, slog.Default())

	// h2c lets clients speak HTTP/2 without TLS behind a terminating proxy.
	handler := h2c.NewHandler(router, &http2.Server{})

	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// seed creates the default organization and its admin account on
// first startup, so a fresh deployment is immediately usable.
func seed(store storage.Store) error {
	slug := getEnv("SEED_ORG_SLUG", "default")
	if !models.IsValidSlug(slug) {
		slog.Warn("SEED_ORG_SLUG is not a valid slug, skipping seed", "slug", slug)
		return nil
	}

	ctx := context.Background()
	org, err := store.GetOrganizationBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if org == nil {
		org = &models.Organization{
			Slug:     slug,
			Name:     getEnv("SEED_ORG_NAME", "Default Organization"),
			Currency: getEnv("SEED_ORG_CURRENCY", "USD"),
		}
		if err := store.CreateOrganization(ctx, org); err != nil {
			return err
		}
		slog.Info("Organization seeded", "slug", slug)
	}

	username := getEnv("SEED_ADMIN_USERNAME", "admin")
	existing, err := store.GetUserByUsername(ctx, org.ID, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	password := getEnv("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		slog.Warn("SEED_ADMIN_PASSWORD not set, skipping admin seed", "org", slug)
		return nil
	}

	authenticator := auth.NewPasswordAuthenticator(store)
	if _, err := authenticator.Register(ctx, org.ID, username, models.RoleAdmin, password); err != nil {
		return err
	}
	slog.Info("Admin account seeded", "org", slug, "username", username)

	return nil
}
