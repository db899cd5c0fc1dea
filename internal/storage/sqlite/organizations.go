package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amrbashir/erp-system-sub001/internal/models"
)

// CreateOrganization persists a new tenant.
func (s *SQLiteStore) CreateOrganization(ctx context.Context, org *models.Organization) error {
	if org.ID == "" {
		org.ID = uuid.New().String()
	}
	if org.CreatedAt == 0 {
		org.CreatedAt = time.Now().Unix()
	}
	if org.Currency == "" {
		org.Currency = "USD"
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO organizations (id, slug, name, currency, created_at) VALUES (?, ?, ?, ?, ?)",
		org.ID, org.Slug, org.Name, org.Currency, org.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	return nil
}

// GetOrganizationBySlug retrieves a tenant by slug.
func (s *SQLiteStore) GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	org := &models.Organization{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, slug, name, currency, created_at FROM organizations WHERE slug = ?",
		slug,
	).Scan(&org.ID, &org.Slug, &org.Name, &org.Currency, &org.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil // Organization not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organization by slug: %w", err)
	}

	return org, nil
}
