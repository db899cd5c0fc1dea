package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amrbashir/erp-system-sub001/internal/models"
)

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, org_id, username, role, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.OrgID,
		user.Username,
		user.Role,
		user.PasswordHash,
		user.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves a user by username within one organization.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, orgID, username string) (*models.User, error) {
	query := `
		SELECT id, org_id, username, role, password_hash, created_at
		FROM users
		WHERE org_id = ? AND username = ?
	`

	user := &models.User{}
	err := s.db.QueryRowContext(ctx, query, orgID, username).Scan(
		&user.ID,
		&user.OrgID,
		&user.Username,
		&user.Role,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, org_id, username, role, password_hash, created_at
		FROM users
		WHERE id = ?
	`

	user := &models.User{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.OrgID,
		&user.Username,
		&user.Role,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}
