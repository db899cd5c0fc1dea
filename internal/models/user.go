package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level of a user within its organization.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account inside one organization.
// Usernames are unique per organization, not globally.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// OrgID is the owning organization.
	OrgID string

	// Username is the login name, unique within the organization.
	Username string

	// Role gates which routes/actions the user may perform.
	Role Role

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a user with a fresh ID and creation timestamp.
func NewUser(orgID, username string, role Role, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		OrgID:        orgID,
		Username:     username,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
