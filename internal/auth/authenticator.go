package auth

import (
	"context"

	"github.com/amrbashir/erp-system-sub001/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods
// (password, passkeys, OAuth, etc.) without changing the service layer.
type Authenticator interface {
	// Register creates a new user account inside the given organization.
	// The credential format depends on the implementation.
	Register(ctx context.Context, orgID, username string, role models.Role, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials within the given
	// organization and returns the user if successful.
	Authenticate(ctx context.Context, orgID, username, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements (length, complexity, format).
	ValidateCredential(credential string) error
}
