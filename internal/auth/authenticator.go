package auth

import (
	"context"

	"github.com/mmynk/shuttlecash/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// Only club administrators authenticate; players never log in.
type Authenticator interface {
	// Register creates a new administrator with the given username and credential.
	Register(ctx context.Context, username, credential string) (*models.User, error)

	// Authenticate verifies the credentials and returns the user if successful.
	Authenticate(ctx context.Context, username, credential string) (*models.User, error)

	// User returns the administrator with the given ID.
	User(ctx context.Context, userID string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
