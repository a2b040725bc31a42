package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the permission level carried by a session token.
type Role string

// RoleAdmin may read and change all club data.
const RoleAdmin Role = "admin"

// User represents an administrator account.
// Only administrators log in; players never authenticate.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the login name (unique).
	Username string

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string

	// Role is copied into every token issued for the user.
	Role Role

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64
}

// NewUser creates an administrator with a fresh ID and timestamps.
func NewUser(username, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
