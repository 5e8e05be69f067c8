package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskflow/taskflow-api/internal/domain"
)

// UserStore defines the interface for user credential persistence.
type UserStore interface {
	// Create saves a new user to the store. It hashes the plaintext
	// password itself before writing; the hash computation is an
	// explicit step of creation, never a lifecycle side effect.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their lowercased email address.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user carries the password hash for verification;
	// callers must never serialize it outward.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
