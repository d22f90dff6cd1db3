package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for the user registry.
type UserRepository interface {
	// Add persists a new user. Fails with a DuplicateKeyError if the
	// username is already taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetAll retrieves every user.
	GetAll(ctx context.Context) ([]*user.User, error)
}
