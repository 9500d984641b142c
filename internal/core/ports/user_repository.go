// Package ports defines the persistence contracts the core depends on.
// Adapters implement them; the domain and application layers only see these interfaces.
package ports

import (
	"context"

	"accounts/internal/core/domain/model/kernel"
	"accounts/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for RegisteredUser aggregates.
type UserRepository interface {
	// Add persists a new user. It fails with errs.ErrAlreadyExists when the
	// e-mail address is taken.
	Add(ctx context.Context, u *user.RegisteredUser) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *user.RegisteredUser) error

	// Get retrieves a user by identifier. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.ID[user.RegisteredUser]) (*user.RegisteredUser, error)

	// GetByEmail retrieves a user by exact e-mail address.
	// Returns errs.ErrObjectNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*user.RegisteredUser, error)
}
