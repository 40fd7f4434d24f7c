package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for users.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, u *User) error

	// FindByID returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpdateProfile persists the mutable profile fields and returns the
	// updated record.
	UpdateProfile(ctx context.Context, u *User) error

	// ExistsByEmail reports whether the email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
