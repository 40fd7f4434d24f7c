package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the credential store.
type Service interface {
	// Signup registers a new user and returns a signed token.
	// Returns ErrEmailAlreadyExists for a registered email.
	Signup(ctx context.Context, req SignupRequest) (*TokenResponse, error)

	// Signin authenticates by email/password and returns a signed token.
	// Returns ErrInvalidCredentials on any mismatch.
	Signin(ctx context.Context, req SigninRequest) (*TokenResponse, error)

	// GetProfile returns the caller's profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)

	// UpdateProfile applies the allow-listed fields.
	// Returns ErrNoFieldsToUpdate when nothing valid was supplied.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserDTO, error)
}
