// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// --- Output DTOs ---

// PublicUser is the projection of a user record that is safe to return to a
// client. It never carries the password hash.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Create validates the input, hashes the password, normalizes the name
	// and persists a new user, returning its public projection.
	Create(ctx context.Context, input CreateUserInput) (*PublicUser, error)

	// FindByID returns the public projection of the user with the given id.
	FindByID(ctx context.Context, id string) (*PublicUser, error)
}
