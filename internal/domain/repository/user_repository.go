// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the given id or email.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when an insert loses the race on the store's
// unique email index. Exactly one of any set of concurrent inserts with the
// same email succeeds; the rest observe this error.
var ErrEmailTaken = errors.New("email already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Insert persists a new user and writes the store-assigned id back to the entity.
	Insert(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique id. A malformed id
	// is indistinguishable from an absent one: both yield ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by email, matched case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
