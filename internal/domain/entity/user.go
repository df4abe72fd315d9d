// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a single registered account.
type User struct {
	ID           string    // The store-assigned identifier (hex ObjectID), set exactly once on insert.
	Name         string    // The user's display name, title-cased and trimmed on creation.
	Email        string    // The user's email, unique across all accounts (case-insensitive).
	PasswordHash string    // One-way hash of the user's password. Never serialized outward.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
