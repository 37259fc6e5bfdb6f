// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// The password hash is carried here because authentication is the only
// supported comparison operation on it; the plaintext never appears on
// any entity.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's display name.
	Email        string    // The user's login identifier. Matched exactly, no normalization.
	PasswordHash string    // The bcrypt hash of the user's password. Never the plaintext.
	Role         Role      // The account-level role. Defaults to RoleAthlete.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
