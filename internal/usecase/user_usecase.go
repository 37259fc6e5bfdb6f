// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	// Role is optional; empty defaults to the athlete role.
	Role entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account. A duplicate email fails with
	// ErrEmailTaken whether detected by the pre-check or by the storage
	// unique constraint.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues an access token. Unknown email
	// and wrong password fail identically with ErrInvalidCredentials.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// GetProfile returns the account identified by userID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
