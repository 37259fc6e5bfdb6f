// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"fittrack/config"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/service"
)

const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 128

	// bcrypt reads at most 72 bytes of input and errors beyond that, so the
	// strength policy ceiling is clamped to what Hash can actually accept.
	bcryptMaxPasswordBytes = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// bcrypt embeds a fresh random salt in every hash, so hashing the same
// password twice yields different strings, and its comparison runs in
// constant time over the digest.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
// The cost factor is tunable upward through configuration to keep pace
// with hardware speedups.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	strength := config.PasswordStrengthConfig{
		MinLength:        defaultMinPasswordLength,
		MaxLength:        defaultMaxPasswordLength,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
		if strength.MinLength <= 0 {
			strength.MinLength = defaultMinPasswordLength
		}
		if strength.MaxLength <= 0 {
			strength.MaxLength = defaultMaxPasswordLength
		}
	}
	if strength.MaxLength > bcryptMaxPasswordBytes {
		strength.MaxLength = bcryptMaxPasswordBytes
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt handles salt generation internally.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash. Malformed hashes
// compare as non-matching rather than failing.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the plaintext against the configured
// strength policy. The policy mirrors the signup validation of the API:
// length bounds plus required character classes.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var problems []string

	if len(password) < h.strength.MinLength {
		problems = append(problems, "too short")
	}
	if len(password) > h.strength.MaxLength {
		problems = append(problems, "too long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if h.strength.RequireUppercase && !hasUpper {
		problems = append(problems, "missing uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		problems = append(problems, "missing lowercase letter")
	}
	if h.strength.RequireNumbers && !hasDigit {
		problems = append(problems, "missing digit")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		problems = append(problems, "missing special character")
	}

	if len(problems) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails(strings.Join(problems, ", "))
	}

	return nil
}
