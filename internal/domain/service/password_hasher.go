// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The salt is
	// fresh per call, so hashing the same password twice yields different
	// strings.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// It returns false for malformed hashes; it never panics on untrusted
	// input.
	Check(password, hash string) bool

	// ValidatePasswordStrength checks the plaintext against the configured
	// strength policy before hashing.
	ValidatePasswordStrength(password string) error
}
