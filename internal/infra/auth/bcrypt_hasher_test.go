package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/config"
	domainerrors "fittrack/internal/domain/errors"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // MinCost keeps the tests fast.
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltUniqueness(t *testing.T) {
	hasher := newTestHasher()

	password := "StrongPass123!"
	first, err := hasher.Hash(password)
	require.NoError(t, err)
	second, err := hasher.Hash(password)
	require.NoError(t, err)

	// Each call embeds a fresh random salt.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("StrongPass123!", "invalid_hash"))
	assert.False(t, hasher.Check("StrongPass123!", ""))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
	}
	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "expected no error for valid password: %s", password)
	}

	weakPasswords := []string{
		"123",          // Too short.
		"password123!", // No uppercase.
		"PASSWORD123!", // No lowercase.
		"Password!!!!", // No digit.
		"Password1234", // No special character.
	}
	for _, password := range weakPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.Error(t, err, "expected error for weak password: %s", password)
	}
}

func TestBcryptHasher_PolicyCeilingMatchesHashLimit(t *testing.T) {
	hasher := newTestHasher()

	// Multibyte password: 64 runes but 124 bytes. bcrypt would refuse it,
	// so the strength policy must refuse it first.
	multibyte := strings.Repeat("é", 60) + "Aa1!"
	err := hasher.ValidatePasswordStrength(multibyte)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	// Anything the policy accepts must hash without error.
	longest := strings.Repeat("Aa1!", 18) // 72 bytes exactly.
	require.NoError(t, hasher.ValidatePasswordStrength(longest))
	hash, err := hasher.Hash(longest)
	require.NoError(t, err)
	assert.True(t, hasher.Check(longest, hash))
}

func TestBcryptHasher_ConfiguredCeilingIsClamped(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        128,
			RequireLowercase: true,
		},
	}
	hasher := NewBcryptHasher(cfg)

	// 100 single-byte characters: within the configured 128 but beyond what
	// bcrypt accepts, so the clamped policy rejects it.
	assert.Error(t, hasher.ValidatePasswordStrength(strings.Repeat("a", 100)))
}

func TestBcryptHasher_StrengthPolicyFromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        4,
			MaxLength:        64,
			RequireUppercase: false,
			RequireLowercase: true,
			RequireNumbers:   false,
			RequireSpecial:   false,
		},
	}
	hasher := NewBcryptHasher(cfg)

	assert.NoError(t, hasher.ValidatePasswordStrength("abcd"))
	assert.Error(t, hasher.ValidatePasswordStrength("ABCD"))
}
