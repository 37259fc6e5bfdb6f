package auth

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/config"
	"fittrack/internal/domain/service"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"
	cfg.JWT.Algorithm = "HS256"
	cfg.JWT.ExpireMinutes = 60

	svc, err := NewJWTService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t)

	subject := uuid.New().String()
	token, err := svc.Issue(subject, map[string]any{"role": "athlete"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.Equal(t, "athlete", claims.Custom["role"])
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt))
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt, 2*time.Second)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.IssueWithTTL(uuid.New().String(), nil, -time.Second)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(uuid.New().String(), nil)
	require.NoError(t, err)

	// Flip one character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	claims, err := svc.Verify(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(t)

	for _, tokenString := range []string{
		"",
		"clearly-not-a-jwt",
		"a.b",
		"a.b.c.d",
	} {
		claims, err := svc.Verify(tokenString)
		assert.Nil(t, claims, "token %q", tokenString)
		assert.ErrorIs(t, err, service.ErrInvalidToken, "token %q", tokenString)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	otherCfg := &config.Config{}
	otherCfg.JWT.Secret = "a_completely_different_secret_value"
	otherCfg.JWT.Algorithm = "HS256"
	otherCfg.JWT.ExpireMinutes = 60
	other, err := NewJWTService(otherCfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New().String(), nil)
	require.NoError(t, err)

	claims, err := other.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_MissingSubject(t *testing.T) {
	svc := newTestTokenService(t)

	// sub is always set by Issue; forge the nearest equivalent by issuing
	// for an empty subject.
	token, err := svc.Issue("", nil)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestNewJWTService_Config(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("rejects unsupported algorithm", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.JWT.Secret = "secret"
		cfg.JWT.Algorithm = "RS256"

		_, err := NewJWTService(cfg, logger)
		assert.Error(t, err)
	})

	t.Run("refuses empty secret in production", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Env.Env = "production"
		cfg.JWT.Algorithm = "HS256"

		_, err := NewJWTService(cfg, logger)
		assert.Error(t, err)
	})

	t.Run("falls back to dev secret outside production", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Env.Env = "local"
		cfg.JWT.Algorithm = "HS256"
		cfg.JWT.ExpireMinutes = 60

		svc, err := NewJWTService(cfg, logger)
		require.NoError(t, err)

		token, err := svc.Issue(uuid.New().String(), nil)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.NoError(t, err)
	})
}
