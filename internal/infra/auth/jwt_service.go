// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"fittrack/config"
	"fittrack/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing secret and algorithm are fixed at construction and read-only
// afterwards.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
// Only the HS256 algorithm is supported; tokens are an external interface
// and the signing scheme is part of their stability contract. When no
// secret is configured outside production, the documented development
// fallback is substituted and logged loudly.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	if !strings.EqualFold(cfg.JWT.Algorithm, "HS256") {
		return nil, errors.Errorf("unsupported jwt algorithm %q, only HS256 is supported", cfg.JWT.Algorithm)
	}

	secret := cfg.JWT.Secret
	if strings.TrimSpace(secret) == "" {
		if cfg.IsProduction() {
			return nil, errors.New("jwt secret must be configured in production")
		}
		secret = config.DevFallbackSecret
		logger.Error("JWT secret not configured, using the INSECURE development fallback; do not run this build outside local development")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    time.Duration(cfg.JWT.ExpireMinutes) * time.Minute,
	}, nil
}

// Issue creates a signed token for the subject using the configured TTL.
func (s *jwtService) Issue(subject string, custom map[string]any) (string, error) {
	return s.IssueWithTTL(subject, custom, s.ttl)
}

// IssueWithTTL creates a signed token with an explicit TTL. Registered
// claims always override colliding custom claims.
func (s *jwtService) IssueWithTTL(subject string, custom map[string]any, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range custom {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		// Signing fails only for unserializable claims; a configuration
		// defect, not a user error.
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token's signature, structure and expiry. Every failure
// collapses to service.ErrInvalidToken so callers cannot distinguish an
// expired token from a tampered or malformed one.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrInvalidToken
	}

	subject, ok := mapClaims["sub"].(string)
	if !ok || subject == "" {
		return nil, service.ErrInvalidToken
	}

	issuedAt, err := mapClaims.GetIssuedAt()
	if err != nil || issuedAt == nil {
		return nil, service.ErrInvalidToken
	}
	expiresAt, err := mapClaims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, service.ErrInvalidToken
	}

	custom := make(map[string]any)
	for k, v := range mapClaims {
		switch k {
		case "sub", "iat", "exp":
		default:
			custom[k] = v
		}
	}

	return &service.Claims{
		Subject:   subject,
		IssuedAt:  issuedAt.Time,
		ExpiresAt: expiresAt.Time,
		Custom:    custom,
	}, nil
}

// AccessTokenDuration returns the configured token time-to-live.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.ttl
}
