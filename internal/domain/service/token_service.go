package service

import (
	"errors"
	"time"
)

// ErrInvalidToken is the single error returned for every token rejection.
// Expired, tampered and malformed tokens are deliberately indistinguishable
// so that callers cannot be used as a verification oracle.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the verified content of a token. The subject is the
// canonical string form of the user ID; tokens are an external interface,
// so this representation is stable.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Custom    map[string]any // Caller-supplied claims beyond the registered set.
}

// TokenService defines the interface for issuing and verifying signed
// bearer tokens. This abstracts the token format from the use cases.
type TokenService interface {
	// Issue creates a signed token for the subject using the configured
	// time-to-live. Custom claims are merged in; the registered claims
	// (sub, iat, exp) always win on conflict.
	Issue(subject string, custom map[string]any) (string, error)

	// IssueWithTTL is Issue with an explicit time-to-live. A non-positive
	// ttl produces an already-expired token; useful only in tests.
	IssueWithTTL(subject string, custom map[string]any, ttl time.Duration) (string, error)

	// Verify checks signature, structure and expiry, returning the claims
	// on success and ErrInvalidToken on any failure.
	Verify(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token time-to-live.
	AccessTokenDuration() time.Duration
}
