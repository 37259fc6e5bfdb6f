package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fittrack/internal/domain/entity"
	"fittrack/internal/domain/repository"
	"fittrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	subject string
}

func (s *stubTokenService) Issue(subject string, custom map[string]any) (string, error) {
	return "token", nil
}

func (s *stubTokenService) IssueWithTTL(subject string, custom map[string]any, ttl time.Duration) (string, error) {
	return "token", nil
}

func (s *stubTokenService) Verify(tokenString string) (*service.Claims, error) {
	if tokenString != "valid-token" {
		return nil, service.ErrInvalidToken
	}

	return &service.Claims{Subject: s.subject}, nil
}

func (s *stubTokenService) AccessTokenDuration() time.Duration {
	return time.Hour
}

type stubUserRepo struct {
	user *entity.User
}

func (r *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, repository.ErrUserNotFound
	}

	return r.user, nil
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (r *stubUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return nil, nil
}

type authFixture struct {
	middleware *AuthMiddleware
	user       *entity.User
}

func newAuthFixture() *authFixture {
	user := &entity.User{
		ID:    uuid.New(),
		Name:  "Jordan",
		Email: "jordan@example.com",
		Role:  entity.RoleAthlete,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &authFixture{
		middleware: NewAuthMiddleware(
			&stubTokenService{subject: user.ID.String()},
			&stubUserRepo{user: user},
			logger,
		),
		user: user,
	}
}

func performRequest(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, *entity.User) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var principal *entity.User
	next := func(c echo.Context) error {
		principal = Principal(c)

		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, principal
}

func TestAuthenticate_ValidToken(t *testing.T) {
	f := newAuthFixture()

	rec, principal := performRequest(t, f.middleware, "Bearer valid-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, principal)
	assert.Equal(t, f.user.ID, principal.ID)
}

func TestAuthenticate_RejectionsAreUniform(t *testing.T) {
	f := newAuthFixture()

	cases := map[string]string{
		"missing header":   "",
		"wrong scheme":     "Basic valid-token",
		"empty token":      "Bearer ",
		"invalid token":    "Bearer garbage",
		"unknown subject":  "Bearer valid-token-for-nobody",
		"malformed bearer": "valid-token",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec, principal := performRequest(t, f.middleware, header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			assert.Nil(t, principal)
		})
	}
}

func TestAuthenticate_SubjectMustResolveToUser(t *testing.T) {
	f := newAuthFixture()
	// Token verifies but the subject no longer exists in storage.
	f.middleware.userRepo = &stubUserRepo{}

	rec, principal := performRequest(t, f.middleware, "Bearer valid-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, principal)
}

func TestPrincipal_NilOutsideMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, Principal(c))
}
