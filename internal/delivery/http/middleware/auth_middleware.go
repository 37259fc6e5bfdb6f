package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/delivery/http/response"
	"fittrack/internal/domain/entity"
	"fittrack/internal/domain/repository"
	"fittrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// principalContextKey is the echo context key the authenticated user is
// stored under.
const principalContextKey = "auth.principal"

// AuthMiddleware authenticates requests with a bearer access token and
// resolves the token subject to a live user record. Handlers behind it
// can rely on Principal returning a valid user.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, logger: logger}
}

// Authenticate validates the access token and loads the principal.
// Every rejection is identical: missing header, malformed scheme, bad
// signature, expiry, unparseable subject and deleted user all produce
// the same 401 so the gate leaks nothing about which check failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return m.reject(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return m.reject(c)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return m.reject(c)
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return m.reject(c)
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			return m.reject(c)
		}

		c.Set(principalContextKey, user)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Debug("Rejected unauthenticated request",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return response.Unauthorized(c, "UNAUTHORIZED", "Could not validate credentials")
}

// Principal returns the authenticated user set by Authenticate, or nil
// when the route is not behind the middleware.
func Principal(c echo.Context) *entity.User {
	user, _ := c.Get(principalContextKey).(*entity.User)

	return user
}
