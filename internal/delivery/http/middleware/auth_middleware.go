// Package middleware contains echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"habitar/config"
	"habitar/internal/delivery/http/response"
	"habitar/internal/domain/entity"
	domainerrors "habitar/internal/domain/errors"
	"habitar/internal/domain/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware.
const (
	KeyUserID = "userID"
	KeyEmail  = "email"
)

// AuthMiddleware verifies access tokens issued by the identity platform.
// Tokens are never issued here; this side only checks the shared-secret
// signature and extracts the subject.
type AuthMiddleware struct {
	userRepo repository.UserRepository
	secret   string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userRepo repository.UserRepository, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		userRepo: userRepo,
		secret:   cfg.SecretKey.Access,
	}
}

// Authenticate validates the bearer token and stores the subject's id and
// email on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		token, err := jwt.Parse(tokenString,
			func(_ *jwt.Token) (any, error) { return []byte(m.secret), nil },
			jwt.WithValidMethods([]string{"HS256"}),
		)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Failed to parse token claims")
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Subject missing from token")
		}
		userID, err := uuid.Parse(sub)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid subject format in token")
		}

		if email, ok := claims["email"].(string); ok {
			c.Set(KeyEmail, email)
		}
		c.Set(KeyUserID, userID)

		return next(c)
	}
}

// RequireAdmin checks the users table for the administrador role. The
// identity token is authoritative for credentials only; authorization always
// reads the application record.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get(KeyUserID).(uuid.UUID)
		if !ok {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: subject missing")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
		}

		if user.Role != entity.RoleAdmin || user.Status != entity.StatusActive {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: administrator role required")
		}

		return next(c)
	}
}
