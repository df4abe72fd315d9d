package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"passport/internal/delivery/http/response"
	"passport/internal/domain/service"
)

// UserIDContextKey is the echo context key under which the authenticated
// user's id is stored for downstream handlers.
const UserIDContextKey = "userID"

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the subject user id on
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		}
		if claims.UserID == "" {
			return response.Error(c, http.StatusUnauthorized, "User ID missing from token")
		}

		c.Set(UserIDContextKey, claims.UserID)

		return next(c)
	}
}
