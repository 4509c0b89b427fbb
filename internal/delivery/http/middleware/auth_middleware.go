package middleware

import (
	"strings"

	"newsbite/internal/delivery/http/response"
	"newsbite/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo.Context key the authenticated user's ID is
// stored under.
const ContextKeyUserID = "userID"

// AuthMiddleware guards routes behind a valid bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the authenticated user
// ID on the request context. The token carries only subject and purpose;
// role checks happen in the usecases against the loaded account.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Invalid token format, must be Bearer token")
		}

		subject, err := m.tokenSvc.Verify(tokenString, service.TokenPurposeAccess)
		if err != nil {
			return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Invalid or expired token")
		}

		userID, err := uuid.Parse(subject)
		if err != nil {
			return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Invalid subject in token")
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}

// UserID extracts the authenticated user ID set by Authenticate. The second
// return is false on routes the middleware never ran on.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}
