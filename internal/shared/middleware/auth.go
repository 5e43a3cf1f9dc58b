package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sportshub-backend/internal/shared/response"
	"sportshub-backend/pkg/jwt"
)

// Cookie carrying the signed token. HTTP-only, so page scripts never
// see it; the middleware is the only reader.
const TokenCookieName = "token"

// Context keys populated by AuthMiddleware.
const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
	ContextRoleKey     = "role"
)

// AuthMiddleware authenticates the request from the token cookie.
// On success the resolved identity is attached to the Gin context;
// on any failure the request is aborted with 401.
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookieName)
		if err != nil || token == "" {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Set(ContextRoleKey, claims.Role)

		c.Next()
	}
}

// UserIDFromContext returns the authenticated user's id, or false when
// AuthMiddleware did not run on this route.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// RoleFromContext returns the authenticated user's role.
func RoleFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextRoleKey)
	if !exists {
		return "", false
	}
	role, ok := value.(string)
	return role, ok
}
