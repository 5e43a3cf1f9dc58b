package middleware

import (
	"github.com/gin-gonic/gin"

	"sportshub-backend/internal/shared/response"
)

// RequireRole gates a route to the given roles. Must run after
// AuthMiddleware; a request with no resolved identity is rejected with
// 401 rather than 403.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		role, ok := RoleFromContext(c)
		if !ok {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		if !allowed[role] {
			response.Forbidden(c, "forbidden")
			c.Abort()
			return
		}

		c.Next()
	}
}
