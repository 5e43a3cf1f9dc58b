package middleware

import (
	"fmt"
	"net/http"

	"sportshub-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Interface("panic", err).
					Msg("Panic recovered")

				response.Error(c, http.StatusInternalServerError, fmt.Sprintf("%v", err))
				c.Abort()
			}
		}()
		c.Next()
	}
}
