package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth gates routes behind a live session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
