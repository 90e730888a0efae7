package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates routes behind the admin role. The role was fixed when
// the session was created; it is never re-derived here.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}
		if !sess.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "Access Denied: Admin privileges required.",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
