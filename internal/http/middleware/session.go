package middleware

import (
	"github.com/gin-gonic/gin"

	"geministore.com/app/internal/http/sessioncookie"
	"geministore.com/app/internal/modules/accounts"
)

const CtxKeySession = "session"

// SessionMiddleware resolves the signed session cookie against the live
// registry. A cookie for a dropped session is cleared, not an error.
func SessionMiddleware(codec *sessioncookie.Codec, registry *accounts.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := codec.GetSessionID(c)
		if !ok {
			c.Next()
			return
		}

		sess, ok := registry.Get(id)
		if !ok {
			codec.Clear(c)
			c.Next()
			return
		}

		c.Set(CtxKeySession, sess)
		c.Next()
	}
}

// CurrentSession returns the logged-in session, if any.
func CurrentSession(c *gin.Context) (*accounts.Session, bool) {
	if v, ok := c.Get(CtxKeySession); ok {
		if s, ok := v.(*accounts.Session); ok {
			return s, true
		}
	}
	return nil, false
}
