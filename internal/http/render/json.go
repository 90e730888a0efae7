package render

import (
	"github.com/gin-gonic/gin"

	"geministore.com/app/internal/http/middleware"
	"geministore.com/app/pkg/view"
)

// JSON writes the payload, attaching any pending flash from the cookie so
// the client shows it exactly once.
func JSON(c *gin.Context, status int, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	if f := middleware.GetFlash(c); f != nil {
		payload["flash"] = f
	}
	c.JSON(status, payload)
}

// JSONWithFlash writes the payload with an inline transient message.
func JSONWithFlash(c *gin.Context, status int, payload gin.H, kind view.FlashKind, msg string) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["flash"] = view.Flash{Kind: kind, Message: msg}
	c.JSON(status, payload)
}
