package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"geministore.com/app/internal/shared/apperr"
)

// Fail records the error for ErrorHandler and stops the chain.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler turns recorded errors into one JSON error response. The
// whole surface is JSON; there is no HTML error page.
func ErrorHandler(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		rid := GetRequestID(c)

		if status >= 500 {
			l.LogAttrs(c.Request.Context(), slog.LevelError, "request_failed",
				slog.String("request_id", rid),
				slog.Int("status", status),
				slog.Any("err", err),
			)
		}

		payload := gin.H{
			"error":      apperr.PublicMessage(err),
			"request_id": rid,
		}
		if ae, ok := apperr.As(err); ok && len(ae.Fields) > 0 {
			payload["fields"] = ae.Fields
		}
		c.AbortWithStatusJSON(status, payload)
	}
}
