package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/respond"
	"jobboard-backend/internal/shared/telemetry"
)

// Recovery turns a panicking handler into a 500 with the error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			telemetry.Error("request.panic", map[string]any{
				"request_id": RequestIDFromContext(c),
				"route":      c.FullPath(),
				"method":     c.Request.Method,
				"panic":      fmt.Sprint(rec),
				"stack":      string(debug.Stack()),
			})
			if c.Writer.Written() {
				c.Abort()
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected server error", nil)
		}()
		c.Next()
	}
}
