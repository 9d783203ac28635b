package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request and records request metrics.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		durationMs := float64(latency.Microseconds()) / 1000.0
		metrics.ObserveRequest(c.Writer.Status(), durationMs)

		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": durationMs,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
