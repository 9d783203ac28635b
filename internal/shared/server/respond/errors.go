package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/telemetry"
)

// ErrorBody is the object carried under "error" in every failed response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error aborts the request with the error envelope. Server errors are logged at
// error severity, client errors at info.
func Error(c *gin.Context, status int, code, message string, details any) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"request_id": c.GetString("requestId"),
	}
	if status >= http.StatusInternalServerError {
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Info("http.error", fields)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}
