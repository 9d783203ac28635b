package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/resumes"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
)

// RouterDeps holds handlers mounted by NewRouter.
type RouterDeps struct {
	Config        config.Config
	JobHandler    *jobs.Handler
	ResumeHandler *resumes.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	if deps.JobHandler != nil {
		deps.JobHandler.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})
	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
