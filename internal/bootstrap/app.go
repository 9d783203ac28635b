package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/resumes"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/server"
	"jobboard-backend/internal/shared/storage/db"
	"jobboard-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	JobsRepo       jobs.Repo
	ResumesRepo    resumes.Repo
	JobsService    *jobs.Service
	ResumesService *resumes.Service
}

// Build connects the database (or falls back to memory stores in dev) and wires
// stores, services, handlers and the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if sqlDB != nil {
		app.JobsRepo = &jobs.PGRepo{DB: sqlDB}
		app.ResumesRepo = &resumes.PGRepo{DB: sqlDB}
	} else {
		app.JobsRepo = jobs.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
	}
	app.JobsService = jobs.NewService(app.JobsRepo)
	app.ResumesService = resumes.NewService(app.ResumesRepo)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		JobHandler:    jobs.NewHandler(app.JobsService),
		ResumeHandler: resumes.NewHandler(app.ResumesService),
	})
	return app, nil
}

// Close releases the database pool if one was opened.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_stores", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Error("bootstrap.memory_stores", map[string]any{"reason": "database connect failed", "error": err})
			return nil, nil
		}
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
