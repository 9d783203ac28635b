package bootstrap

import (
	"context"
	"testing"

	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/resumes"
	"jobboard-backend/internal/shared/config"
)

func TestBuildFallsBackToMemoryInDev(t *testing.T) {
	app, err := Build(context.Background(), config.Config{Env: "dev"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer app.Close()

	if app.DB != nil {
		t.Fatalf("expected no database handle")
	}
	if _, ok := app.JobsRepo.(*jobs.MemoryRepo); !ok {
		t.Fatalf("expected memory jobs repo, got %T", app.JobsRepo)
	}
	if _, ok := app.ResumesRepo.(*resumes.MemoryRepo); !ok {
		t.Fatalf("expected memory resumes repo, got %T", app.ResumesRepo)
	}
	if app.Router == nil {
		t.Fatalf("expected router")
	}
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	if _, err := Build(context.Background(), config.Config{Env: "production"}); err == nil {
		t.Fatalf("expected error without DATABASE_URL in production")
	}
}
