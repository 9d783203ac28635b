package jobs

import (
	"context"
	"errors"

	"jobboard-backend/internal/shared/storage/dberr"
	"jobboard-backend/internal/shared/telemetry"
)

// Service forwards job operations to the store. Failures the store did not
// already log are logged here; results pass through unchanged.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create persists newJob and returns it with its assigned id.
func (s *Service) Create(ctx context.Context, newJob NewJob) (Job, error) {
	if err := s.ready(); err != nil {
		return Job{}, err
	}
	job, err := s.Repo.Create(ctx, newJob)
	if err != nil {
		return Job{}, logFailure("jobs.create", err)
	}
	return job, nil
}

// GetByID returns the job or an error matching ErrNotFound.
func (s *Service) GetByID(ctx context.Context, jobID JobID) (Job, error) {
	if err := s.ready(); err != nil {
		return Job{}, err
	}
	job, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		return Job{}, logFailure("jobs.get_by_id", err)
	}
	return job, nil
}

// List returns live jobs ordered by id, skipping offset rows. A nil limit means no limit.
func (s *Service) List(ctx context.Context, limit *int32, offset int32) ([]Job, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if limit != nil && *limit < 0 {
		return nil, logFailure("jobs.list", ErrInvalidInput)
	}
	jobs, err := s.Repo.List(ctx, limit, offset)
	if err != nil {
		return nil, logFailure("jobs.list", err)
	}
	return jobs, nil
}

// ListIncludingDeleted is List without the soft-delete filter.
func (s *Service) ListIncludingDeleted(ctx context.Context, limit *int32, offset int32) ([]Job, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if limit != nil && *limit < 0 {
		return nil, logFailure("jobs.list_including_deleted", ErrInvalidInput)
	}
	jobs, err := s.Repo.ListIncludingDeleted(ctx, limit, offset)
	if err != nil {
		return nil, logFailure("jobs.list_including_deleted", err)
	}
	return jobs, nil
}

// Update persists every field of job, keyed by job.ID.
func (s *Service) Update(ctx context.Context, job Job) (Job, error) {
	if err := s.ready(); err != nil {
		return Job{}, err
	}
	if job.ID == nil {
		return Job{}, logFailure("jobs.update", ErrInvalidInput)
	}
	updated, err := s.Repo.Update(ctx, job)
	if err != nil {
		return Job{}, logFailure("jobs.update", err)
	}
	return updated, nil
}

// Delete soft-deletes the job. The result reports that the statement ran, not that a row matched.
func (s *Service) Delete(ctx context.Context, jobID JobID) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	deleted, err := s.Repo.Delete(ctx, jobID)
	if err != nil {
		return false, logFailure("jobs.delete", err)
	}
	return deleted, nil
}

func (s *Service) ready() error {
	if s == nil || s.Repo == nil {
		return errors.New("jobs service not configured")
	}
	return nil
}

func logFailure(op string, err error) error {
	if !dberr.IsLogged(err) {
		telemetry.Error("jobs.action_failed", map[string]any{
			"op":    op,
			"error": err,
		})
	}
	return err
}
