package resumes

import (
	"context"
	"errors"
	"strings"

	"jobboard-backend/internal/shared/ids"
	"jobboard-backend/internal/shared/storage/dberr"
	"jobboard-backend/internal/shared/telemetry"
)

// Service forwards resume operations to the store, logging failures the store
// did not log itself.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Create(ctx context.Context, info ResumeInfo) (Resume, error) {
	if err := s.ready(); err != nil {
		return Resume{}, err
	}
	if err := validateInfo(info); err != nil {
		return Resume{}, logFailure("resumes.create", err)
	}
	resume, err := s.Repo.Create(ctx, info)
	if err != nil {
		return Resume{}, logFailure("resumes.create", err)
	}
	return resume, nil
}

func (s *Service) GetByID(ctx context.Context, resumeID ResumeID) (Resume, error) {
	if err := s.ready(); err != nil {
		return Resume{}, err
	}
	resume, err := s.Repo.GetByID(ctx, resumeID)
	if err != nil {
		return Resume{}, logFailure("resumes.get_by_id", err)
	}
	return resume, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID ids.UserID) (Resume, error) {
	if err := s.ready(); err != nil {
		return Resume{}, err
	}
	resume, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return Resume{}, logFailure("resumes.get_by_user_id", err)
	}
	return resume, nil
}

func (s *Service) List(ctx context.Context) ([]Resume, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	out, err := s.Repo.List(ctx)
	if err != nil {
		return nil, logFailure("resumes.list", err)
	}
	return out, nil
}

func (s *Service) ListIncludingDeleted(ctx context.Context) ([]Resume, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	out, err := s.Repo.ListIncludingDeleted(ctx)
	if err != nil {
		return nil, logFailure("resumes.list_including_deleted", err)
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, resumeID ResumeID, info ResumeInfo) (Resume, error) {
	if err := s.ready(); err != nil {
		return Resume{}, err
	}
	if err := validateInfo(info); err != nil {
		return Resume{}, logFailure("resumes.update", err)
	}
	resume, err := s.Repo.Update(ctx, resumeID, info)
	if err != nil {
		return Resume{}, logFailure("resumes.update", err)
	}
	return resume, nil
}

// Delete soft-deletes the resume; true means the statement ran.
func (s *Service) Delete(ctx context.Context, resumeID ResumeID) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	deleted, err := s.Repo.Delete(ctx, resumeID)
	if err != nil {
		return false, logFailure("resumes.delete", err)
	}
	return deleted, nil
}

func (s *Service) ready() error {
	if s == nil || s.Repo == nil {
		return errors.New("resumes service not configured")
	}
	return nil
}

func validateInfo(info ResumeInfo) error {
	if strings.TrimSpace(info.Email) == "" {
		return ErrInvalidInput
	}
	return nil
}

func logFailure(op string, err error) error {
	if !dberr.IsLogged(err) {
		telemetry.Error("resumes.action_failed", map[string]any{
			"op":    op,
			"error": err,
		})
	}
	return err
}
