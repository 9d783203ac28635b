package resumes

import (
	"context"

	"jobboard-backend/internal/shared/ids"
)

// Repo defines persistence operations for resumes.
type Repo interface {
	Create(ctx context.Context, info ResumeInfo) (Resume, error)
	GetByID(ctx context.Context, resumeID ResumeID) (Resume, error)
	// GetByUserID returns the single live resume of a user.
	GetByUserID(ctx context.Context, userID ids.UserID) (Resume, error)
	List(ctx context.Context) ([]Resume, error)
	ListIncludingDeleted(ctx context.Context) ([]Resume, error)
	Update(ctx context.Context, resumeID ResumeID, info ResumeInfo) (Resume, error)
	Delete(ctx context.Context, resumeID ResumeID) (bool, error)
}
