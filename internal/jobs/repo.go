package jobs

import "context"

// Repo defines persistence operations for job postings.
type Repo interface {
	Create(ctx context.Context, newJob NewJob) (Job, error)
	GetByID(ctx context.Context, jobID JobID) (Job, error)
	// List returns jobs not marked deleted, ordered by id. A nil limit returns every row.
	List(ctx context.Context, limit *int32, offset int32) ([]Job, error)
	ListIncludingDeleted(ctx context.Context, limit *int32, offset int32) ([]Job, error)
	Update(ctx context.Context, job Job) (Job, error)
	Delete(ctx context.Context, jobID JobID) (bool, error)
}
