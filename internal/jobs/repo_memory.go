package jobs

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores jobs in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID JobID
	byID   map[JobID]Job
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[JobID]Job)}
}

func (r *MemoryRepo) Create(ctx context.Context, newJob NewJob) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	job := newJob.Persisted(r.nextID)
	r.byID[r.nextID] = job
	return cloneJob(job), nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, jobID JobID) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.byID[jobID]
	if !ok {
		return Job{}, ErrNotFound
	}
	return cloneJob(job), nil
}

func (r *MemoryRepo) List(ctx context.Context, limit *int32, offset int32) ([]Job, error) {
	return r.list(ctx, limit, offset, false)
}

func (r *MemoryRepo) ListIncludingDeleted(ctx context.Context, limit *int32, offset int32) ([]Job, error) {
	return r.list(ctx, limit, offset, true)
}

func (r *MemoryRepo) list(ctx context.Context, limit *int32, offset int32, includeDeleted bool) ([]Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	jobs := make([]Job, 0, len(r.byID))
	for _, job := range r.byID {
		if job.IsDelete && !includeDeleted {
			continue
		}
		jobs = append(jobs, cloneJob(job))
	}
	r.mu.RUnlock()

	sort.Slice(jobs, func(i, j int) bool {
		return *jobs[i].ID < *jobs[j].ID
	})

	if int(offset) >= len(jobs) {
		return []Job{}, nil
	}
	end := len(jobs)
	if limit != nil {
		if *limit <= 0 {
			return []Job{}, nil
		}
		if int(offset)+int(*limit) < end {
			end = int(offset) + int(*limit)
		}
	}
	return jobs[offset:end], nil
}

func (r *MemoryRepo) Update(ctx context.Context, job Job) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	if job.ID == nil {
		return Job{}, ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[*job.ID]; !ok {
		return Job{}, ErrNotFound
	}
	stored := cloneJob(job)
	r.byID[*job.ID] = stored
	return cloneJob(stored), nil
}

func (r *MemoryRepo) Delete(ctx context.Context, jobID JobID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.byID[jobID]; ok {
		job.IsDelete = true
		r.byID[jobID] = job
	}
	return true, nil
}

// cloneJob copies the id pointer so callers cannot mutate stored rows.
func cloneJob(job Job) Job {
	if job.ID != nil {
		id := *job.ID
		job.ID = &id
	}
	return job
}

var _ Repo = (*MemoryRepo)(nil)
