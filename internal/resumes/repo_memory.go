package resumes

import (
	"context"
	"sort"
	"sync"

	"jobboard-backend/internal/shared/ids"
)

// MemoryRepo stores resumes in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID ResumeID
	byID   map[ResumeID]Resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[ResumeID]Resume)}
}

func (r *MemoryRepo) Create(ctx context.Context, info ResumeInfo) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	resume := Resume{ID: &id, UserID: info.UserID, Email: info.Email, URL: info.URL}
	r.byID[id] = resume
	return cloneResume(resume), nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, resumeID ResumeID) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.byID[resumeID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return cloneResume(resume), nil
}

func (r *MemoryRepo) GetByUserID(ctx context.Context, userID ids.UserID) (Resume, error) {
	all, err := r.sorted(ctx, false)
	if err != nil {
		return Resume{}, err
	}
	var matches []Resume
	for _, resume := range all {
		if resume.UserID == userID {
			matches = append(matches, resume)
		}
	}
	switch len(matches) {
	case 0:
		return Resume{}, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return Resume{}, ErrMultipleRows
	}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Resume, error) {
	return r.sorted(ctx, false)
}

func (r *MemoryRepo) ListIncludingDeleted(ctx context.Context) ([]Resume, error) {
	return r.sorted(ctx, true)
}

func (r *MemoryRepo) Update(ctx context.Context, resumeID ResumeID, info ResumeInfo) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.byID[resumeID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	resume.UserID = info.UserID
	resume.Email = info.Email
	resume.URL = info.URL
	r.byID[resumeID] = resume
	return cloneResume(resume), nil
}

func (r *MemoryRepo) Delete(ctx context.Context, resumeID ResumeID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if resume, ok := r.byID[resumeID]; ok {
		resume.IsDelete = true
		r.byID[resumeID] = resume
	}
	return true, nil
}

func (r *MemoryRepo) sorted(ctx context.Context, includeDeleted bool) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Resume, 0, len(r.byID))
	for _, resume := range r.byID {
		if resume.IsDelete && !includeDeleted {
			continue
		}
		out = append(out, cloneResume(resume))
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return *out[i].ID < *out[j].ID
	})
	return out, nil
}

func cloneResume(resume Resume) Resume {
	if resume.ID != nil {
		id := *resume.ID
		resume.ID = &id
	}
	return resume
}

var _ Repo = (*MemoryRepo)(nil)
