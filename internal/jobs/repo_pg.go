package jobs

import (
	"context"
	"database/sql"

	"jobboard-backend/internal/shared/storage/dberr"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const jobColumns = `id, job_name, company_id, location, quantity, salary, job_level, description, is_delete`

// Create inserts a job with is_delete false and returns the stored row.
func (r *PGRepo) Create(ctx context.Context, newJob NewJob) (Job, error) {
	const query = `
INSERT INTO jobs (job_name, company_id, location, quantity, salary, job_level, description, is_delete)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + jobColumns
	row := r.DB.QueryRowContext(ctx, query,
		newJob.JobName,
		int32(newJob.CompanyID),
		newJob.Location,
		newJob.Quantity,
		newJob.Salary,
		newJob.JobLevel,
		newJob.Description,
		false,
	)
	job, err := scanJob(row)
	if err != nil {
		return Job{}, dberr.WrapWrite("jobs.create", err)
	}
	return job, nil
}

// GetByID returns the job with the given id whatever its is_delete flag.
func (r *PGRepo) GetByID(ctx context.Context, jobID JobID) (Job, error) {
	const query = `
SELECT ` + jobColumns + `
FROM jobs
WHERE id = $1`
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, int32(jobID)))
	if err != nil {
		return Job{}, dberr.Wrap("jobs.get_by_id", err)
	}
	return job, nil
}

// List returns live jobs ordered by id.
func (r *PGRepo) List(ctx context.Context, limit *int32, offset int32) ([]Job, error) {
	const query = `
SELECT ` + jobColumns + `
FROM jobs
WHERE is_delete = false
ORDER BY id
LIMIT $1 OFFSET $2`
	return r.list(ctx, "jobs.list", query, limit, offset)
}

// ListIncludingDeleted returns every job ordered by id.
func (r *PGRepo) ListIncludingDeleted(ctx context.Context, limit *int32, offset int32) ([]Job, error) {
	const query = `
SELECT ` + jobColumns + `
FROM jobs
ORDER BY id
LIMIT $1 OFFSET $2`
	return r.list(ctx, "jobs.list_including_deleted", query, limit, offset)
}

func (r *PGRepo) list(ctx context.Context, op, query string, limit *int32, offset int32) ([]Job, error) {
	if offset < 0 {
		offset = 0
	}
	// LIMIT NULL is no limit in Postgres.
	var limitArg any
	if limit != nil {
		limitArg = *limit
	}

	rows, err := r.DB.QueryContext(ctx, query, limitArg, offset)
	if err != nil {
		return nil, dberr.Wrap(op, err)
	}
	defer rows.Close()

	out := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, dberr.Wrap(op, err)
		}
		out = append(out, job)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(op, err)
	}
	return out, nil
}

// Update writes every column of job, keyed by its id, and returns the stored row.
func (r *PGRepo) Update(ctx context.Context, job Job) (Job, error) {
	if job.ID == nil {
		return Job{}, ErrInvalidInput
	}
	const query = `
UPDATE jobs
SET job_name = $1,
    company_id = $2,
    location = $3,
    quantity = $4,
    salary = $5,
    job_level = $6,
    description = $7,
    is_delete = $8
WHERE id = $9
RETURNING ` + jobColumns
	row := r.DB.QueryRowContext(ctx, query,
		job.JobName,
		int32(job.CompanyID),
		job.Location,
		job.Quantity,
		job.Salary,
		job.JobLevel,
		job.Description,
		job.IsDelete,
		int32(*job.ID),
	)
	updated, err := scanJob(row)
	if err != nil {
		return Job{}, dberr.WrapWrite("jobs.update", err)
	}
	return updated, nil
}

// Delete marks the job deleted. It reports true once the statement ran, even if no row matched.
func (r *PGRepo) Delete(ctx context.Context, jobID JobID) (bool, error) {
	const query = `UPDATE jobs SET is_delete = $1 WHERE id = $2`
	if _, err := r.DB.ExecContext(ctx, query, true, int32(jobID)); err != nil {
		return false, dberr.Wrap("jobs.delete", err)
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var (
		job Job
		id  JobID
	)
	err := row.Scan(
		&id,
		&job.JobName,
		&job.CompanyID,
		&job.Location,
		&job.Quantity,
		&job.Salary,
		&job.JobLevel,
		&job.Description,
		&job.IsDelete,
	)
	if err != nil {
		return Job{}, err
	}
	job.ID = &id
	return job, nil
}

var _ Repo = (*PGRepo)(nil)
