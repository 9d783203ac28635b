package resumes

import (
	"context"
	"database/sql"

	"jobboard-backend/internal/shared/ids"
	"jobboard-backend/internal/shared/storage/dberr"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, email, url, is_delete`

// Create inserts a resume with is_delete forced to false.
func (r *PGRepo) Create(ctx context.Context, info ResumeInfo) (Resume, error) {
	const query = `
INSERT INTO resumes (user_id, email, url, is_delete)
VALUES ($1, $2, $3, $4)
RETURNING ` + resumeColumns
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query,
		int32(info.UserID),
		info.Email,
		info.URL,
		false,
	))
	if err != nil {
		return Resume{}, dberr.WrapWrite("resumes.create", err)
	}
	return resume, nil
}

// GetByID returns the resume with the given id whatever its is_delete flag.
func (r *PGRepo) GetByID(ctx context.Context, resumeID ResumeID) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1`
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, int32(resumeID)))
	if err != nil {
		return Resume{}, dberr.Wrap("resumes.get_by_id", err)
	}
	return resume, nil
}

// GetByUserID fetches the user's live resume and fails unless exactly one row matches.
func (r *PGRepo) GetByUserID(ctx context.Context, userID ids.UserID) (Resume, error) {
	const op = "resumes.get_by_user_id"
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND is_delete = false
ORDER BY id
LIMIT 2`
	matches, err := r.query(ctx, op, query, int32(userID))
	if err != nil {
		return Resume{}, err
	}
	switch len(matches) {
	case 0:
		return Resume{}, dberr.NotFound(op)
	case 1:
		return matches[0], nil
	default:
		return Resume{}, dberr.MultipleRows(op)
	}
}

// List returns live resumes ordered by id.
func (r *PGRepo) List(ctx context.Context) ([]Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE is_delete = false
ORDER BY id`
	return r.query(ctx, "resumes.list", query)
}

// ListIncludingDeleted returns every resume ordered by id.
func (r *PGRepo) ListIncludingDeleted(ctx context.Context) ([]Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
ORDER BY id`
	return r.query(ctx, "resumes.list_including_deleted", query)
}

// Update assigns user_id, email and url on the resume with the given id.
func (r *PGRepo) Update(ctx context.Context, resumeID ResumeID, info ResumeInfo) (Resume, error) {
	const query = `
UPDATE resumes
SET user_id = $1,
    email = $2,
    url = $3
WHERE id = $4
RETURNING ` + resumeColumns
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query,
		int32(info.UserID),
		info.Email,
		info.URL,
		int32(resumeID),
	))
	if err != nil {
		return Resume{}, dberr.WrapWrite("resumes.update", err)
	}
	return resume, nil
}

// Delete marks the resume deleted. It reports true once the statement ran, even if no row matched.
func (r *PGRepo) Delete(ctx context.Context, resumeID ResumeID) (bool, error) {
	const query = `UPDATE resumes SET is_delete = $1 WHERE id = $2`
	if _, err := r.DB.ExecContext(ctx, query, true, int32(resumeID)); err != nil {
		return false, dberr.Wrap("resumes.delete", err)
	}
	return true, nil
}

func (r *PGRepo) query(ctx context.Context, op, query string, args ...any) ([]Resume, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(op, err)
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, dberr.Wrap(op, err)
		}
		out = append(out, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(op, err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var (
		resume Resume
		id     ResumeID
	)
	if err := row.Scan(&id, &resume.UserID, &resume.Email, &resume.URL, &resume.IsDelete); err != nil {
		return Resume{}, err
	}
	resume.ID = &id
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
