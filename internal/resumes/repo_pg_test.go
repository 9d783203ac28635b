package resumes

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-backend/internal/shared/telemetry"
)

var resumeCols = []string{"id", "user_id", "email", "url", "is_delete"}

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock, *bytes.Buffer) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var logs bytes.Buffer
	t.Cleanup(telemetry.SetOutput(&logs))
	return &PGRepo{DB: db}, mock, &logs
}

func sampleInfo() ResumeInfo {
	return ResumeInfo{UserID: 7, Email: "ada@example.com", URL: "https://cdn.example.com/ada.pdf"}
}

func TestPGRepoCreateForcesLiveFlag(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	info := sampleInfo()

	mock.ExpectQuery(`INSERT INTO resumes \(user_id, email, url, is_delete\)`).
		WithArgs(7, info.Email, info.URL, false).
		WillReturnRows(sqlmock.NewRows(resumeCols).AddRow(int64(1), int64(7), info.Email, info.URL, false))

	resume, err := repo.Create(context.Background(), info)
	require.NoError(t, err)
	require.NotNil(t, resume.ID)
	assert.Equal(t, ResumeID(1), *resume.ID)
	assert.Equal(t, info.UserID, resume.UserID)
	assert.False(t, resume.IsDelete)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoCreateSurvivesNonConstraintError(t *testing.T) {
	repo, mock, logs := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO resumes").WillReturnError(errors.New("broken pipe"))

	_, err := repo.Create(context.Background(), sampleInfo())
	require.Error(t, err)
	assert.Contains(t, logs.String(), `"constraint":"unknown"`)
	assert.Contains(t, logs.String(), `"code":"unknown"`)
}

func TestPGRepoCreateLogsUniqueViolation(t *testing.T) {
	repo, mock, logs := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO resumes").WillReturnError(&pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value",
		ConstraintName: "resumes_pkey",
	})

	_, err := repo.Create(context.Background(), sampleInfo())
	require.Error(t, err)
	assert.Contains(t, logs.String(), `"constraint":"resumes_pkey"`)
	assert.Contains(t, logs.String(), `"db_message":"duplicate key value"`)
}

func TestPGRepoGetByID(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery(`FROM resumes\s+WHERE id = \$1`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(resumeCols).AddRow(int64(4), int64(7), "a@b.c", "u", true))

	resume, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, ResumeID(4), *resume.ID)
	assert.True(t, resume.IsDelete)
}

func TestPGRepoGetByIDMissing(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery(`FROM resumes\s+WHERE id = \$1`).WithArgs(4).WillReturnRows(sqlmock.NewRows(resumeCols))

	_, err := repo.GetByID(context.Background(), 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPGRepoGetByUserIDSingleRow(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery(`FROM resumes\s+WHERE user_id = \$1 AND is_delete = false\s+ORDER BY id\s+LIMIT 2`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(resumeCols).AddRow(int64(2), int64(7), "a@b.c", "u", false))

	resume, err := repo.GetByUserID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, ResumeID(2), *resume.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetByUserIDZeroRows(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery("WHERE user_id").WithArgs(7).WillReturnRows(sqlmock.NewRows(resumeCols))

	_, err := repo.GetByUserID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPGRepoGetByUserIDMultipleRows(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery("WHERE user_id").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(resumeCols).
			AddRow(int64(2), int64(7), "a@b.c", "u", false).
			AddRow(int64(3), int64(7), "a@b.c", "v", false))

	_, err := repo.GetByUserID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrMultipleRows)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestPGRepoListEmpty(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery(`FROM resumes\s+WHERE is_delete = false\s+ORDER BY id`).WillReturnRows(sqlmock.NewRows(resumeCols))

	out, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestPGRepoListIncludingDeleted(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery(`FROM resumes\s+ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(resumeCols).
			AddRow(int64(1), int64(7), "a@b.c", "u", true).
			AddRow(int64(2), int64(8), "d@e.f", "v", false))

	out, err := repo.ListIncludingDeleted(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].IsDelete)
}

func TestPGRepoListScanError(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery("FROM resumes").
		WillReturnRows(sqlmock.NewRows(resumeCols).AddRow("not-a-number", int64(7), "a", "u", false))

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}

func TestPGRepoUpdateUsesAssignmentByID(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	info := ResumeInfo{UserID: 7, Email: "new@example.com", URL: "https://new"}

	mock.ExpectQuery(`UPDATE resumes\s+SET user_id = \$1,\s+email = \$2,\s+url = \$3\s+WHERE id = \$4\s+RETURNING`).
		WithArgs(7, info.Email, info.URL, 3).
		WillReturnRows(sqlmock.NewRows(resumeCols).AddRow(int64(3), int64(7), info.Email, info.URL, false))

	resume, err := repo.Update(context.Background(), 3, info)
	require.NoError(t, err)
	assert.Equal(t, ResumeID(3), *resume.ID)
	assert.Equal(t, "new@example.com", resume.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoUpdateMissing(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery("UPDATE resumes").WillReturnRows(sqlmock.NewRows(resumeCols))

	_, err := repo.Update(context.Background(), 3, sampleInfo())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPGRepoDelete(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectExec(`UPDATE resumes SET is_delete = \$1 WHERE id = \$2`).
		WithArgs(true, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}
