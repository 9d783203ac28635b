package resumes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoCreateThenGetByUser(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	info := sampleInfo()

	created, err := repo.Create(ctx, info)
	require.NoError(t, err)
	require.NotNil(t, created.ID)

	got, err := repo.GetByUserID(ctx, info.UserID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, info.Email, got.Email)
	assert.Equal(t, info.URL, got.URL)
	assert.False(t, got.IsDelete)
}

func TestMemoryRepoGetByUserIDMultiple(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	_, err := repo.Create(ctx, sampleInfo())
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleInfo())
	require.NoError(t, err)

	_, err = repo.GetByUserID(ctx, sampleInfo().UserID)
	assert.ErrorIs(t, err, ErrMultipleRows)
}

func TestMemoryRepoDeleteIsSoftAndIdempotent(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	created, err := repo.Create(ctx, sampleInfo())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		ok, err := repo.Delete(ctx, *created.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	got, err := repo.GetByID(ctx, *created.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDelete)

	_, err = repo.GetByUserID(ctx, created.UserID)
	assert.ErrorIs(t, err, ErrNotFound)

	live, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, live)

	all, err := repo.ListIncludingDeleted(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryRepoListEmptyAndMissing(t *testing.T) {
	repo := NewMemoryRepo()
	out, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	_, err = repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoUpdateKeepsIDAndFlag(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	created, err := repo.Create(ctx, sampleInfo())
	require.NoError(t, err)

	updated, err := repo.Update(ctx, *created.ID, ResumeInfo{UserID: 8, Email: "x@y.z", URL: "u2"})
	require.NoError(t, err)
	assert.Equal(t, *created.ID, *updated.ID)
	assert.Equal(t, "x@y.z", updated.Email)

	_, err = repo.Update(ctx, 99, sampleInfo())
	assert.ErrorIs(t, err, ErrNotFound)
}
