package resumes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoRejectsDuplicateVersion(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	_, err := repo.Insert(ctx, Resume{ID: "a", OwnerID: "u1", Version: 1, Content: validContent()})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, Resume{ID: "b", OwnerID: "u1", Version: 1, Content: validContent()})
	assert.ErrorIs(t, err, ErrVersionConflict)

	_, err = repo.Insert(ctx, Resume{ID: "c", OwnerID: "u2", Version: 1, Content: validContent()})
	assert.NoError(t, err)

	_, err = repo.Insert(ctx, Resume{ID: "d", OwnerID: "u1", Version: 0})
	assert.Error(t, err)
}

func TestMemoryRepoNextVersionSkipsGaps(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	next, err := repo.NextVersion(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	_, err = repo.Insert(ctx, Resume{ID: "a", OwnerID: "u1", Version: 5, Content: validContent()})
	require.NoError(t, err)
	next, err = repo.NextVersion(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 6, next)
}

func TestMemoryRepoIsolatesStoredCopies(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	content := validContent()

	_, err := repo.Insert(ctx, Resume{ID: "a", OwnerID: "u1", Version: 1, Content: content})
	require.NoError(t, err)
	content.Skills[0].Name = "mutated"

	got, err := repo.Get(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Content.Skills[0].Name)

	got.Content.Skills[0].Name = "mutated again"
	latest, err := repo.Latest(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Go", latest.Content.Skills[0].Name)
}

func TestMemoryRepoUpdateAndDeleteMissing(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	_, err := repo.Update(ctx, Resume{OwnerID: "u1", Version: 1})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "u1", 1), ErrNotFound)
}
