package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(":memory:")
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository("")
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	var count int
	err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='kv'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := setupTestRepo(t)

	value, found, err := repo.Get(context.Background(), "nova_eden_chars")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestRepository_PutGet(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "nova_eden_chars", []byte(`[{"id":"a"}]`)))

	value, found, err := repo.Get(ctx, "nova_eden_chars")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, string(value))
}

func TestRepository_PutOverwrites(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	second := first.Add(time.Hour)
	timeNow = func() time.Time { return first }
	t.Cleanup(func() { timeNow = time.Now })

	require.NoError(t, repo.Put(ctx, "k", []byte("one")))
	timeNow = func() time.Time { return second }
	require.NoError(t, repo.Put(ctx, "k", []byte("two")))

	value, found, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "two", string(value))

	var updated time.Time
	require.NoError(t, repo.db.QueryRow(`SELECT updated_at FROM kv WHERE key = ?`, "k").Scan(&updated))
	assert.True(t, second.Equal(updated), "expected %v, got %v", second, updated)

	var rows int
	require.NoError(t, repo.db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestRepository_PutEmptyValue(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", nil))

	value, found, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, value)
}

func TestRepository_Delete(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "nova_eden_active", []byte("abc")))
	require.NoError(t, repo.Delete(ctx, "nova_eden_active"))

	_, found, err := repo.Get(ctx, "nova_eden_active")
	require.NoError(t, err)
	assert.False(t, found)

	// deleting a missing key is not an error
	require.NoError(t, repo.Delete(ctx, "nova_eden_active"))
}

func TestRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")
	ctx := context.Background()

	repo, err := NewRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.Put(ctx, "k", []byte("kept")))
	require.NoError(t, repo.Close())

	reopened, err := NewRepository(path)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.EnsureSchema(ctx))

	value, found, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "kept", string(value))
}

func TestRepository_ClosedDatabaseErrors(t *testing.T) {
	repo, err := NewRepository(":memory:")
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, repo.Close())

	err = repo.Put(context.Background(), "k", []byte("v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing key k")
}
