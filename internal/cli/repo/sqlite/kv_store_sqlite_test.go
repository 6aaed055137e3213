package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FitHub/internal/cli/repo"
)

func TestOpen_CreatesFileAndMigrates(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "client.sqlite")
	s, err := Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(dbPath)
	require.NoError(t, err, "db file not created")
	// повторная миграция идемпотентна
	require.NoError(t, s.Migrate())
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestKVStoreSQLite_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(ctx, repo.KeyAuthToken)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	require.NoError(t, s.Set(ctx, repo.KeyAuthToken, "T1"))
	v, err := s.Get(ctx, repo.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "T1", v)

	// upsert перезаписывает значение
	require.NoError(t, s.Set(ctx, repo.KeyAuthToken, "T2"))
	v, _ = s.Get(ctx, repo.KeyAuthToken)
	assert.Equal(t, "T2", v)

	require.NoError(t, s.Delete(ctx, repo.KeyAuthToken))
	require.NoError(t, s.Delete(ctx, repo.KeyAuthToken))
	_, err = s.Get(ctx, repo.KeyAuthToken)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestKVStoreSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "client.sqlite")

	s, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, repo.KeyUserData, `{"id":1}`))
	require.NoError(t, s.Close())

	s, err = Open(dbPath)
	require.NoError(t, err)
	defer s.Close()
	v, err := s.Get(ctx, repo.KeyUserData)
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, v)
}

func TestKVStoreSQLite_ClosedDBFailsWithRealError(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Get(context.Background(), repo.KeyAuthToken)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repo.ErrNotFound)
}
