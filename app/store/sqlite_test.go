package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLite(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		assert.NotNil(t, s)
		require.NoError(t, s.Close())
	})

	t.Run("invalid path", func(t *testing.T) {
		s, err := NewSQLite("/invalid/path/that/does/not/exist/test.db")
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestSQLite(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()
	checkStore(t, s)
}

func TestSQLite_TableCreated(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	var count int
	err = s.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='kv'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLite_WALMode(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	var mode string
	err = s.db.QueryRow("PRAGMA journal_mode").Scan(&mode)
	require.NoError(t, err)
	assert.Equal(t, "wal", mode)
}

func TestSQLite_Durable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := NewSQLite(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "jobs", []byte(`["persisted"]`)))
	require.NoError(t, s.Close())

	// reopen, the value survives restart
	s, err = NewSQLite(dbPath)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get(ctx, "jobs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["persisted"]`, string(v))
}

func TestSQLite_Errors(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	// corrupt the database by dropping the kv table
	_, err = s.db.Exec("DROP TABLE kv")
	require.NoError(t, err)

	_, _, err = s.Get(context.Background(), "jobs")
	assert.ErrorContains(t, err, `failed to get "jobs"`)

	err = s.Set(context.Background(), "jobs", []byte("[]"))
	assert.ErrorContains(t, err, `failed to set "jobs"`)

	err = s.Clear(context.Background())
	assert.ErrorContains(t, err, "failed to clear kv")
}
