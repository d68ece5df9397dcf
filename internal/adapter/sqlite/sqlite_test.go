package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitlog/internal/adapter/sqlite"
)

func openTemp(t *testing.T) (*sqlite.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "habitlog.db")
	db, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, path
}

func TestSetGet(t *testing.T) {
	db, _ := openTemp(t)

	require.NoError(t, db.Set(context.Background(), "k", []byte("v1")))

	got, found, err := db.Get(context.Background(), "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v1"), got)
}

func TestSet_Overwrites(t *testing.T) {
	db, _ := openTemp(t)

	require.NoError(t, db.Set(context.Background(), "k", []byte("v1")))
	require.NoError(t, db.Set(context.Background(), "k", []byte("v2")))

	got, found, err := db.Get(context.Background(), "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v2"), got)
}

func TestGet_Missing(t *testing.T) {
	db, _ := openTemp(t)

	_, found, err := db.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestValueSurvivesReopen(t *testing.T) {
	db, path := openTemp(t)
	require.NoError(t, db.Set(context.Background(), "k", []byte("durable")))
	require.NoError(t, db.Close())

	reopened, err := sqlite.Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, found, err := reopened.Get(context.Background(), "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("durable"), got)
}
