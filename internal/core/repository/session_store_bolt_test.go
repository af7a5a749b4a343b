package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *BoltSessionStore {
	t.Helper()
	store, err := NewSessionStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSessionStoreLoadAbsent(t *testing.T) {
	store := newTestStore(t)

	record, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	record := []byte(`{"username":"admin","isAuthenticated":true}`)

	require.NoError(t, store.Save(record))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, record, loaded)

	// Saving again replaces the previous record.
	replacement := []byte(`{"username":"other","isAuthenticated":true}`)
	require.NoError(t, store.Save(replacement))

	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, replacement, loaded)
}

func TestSessionStoreDelete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save([]byte(`{}`)))

	require.NoError(t, store.Delete())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting an absent record is not an error.
	require.NoError(t, store.Delete())
}

func TestSessionStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	store, err := NewSessionStore(path)
	require.NoError(t, err)
	record := []byte(`{"username":"admin","isAuthenticated":true}`)
	require.NoError(t, store.Save(record))
	require.NoError(t, store.Close())

	reopened, err := NewSessionStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, record, loaded)
}
