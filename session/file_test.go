package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soukhub/soukhub-go/schema"
)

func TestFileStore_SurvivesReopen(t *testing.T) {
	URL := filepath.Join(t.TempDir(), "session.json")

	store := NewFileStore(URL)
	require.NoError(t, store.SaveToken("abc"))
	id := schema.ID("4")
	email := "nora@example.com"
	require.NoError(t, store.SaveProfile(Profile{UserID: &id, Email: &email}))

	// simulated process restart
	reopened := NewFileStore(URL)
	token, ok := reopened.Token()
	require.True(t, ok)
	require.Equal(t, "abc", token)
	snap := reopened.Snapshot()
	require.Equal(t, schema.ID("4"), snap.UserID)
	require.Equal(t, "nora@example.com", snap.Email)
}

func TestFileStore_ClearRemovesDocument(t *testing.T) {
	URL := filepath.Join(t.TempDir(), "session.json")

	store := NewFileStore(URL)
	require.NoError(t, store.SaveToken("abc"))
	require.NoError(t, store.Clear())
	require.False(t, store.IsAuthenticated())
	// idempotent even when nothing is persisted
	require.NoError(t, store.Clear())

	reopened := NewFileStore(URL)
	require.False(t, reopened.IsAuthenticated())
}

func TestFileStore_MissingDocument(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	require.False(t, store.IsAuthenticated())
	require.Empty(t, store.Snapshot().AuthToken)
}
