package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bipulsingh126/biziwit-admin/session"
)

func TestMemoryStore(t *testing.T) {
	store := session.NewMemoryStore()

	_, err := store.Read()
	require.ErrorIs(t, err, session.ErrNoToken)

	require.NoError(t, store.Write("abc"))
	token, err := store.Read()
	require.NoError(t, err)
	require.Equal(t, "abc", token)

	require.NoError(t, store.Delete())
	_, err = store.Read()
	require.ErrorIs(t, err, session.ErrNoToken)
}

func TestFileStore(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		dir := t.TempDir()
		store, err := session.NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Write("tok-123"))

		// a second store over the same dir sees the persisted token
		reopened, err := session.NewFileStore(dir)
		require.NoError(t, err)
		token, err := reopened.Read()
		require.NoError(t, err)
		require.Equal(t, "tok-123", token)
	})

	t.Run("missing file reads as no token", func(t *testing.T) {
		store, err := session.NewFileStore(t.TempDir())
		require.NoError(t, err)
		_, err = store.Read()
		require.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store, err := session.NewFileStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.Delete())
		require.NoError(t, store.Write("x"))
		require.NoError(t, store.Delete())
		require.NoError(t, store.Delete())
	})

	t.Run("empty dir is rejected", func(t *testing.T) {
		_, err := session.NewFileStore("")
		require.Error(t, err)
	})
}

func TestSession(t *testing.T) {
	t.Run("primes from the store at startup", func(t *testing.T) {
		store := session.NewMemoryStore()
		require.NoError(t, store.Write("persisted"))

		sess, err := session.New(store)
		require.NoError(t, err)
		token, ok := sess.Token()
		require.True(t, ok)
		require.Equal(t, "persisted", token)
	})

	t.Run("starts logged out with an empty store", func(t *testing.T) {
		sess, err := session.New(session.NewMemoryStore())
		require.NoError(t, err)
		_, ok := sess.Token()
		require.False(t, ok)
	})

	t.Run("set writes through and clear deletes", func(t *testing.T) {
		store := session.NewMemoryStore()
		sess, err := session.New(store)
		require.NoError(t, err)

		require.NoError(t, sess.Set("abc"))
		stored, err := store.Read()
		require.NoError(t, err)
		require.Equal(t, "abc", stored)

		require.NoError(t, sess.Clear())
		_, ok := sess.Token()
		require.False(t, ok)
		_, err = store.Read()
		require.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("nil store is rejected", func(t *testing.T) {
		_, err := session.New(nil)
		require.Error(t, err)
	})
}
