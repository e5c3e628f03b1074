package session_test

import (
	"testing"
	"time"

	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/session"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/uniuri"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()

	store := session.New(memory.New(), time.Minute, time.Hour)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestNewPanicsOnNilBackend(t *testing.T) {
	assert.Panics(t, func() { session.New(nil, time.Minute, time.Hour) })
}

func TestIssueAndResolve(t *testing.T) {
	store := newStore(t)
	id := session.Identity{UserID: 7, Username: "alice", Admin: true}

	pair, err := store.Issue(id)
	require.NoError(t, err)
	assert.Len(t, pair.Access, uniuri.TokenLen)
	assert.Len(t, pair.Refresh, uniuri.TokenLen)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	access, err := store.Resolve(session.KindAccess, pair.Access)
	require.NoError(t, err)
	assert.Equal(t, id, access.Identity)
	assert.Equal(t, session.KindAccess, access.Kind)
	assert.Equal(t, pair.Refresh, access.Pair)

	refresh, err := store.Resolve(session.KindRefresh, pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, id, refresh.Identity)
	assert.Equal(t, pair.Access, refresh.Pair)
}

func TestResolveRejectsWrongKind(t *testing.T) {
	store := newStore(t)

	pair, err := store.Issue(session.Identity{UserID: 1, Username: "bob"})
	require.NoError(t, err)

	_, err = store.Resolve(session.KindAccess, pair.Refresh)
	require.ErrorIs(t, err, session.ErrTokenNotFound)

	_, err = store.Resolve(session.KindRefresh, pair.Access)
	require.ErrorIs(t, err, session.ErrTokenNotFound)
}

func TestResolveEmptyAndUnknown(t *testing.T) {
	store := newStore(t)

	_, err := store.Resolve(session.KindAccess, "")
	require.ErrorIs(t, err, session.ErrEmptyToken)

	_, err = store.Resolve(session.KindAccess, "does-not-exist")
	require.ErrorIs(t, err, session.ErrTokenNotFound)
}

func TestRotate(t *testing.T) {
	store := newStore(t)
	id := session.Identity{UserID: 3, Username: "carol"}

	first, err := store.Issue(id)
	require.NoError(t, err)

	second, err := store.Rotate(first.Refresh)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = store.Resolve(session.KindAccess, first.Access)
	require.ErrorIs(t, err, session.ErrTokenNotFound)

	_, err = store.Rotate(first.Refresh)
	require.ErrorIs(t, err, session.ErrTokenNotFound)

	data, err := store.Resolve(session.KindAccess, second.Access)
	require.NoError(t, err)
	assert.Equal(t, id, data.Identity)
}

func TestRevoke(t *testing.T) {
	store := newStore(t)

	pair, err := store.Issue(session.Identity{UserID: 9, Username: "dave"})
	require.NoError(t, err)

	require.NoError(t, store.Revoke(pair.Access))

	_, err = store.Resolve(session.KindAccess, pair.Access)
	require.ErrorIs(t, err, session.ErrTokenNotFound)

	_, err = store.Resolve(session.KindRefresh, pair.Refresh)
	require.ErrorIs(t, err, session.ErrTokenNotFound)

	require.ErrorIs(t, store.Revoke(pair.Access), session.ErrTokenNotFound)
}
