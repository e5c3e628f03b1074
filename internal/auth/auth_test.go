package auth_test

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/gofiber/storage/memory/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/auth"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/config"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/db"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/failure"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/login"
	"github.com/GoPowerDNS-Admin/GoAuth-API/internal/session"
)

var nonWord = regexp.MustCompile(`\W`)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{DB: config.DB{
		GormEngine: config.EngineSQLite,
		Name:       "file:" + nonWord.ReplaceAllString(t.Name(), "_") + "?mode=memory&cache=shared",
	}}

	gdb, err := db.Open(cfg, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, errDB := gdb.DB(); errDB == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}

func newService(t *testing.T) (*auth.Service, *auth.LocalProvider) {
	t.Helper()

	provider := auth.NewLocalProvider(newDB(t))
	store := session.New(memory.New(), time.Minute, time.Hour)
	t.Cleanup(func() { _ = store.Close() })

	return auth.NewService(provider, store), provider
}

func credentials(t *testing.T, username, password string) login.Credentials {
	t.Helper()

	creds, err := login.NewCredentials(username, password)
	require.NoError(t, err)

	return creds
}

func requireKind(t *testing.T, err error, kind failure.Kind) *failure.Error {
	t.Helper()

	var fe *failure.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, kind, fe.Kind())

	return fe
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	service, provider := newService(t)

	_, err := provider.CreateUser(ctx, "alice", "wonderland", false)
	require.NoError(t, err)

	disabled, err := provider.CreateUser(ctx, "mallory", "secret", false)
	require.NoError(t, err)
	require.NoError(t, provider.SetActive(ctx, disabled.ID, false))

	tests := []struct {
		name     string
		username string
		password string
		cause    error
	}{
		{name: "unknown user", username: "nobody", password: "x", cause: auth.ErrUserNotFound},
		{name: "wrong password", username: "alice", password: "nope", cause: auth.ErrInvalidPassword},
		{name: "disabled account", username: "mallory", password: "secret", cause: auth.ErrUserAccountDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Authenticate(ctx, credentials(t, tt.username, tt.password))
			requireKind(t, err, failure.KindAuthentication)
			assert.ErrorIs(t, err, tt.cause)
		})
	}

	t.Run("success", func(t *testing.T) {
		result, err := service.Authenticate(ctx, credentials(t, "alice", "wonderland"))
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken())
		assert.NotEmpty(t, result.RefreshToken())
		assert.Equal(t, login.TokenTypeBearer, result.TokenType())

		user, err := provider.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.NotNil(t, user.LastLoginAt)

		id, err := service.CurrentUser(ctx, result.AccessToken())
		require.NoError(t, err)
		assert.Equal(t, "alice", id.Username)
		assert.Equal(t, user.ID, id.UserID)
	})
}

func TestCurrentUserWithoutToken(t *testing.T) {
	service, _ := newService(t)

	_, err := service.CurrentUser(context.Background(), "")
	requireKind(t, err, failure.KindNotAuthenticated)

	_, err = service.CurrentUser(context.Background(), "unknown")
	requireKind(t, err, failure.KindNotAuthenticated)
}

func TestRefreshAndLogout(t *testing.T) {
	ctx := context.Background()
	service, provider := newService(t)

	_, err := provider.CreateUser(ctx, "bob", "builder", false)
	require.NoError(t, err)

	first, err := service.Authenticate(ctx, credentials(t, "bob", "builder"))
	require.NoError(t, err)

	second, err := service.Refresh(ctx, first.RefreshToken())
	require.NoError(t, err)
	assert.NotEqual(t, first.AccessToken(), second.AccessToken())

	_, err = service.Refresh(ctx, first.RefreshToken())
	requireKind(t, err, failure.KindAuthentication)

	_, err = service.CurrentUser(ctx, first.AccessToken())
	requireKind(t, err, failure.KindNotAuthenticated)

	require.NoError(t, service.Logout(ctx, second.AccessToken()))

	_, err = service.CurrentUser(ctx, second.AccessToken())
	requireKind(t, err, failure.KindNotAuthenticated)

	err = service.Logout(ctx, second.AccessToken())
	requireKind(t, err, failure.KindNotAuthenticated)
}

func TestRefreshDisabledAccount(t *testing.T) {
	ctx := context.Background()
	service, provider := newService(t)

	user, err := provider.CreateUser(ctx, "eve", "apple", false)
	require.NoError(t, err)

	result, err := service.Authenticate(ctx, credentials(t, "eve", "apple"))
	require.NoError(t, err)

	require.NoError(t, provider.SetActive(ctx, user.ID, false))

	_, err = service.Refresh(ctx, result.RefreshToken())
	requireKind(t, err, failure.KindAuthentication)
	require.ErrorIs(t, err, auth.ErrUserAccountDisabled)

	_, err = service.CurrentUser(ctx, result.AccessToken())
	requireKind(t, err, failure.KindNotAuthenticated)
}

func TestRequireAdmin(t *testing.T) {
	service, _ := newService(t)

	require.NoError(t, service.RequireAdmin(session.Identity{Username: "root", Admin: true}))

	err := service.RequireAdmin(session.Identity{Username: "guest"})
	requireKind(t, err, failure.KindAccessDenied)
}

func TestCreateAndListUsers(t *testing.T) {
	ctx := context.Background()
	service, provider := newService(t)

	for _, name := range []string{"u1", "u2", "u3"} {
		_, err := provider.CreateUser(ctx, name, "pw", name == "u1")
		require.NoError(t, err)
	}

	_, err := provider.CreateUser(ctx, "u1", "pw", false)
	require.ErrorIs(t, err, auth.ErrUserNameExists)

	users, total, err := service.ListUsers(ctx, 2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].Username)
	assert.True(t, users[0].Admin)

	users, _, err = service.ListUsers(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u3", users[0].Username)

	_, err = provider.GetUserByID(ctx, 999)
	require.ErrorIs(t, err, auth.ErrUserNotFound)
}

// failingDelete is a memory backend whose deletes fail.
type failingDelete struct {
	*memory.Storage
}

func (failingDelete) Delete(string) error {
	return errors.New("storage unavailable")
}

func TestRefreshDisabledAccountLogsRevokeFailure(t *testing.T) {
	ctx := context.Background()
	gdb := newDB(t)

	store := session.New(failingDelete{memory.New()}, time.Minute, time.Hour)
	t.Cleanup(func() { _ = store.Close() })

	provider := auth.NewLocalProvider(gdb)
	service := auth.NewService(provider, store)

	user, err := provider.CreateUser(ctx, "trudy", "pear", false)
	require.NoError(t, err)

	result, err := service.Authenticate(ctx, credentials(t, "trudy", "pear"))
	require.NoError(t, err)

	require.NoError(t, provider.SetActive(ctx, user.ID, false))

	var buf bytes.Buffer

	original := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = original })

	_, err = service.Refresh(ctx, result.RefreshToken())
	requireKind(t, err, failure.KindAuthentication)
	require.ErrorIs(t, err, auth.ErrUserAccountDisabled)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "failed to revoke session")
	assert.Contains(t, buf.String(), "storage unavailable")
}
