package auth

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/infra/storage/document"
	"github.com/m04kA/SMC-CateringService/pkg/logger"
)

func newTestService(t *testing.T) (*Service, *document.MemoryStore) {
	t.Helper()
	store := document.NewMemoryStore()
	svc := NewService(store, logger.NewNop())
	svc.cost = bcrypt.MinCost
	return svc, store
}

func storedUsers(t *testing.T, store *document.MemoryStore) []user {
	t.Helper()
	data, err := store.Load(context.Background(), domain.UsersKey)
	require.NoError(t, err)
	var users []user
	require.NoError(t, json.Unmarshal(data, &users))
	return users
}

func TestEnsureUsers_SeedsAdminOnce(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureUsers(ctx))
	users := storedUsers(t, store)
	require.Len(t, users, 1)
	assert.Equal(t, DefaultUsername, users[0].Username)
	assert.NotEqual(t, DefaultPassword, users[0].Password, "password must be stored hashed")

	require.NoError(t, svc.Register(ctx, "ann", "secret"))
	require.NoError(t, svc.EnsureUsers(ctx))
	assert.Len(t, storedUsers(t, store), 2)
}

func TestLogin_SeededAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureUsers(ctx))

	assert.False(t, svc.IsAuthenticated(ctx))
	require.NoError(t, svc.Login(ctx, "admin", "admin123"))
	assert.True(t, svc.IsAuthenticated(ctx))
}

func TestLogin_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureUsers(ctx))

	assert.True(t, errors.Is(svc.Login(ctx, "", "x"), ErrEmptyCredentials))
	assert.True(t, errors.Is(svc.Login(ctx, "admin", "wrong"), ErrInvalidCredentials))
	assert.True(t, errors.Is(svc.Login(ctx, "ghost", "admin123"), ErrInvalidCredentials))
	assert.False(t, svc.IsAuthenticated(ctx))
}

func TestLogin_LegacyPlaintextIsRehashed(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.UsersKey, []byte(`[{"username":"old","password":"pw"}]`)))

	require.NoError(t, svc.Login(ctx, "old", "pw"))

	users := storedUsers(t, store)
	require.Len(t, users, 1)
	assert.True(t, isHash(users[0].Password))
	require.NoError(t, svc.Login(ctx, "old", "pw"))
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ann", "secret"))
	assert.True(t, errors.Is(svc.Register(ctx, "ann", "other"), ErrUserExists))
	assert.True(t, errors.Is(svc.Register(ctx, "bob", ""), ErrEmptyCredentials))

	require.NoError(t, svc.Login(ctx, "ann", "secret"))
}

func TestLogout(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureUsers(ctx))
	require.NoError(t, svc.Login(ctx, "admin", "admin123"))

	out, err := svc.Logout(ctx, domain.Answer(false))
	require.NoError(t, err)
	assert.False(t, out)
	assert.True(t, svc.IsAuthenticated(ctx))

	out, err = svc.Logout(ctx, domain.Answer(true))
	require.NoError(t, err)
	assert.True(t, out)
	assert.False(t, svc.IsAuthenticated(ctx))
}

func TestIsAuthenticated_CorruptFlag(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.LoggedInKey, []byte(`yes`)))

	assert.False(t, svc.IsAuthenticated(ctx))
}

func TestLogin_ReseedsMissingUsers(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "admin", "admin123"))
	assert.True(t, svc.IsAuthenticated(ctx))

	users := storedUsers(t, store)
	require.Len(t, users, 1)
	assert.Equal(t, DefaultUsername, users[0].Username)
}

func TestRegister_KeepsDefaultUserWhenListMissing(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ann", "secret"))

	users := storedUsers(t, store)
	require.Len(t, users, 2)
	assert.Equal(t, DefaultUsername, users[0].Username)
	assert.Equal(t, "ann", users[1].Username)
}

func TestLogin_AfterCorruptedFileIsReplaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := document.NewFileStore(path)
	svc := NewService(store, logger.NewNop())
	svc.cost = bcrypt.MinCost
	ctx := context.Background()

	// запись бронирований заменяет повреждённый файл целиком
	require.NoError(t, store.Save(ctx, domain.BookingsKey, []byte(`[]`)))
	_, err := store.Load(ctx, domain.UsersKey)
	require.True(t, errors.Is(err, document.ErrDocumentNotFound))

	require.NoError(t, svc.Login(ctx, "admin", "admin123"))
	assert.True(t, svc.IsAuthenticated(ctx))
}
