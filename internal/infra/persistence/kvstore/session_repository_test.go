package kvstore

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewSessionRepository(store, newTestLogger())

	loginAt := time.UnixMilli(1700000000000)
	session := &entity.Session{
		User: &entity.UserIdentity{
			ID:      "1700000000000",
			Email:   "ana@example.com",
			Name:    "Ana",
			Kind:    entity.KindRegistered,
			LoginAt: loginAt,
		},
		LoginAt: loginAt,
	}

	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", loaded.User.Email)
	assert.Equal(t, "Ana", loaded.User.Name)
	assert.Equal(t, entity.KindRegistered, loaded.User.Kind)
	assert.True(t, loaded.LoginAt.Equal(loginAt))

	// The denormalized keys must stay in sync for legacy readers.
	name, err := store.Get(ctx, repository.KeyUserName)
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)
	email, err := store.Get(ctx, repository.KeyUserEmail)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
}

func TestSessionRepository_LoadAbsent(t *testing.T) {
	repo := NewSessionRepository(kv.NewMemoryStore(), newTestLogger())

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_LoadMalformedBlob(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, repository.KeySession, "{not json"))

	repo := NewSessionRepository(store, newTestLogger())

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_LoadNumericLegacyID(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	blob := `{"user":{"id":1699999999999,"email":"leo@example.com","name":"Leo","isGuest":false,"loginTime":1699999999999},"loginTime":1699999999999}`
	require.NoError(t, store.Set(ctx, repository.KeySession, blob))

	repo := NewSessionRepository(store, newTestLogger())

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1699999999999", loaded.User.ID)
	assert.Equal(t, entity.KindRegistered, loaded.User.Kind)
	assert.Equal(t, int64(1699999999999), loaded.LoginAt.UnixMilli())
}

func TestSessionRepository_LoadLegacyFlagKinds(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	blob := `{"user":{"id":"guest_1700000000000","name":"Invitado","isGuest":true,"loginTime":1700000000000},"loginTime":1700000000000}`
	require.NoError(t, store.Set(ctx, repository.KeySession, blob))

	repo := NewSessionRepository(store, newTestLogger())

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.KindGuest, loaded.User.Kind)
}

func TestSessionRepository_Clear(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewSessionRepository(store, newTestLogger())

	require.NoError(t, store.Set(ctx, repository.KeyLegacyLogged, "true"))
	require.NoError(t, repo.Save(ctx, &entity.Session{
		User:    &entity.UserIdentity{ID: "x", Name: "Ana", Kind: entity.KindRegistered, LoginAt: time.Now()},
		LoginAt: time.Now(),
	}))

	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	_, err = store.Get(ctx, repository.KeyLegacyLogged)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
	_, err = store.Get(ctx, repository.KeyUserName)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestSessionRepository_LoadLegacyLogin(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewSessionRepository(store, newTestLogger())

	_, err := repo.LoadLegacyLogin(ctx)
	assert.ErrorIs(t, err, repository.ErrLegacyLoginNotFound)

	require.NoError(t, store.Set(ctx, repository.KeyLegacyLogged, "true"))
	_, err = repo.LoadLegacyLogin(ctx)
	assert.ErrorIs(t, err, repository.ErrLegacyLoginNotFound, "flag without a name must not count")

	require.NoError(t, store.Set(ctx, repository.KeyUserName, "Carla"))
	name, err := repo.LoadLegacyLogin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Carla", name)

	require.NoError(t, store.Set(ctx, repository.KeyLegacyLogged, "TRUE"))
	_, err = repo.LoadLegacyLogin(ctx)
	assert.ErrorIs(t, err, repository.ErrLegacyLoginNotFound, "only the exact string true counts")
}

func TestSessionRepository_LoadLegacyUser(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewSessionRepository(store, newTestLogger())

	blob, err := json.Marshal(map[string]string{"email": "old@example.com", "name": "Old"})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, repository.KeyLegacyUser, string(blob)))

	user, err := repo.LoadLegacyUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old@example.com", user.Email)
	assert.Equal(t, "Old", user.Name)
}

func TestSessionRepository_SchemaVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(kv.NewMemoryStore(), newTestLogger())

	version, err := repo.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	require.NoError(t, repo.SetSchemaVersion(ctx, repository.SchemaVersionCurrent))

	version, err = repo.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.SchemaVersionCurrent, version)
}
