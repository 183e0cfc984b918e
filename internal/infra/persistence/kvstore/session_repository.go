// Package kvstore implements the domain repositories on top of the flat
// key/value namespace.
package kvstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"
)

// SessionRepository stores the session blob under "userSession" and
// keeps the denormalized userName/userEmail keys in sync for readers of
// the old schema.
type SessionRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewSessionRepository creates a SessionRepository over the given store.
func NewSessionRepository(store repository.KVStore, logger *slog.Logger) repository.SessionRepository {
	return &SessionRepository{store: store, logger: logger}
}

// Load retrieves the persisted session. A malformed blob is logged and
// reported as absent so corrupt state can never wedge the storefront.
func (r *SessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	raw, err := r.store.Get(ctx, repository.KeySession)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	var stored model.SessionModel
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || stored.User == nil {
		r.logger.Warn("Discarding malformed session blob", slog.Any("error", err))

		return nil, repository.ErrSessionNotFound
	}

	return sessionToEntity(&stored), nil
}

// Save persists the session blob and the denormalized name/email keys.
func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	if session == nil || session.User == nil {
		return errors.New("cannot save an empty session")
	}

	raw, err := json.Marshal(sessionToModel(session))
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}

	if err := r.store.Set(ctx, repository.KeySession, string(raw)); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	if err := r.store.Set(ctx, repository.KeyUserName, session.User.Name); err != nil {
		return errors.Wrap(err, "failed to save user name")
	}
	if err := r.store.Set(ctx, repository.KeyUserEmail, session.User.Email); err != nil {
		return errors.Wrap(err, "failed to save user email")
	}

	return nil
}

// Clear removes the session blob, the denormalized keys and the legacy
// login markers.
func (r *SessionRepository) Clear(ctx context.Context) error {
	keys := []string{
		repository.KeySession,
		repository.KeyUserName,
		repository.KeyUserEmail,
		repository.KeyLegacyLogged,
		repository.KeyLegacyUser,
	}
	for _, key := range keys {
		if err := r.store.Delete(ctx, key); err != nil {
			return errors.Wrapf(err, "failed to clear session key %s", key)
		}
	}

	return nil
}

// LoadLegacyLogin reads the old two-key representation. It only counts
// when isLogged is exactly "true" and a non-empty name is stored.
func (r *SessionRepository) LoadLegacyLogin(ctx context.Context) (string, error) {
	logged, err := r.store.Get(ctx, repository.KeyLegacyLogged)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return "", repository.ErrLegacyLoginNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load legacy login flag")
	}
	if logged != "true" {
		return "", repository.ErrLegacyLoginNotFound
	}

	name, err := r.store.Get(ctx, repository.KeyUserName)
	if errors.Is(err, repository.ErrKeyNotFound) || (err == nil && name == "") {
		return "", repository.ErrLegacyLoginNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load legacy user name")
	}

	return name, nil
}

// LoadLegacyUser reads the legacy single-user blob.
func (r *SessionRepository) LoadLegacyUser(ctx context.Context) (*entity.UserIdentity, error) {
	raw, err := r.store.Get(ctx, repository.KeyLegacyUser)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load legacy user")
	}

	var stored model.LegacyUserModel
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		r.logger.Warn("Discarding malformed legacy user blob", slog.Any("error", err))

		return nil, repository.ErrSessionNotFound
	}

	return &entity.UserIdentity{Email: stored.Email, Name: stored.Name}, nil
}

// SchemaVersion reports the persisted schema version, 0 when unset or
// unparsable.
func (r *SessionRepository) SchemaVersion(ctx context.Context) (int, error) {
	raw, err := r.store.Get(ctx, repository.KeySchemaVersion)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to load schema version")
	}

	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0, nil
	}

	return version, nil
}

// SetSchemaVersion records that a one-time migration has run.
func (r *SessionRepository) SetSchemaVersion(ctx context.Context, version int) error {
	if err := r.store.Set(ctx, repository.KeySchemaVersion, strconv.Itoa(version)); err != nil {
		return errors.Wrap(err, "failed to save schema version")
	}

	return nil
}

func sessionToModel(session *entity.Session) *model.SessionModel {
	user := session.User
	loginMillis := user.LoginAt.UnixMilli()

	return &model.SessionModel{
		User: &model.IdentityModel{
			ID:           model.FlexibleID(user.ID),
			Email:        user.Email,
			Name:         user.Name,
			Kind:         string(user.Kind),
			IsGuest:      user.Kind == entity.KindGuest,
			IsLegacy:     user.Kind == entity.KindLegacy,
			LoginTime:    loginMillis,
			WelcomeShown: user.WelcomeShown,
		},
		LoginTime: loginMillis,
	}
}

func sessionToEntity(stored *model.SessionModel) *entity.Session {
	loginMillis := stored.LoginTime
	if loginMillis == 0 {
		loginMillis = stored.User.LoginTime
	}
	loginAt := time.UnixMilli(loginMillis)

	return &entity.Session{
		User: &entity.UserIdentity{
			ID:           string(stored.User.ID),
			Email:        stored.User.Email,
			Name:         stored.User.Name,
			Kind:         identityKind(stored.User),
			LoginAt:      loginAt,
			WelcomeShown: stored.User.WelcomeShown,
		},
		LoginAt: loginAt,
	}
}

// identityKind resolves the stored kind, falling back to the boolean
// flags written by older storefront versions.
func identityKind(stored *model.IdentityModel) entity.IdentityKind {
	switch entity.IdentityKind(stored.Kind) {
	case entity.KindRegistered, entity.KindLegacy, entity.KindGuest:
		return entity.IdentityKind(stored.Kind)
	}
	if stored.IsGuest {
		return entity.KindGuest
	}
	if stored.IsLegacy {
		return entity.KindLegacy
	}

	return entity.KindRegistered
}
