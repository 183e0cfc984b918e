package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no session blob is persisted,
	// or when the persisted blob is malformed (malformed data is treated
	// as absent and must never propagate past the repository).
	ErrSessionNotFound = errors.New("session not found")

	// ErrLegacyLoginNotFound is returned when the old two-key login
	// representation is not present.
	ErrLegacyLoginNotFound = errors.New("legacy login not found")
)

// SessionRepository owns the single persisted session slot plus the
// denormalized name/email fields kept for legacy readers.
type SessionRepository interface {
	// Load retrieves the persisted session, or ErrSessionNotFound.
	Load(ctx context.Context) (*entity.Session, error)

	// Save persists the session blob and the denormalized userName and
	// userEmail keys in one pass.
	Save(ctx context.Context, session *entity.Session) error

	// Clear removes the session blob and the denormalized keys.
	Clear(ctx context.Context) error

	// LoadLegacyLogin reads the old two-key representation (isLogged +
	// userName) and returns the stored name, or ErrLegacyLoginNotFound.
	LoadLegacyLogin(ctx context.Context) (string, error)

	// LoadLegacyUser reads the legacy single-user blob, or
	// ErrSessionNotFound when absent or malformed.
	LoadLegacyUser(ctx context.Context) (*entity.UserIdentity, error)

	// SchemaVersion reports the persisted schema version; 0 when unset.
	SchemaVersion(ctx context.Context) (int, error)

	// SetSchemaVersion records that a one-time migration has run.
	SetSchemaVersion(ctx context.Context, version int) error
}
