package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// PreferenceRepository persists the notification flags and display
// name. Absent flags load as enabled; only a stored "false" disables.
type PreferenceRepository interface {
	Load(ctx context.Context) (*entity.Preferences, error)
	Save(ctx context.Context, prefs *entity.Preferences) error
}
