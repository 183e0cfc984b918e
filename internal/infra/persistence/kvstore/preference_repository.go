package kvstore

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// PreferenceRepository stores the notification flags as "true"/"false"
// strings and reuses the denormalized userName/userEmail keys for the
// profile fields. An absent flag reads as enabled; only a stored
// "false" disables a channel.
type PreferenceRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewPreferenceRepository creates a PreferenceRepository over the given store.
func NewPreferenceRepository(store repository.KVStore, logger *slog.Logger) repository.PreferenceRepository {
	return &PreferenceRepository{store: store, logger: logger}
}

// Load retrieves the preferences, defaulting every flag to enabled.
func (r *PreferenceRepository) Load(ctx context.Context) (*entity.Preferences, error) {
	prefs := entity.DefaultPreferences()

	name, err := r.loadString(ctx, repository.KeyUserName)
	if err != nil {
		return nil, err
	}
	prefs.Name = name

	email, err := r.loadString(ctx, repository.KeyUserEmail)
	if err != nil {
		return nil, err
	}
	prefs.Email = email

	flags := []struct {
		key  string
		dest *bool
	}{
		{repository.KeyNewsletter, &prefs.Newsletter},
		{repository.KeyOrderUpdates, &prefs.OrderUpdates},
		{repository.KeyNewArrivals, &prefs.NewArrivals},
	}
	for _, flag := range flags {
		raw, err := r.loadString(ctx, flag.key)
		if err != nil {
			return nil, err
		}
		if raw == "false" {
			*flag.dest = false
		}
	}

	return prefs, nil
}

// Save persists the flags and the profile fields.
func (r *PreferenceRepository) Save(ctx context.Context, prefs *entity.Preferences) error {
	values := map[string]string{
		repository.KeyUserName:     prefs.Name,
		repository.KeyUserEmail:    prefs.Email,
		repository.KeyNewsletter:   strconv.FormatBool(prefs.Newsletter),
		repository.KeyOrderUpdates: strconv.FormatBool(prefs.OrderUpdates),
		repository.KeyNewArrivals:  strconv.FormatBool(prefs.NewArrivals),
	}
	for key, value := range values {
		if err := r.store.Set(ctx, key, value); err != nil {
			return errors.Wrapf(err, "failed to save preference %s", key)
		}
	}

	return nil
}

func (r *PreferenceRepository) loadString(ctx context.Context, key string) (string, error) {
	value, err := r.store.Get(ctx, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to load preference %s", key)
	}

	return value, nil
}
