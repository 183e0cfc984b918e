package kv

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New selects the key/value backend from config: "memory" (default) or
// "redis". The Redis backend is pinged on startup and closed on stop.
func New(params Params) (repository.KVStore, error) {
	storageCfg := params.Config.Storage

	switch storageCfg.Provider {
	case "", "memory":
		params.Logger.Info("Using in-memory key/value store")

		return NewMemoryStore(), nil

	case "redis":
		store, err := NewRedisStore(storageCfg)
		if err != nil {
			return nil, err
		}

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := store.Ping(ctx); err != nil {
					return err
				}
				params.Logger.Info("Connected to redis key/value store",
					slog.String("addr", storageCfg.Redis.Addr),
					slog.String("namespace", storageCfg.Namespace))

				return nil
			},
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", storageCfg.Provider)
	}
}
