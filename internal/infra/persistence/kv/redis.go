package kv

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the key/value namespace with Redis, the production
// analog of the browser-local store. Keys are prefixed with the
// configured namespace so multiple storefront deployments can share an
// instance.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

// NewRedisStore creates a store over the given Redis connection.
func NewRedisStore(cfg *config.StorageConfig) (*RedisStore, error) {
	if cfg == nil || cfg.Redis == nil {
		return nil, errors.New("redis storage config is missing")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &RedisStore{client: client, namespace: cfg.Namespace}, nil
}

// Ping verifies the connection during startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "failed to ping redis")
	}

	return nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return errors.WithStack(s.client.Close())
}

// Get retrieves the value stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefixed(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrKeyNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "redis get failed")
	}

	return value, nil
}

// Set stores value under key. Values have no TTL: expiry is a domain
// concern (the session manager checks its own timestamps).
func (s *RedisStore) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, s.prefixed(key), value, 0).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}

	return nil
}

// Delete removes the value stored under key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefixed(key)).Err(); err != nil {
		return errors.Wrap(err, "redis delete failed")
	}

	return nil
}

func (s *RedisStore) prefixed(key string) string {
	if s.namespace == "" {
		return key
	}

	return s.namespace + ":" + key
}
