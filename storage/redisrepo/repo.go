// Package redisrepo provides a redis-backed storage.Repo for server-side
// embedders of the SDK (e.g. a backend brokering logins on behalf of
// multiple devices).
package redisrepo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/stytchauth/stytch-client-go/storage"
)

var _ storage.Repo = (*RedisRepo)(nil)

// RedisRepo stores values under prefix + ":" + key with no expiry; session
// lifetime is governed by the identity service, not the local cache.
type RedisRepo struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) (*RedisRepo, error) {
	if client == nil {
		return nil, errors.New("[redisrepo.New] redis client is required")
	}
	if prefix == "" {
		prefix = "stytch"
	}
	return &RedisRepo{client: client, prefix: prefix}, nil
}

func (r *RedisRepo) key(key string) string {
	return r.prefix + ":" + key
}

func (r *RedisRepo) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", storage.ErrNotFound
		}
		return "", errors.Wrap(err, "[RedisRepo.Get] redis get failed")
	}
	return v, nil
}

func (r *RedisRepo) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return errors.Wrap(err, "[RedisRepo.Set] redis set failed")
	}
	return nil
}

func (r *RedisRepo) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.Wrap(err, "[RedisRepo.Delete] redis del failed")
	}
	return nil
}
