package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/voltride/rental-core/internal/core/domain"
)

// KV adapts a Redis client to the cache.KV interface.
type KV struct {
	client *redis.Client
}

func NewKV(client *redis.Client) *KV {
	return &KV{client: client}
}

func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := k.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &domain.CacheError{Op: "get", Key: key, Err: err}
	}
	return v, true, nil
}

func (k *KV) Set(ctx context.Context, key, value string) error {
	if err := k.client.Set(ctx, key, value, 0).Err(); err != nil {
		return &domain.CacheError{Op: "set", Key: key, Err: err}
	}
	return nil
}
