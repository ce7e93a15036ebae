package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/wire"
)

// Cache is a local data source backed by Redis. Entities are stored as their
// JSON wire form with no expiry.
// Key format: <prefix>:<entity>:<id>
type Cache[E domain.Entity[E]] struct {
	client *redis.Client
	codec  wire.Codec[E]
	prefix string
	log    zerolog.Logger
}

// NewCache creates a Cache for the entity described by codec.
func NewCache[E domain.Entity[E]](client *redis.Client, codec wire.Codec[E], prefix string, log zerolog.Logger) *Cache[E] {
	return &Cache[E]{client: client, codec: codec, prefix: prefix, log: log}
}

// Cache stores entity. Encoding and Redis failures are returned as
// *domain.CacheError.
func (c *Cache[E]) Cache(ctx context.Context, entity E) error {
	key := c.key(entity.EntityID())
	raw, err := c.codec.Encode(entity)
	if err != nil {
		return &domain.CacheError{Op: "encode", Key: key, Err: err}
	}
	if err := c.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return &domain.CacheError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// GetCached loads id. A missing key is a miss, not an error.
func (c *Cache[E]) GetCached(ctx context.Context, id string) (E, bool, error) {
	var zero E
	key := c.key(id)
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, &domain.CacheError{Op: "get", Key: key, Err: err}
	}

	decoded, err := c.codec.Decode(raw)
	if err != nil {
		return zero, false, &domain.CacheError{Op: "decode", Key: key, Err: err}
	}
	decoded.Report(c.log, c.codec.Name)
	return decoded.Entity, true, nil
}

func (c *Cache[E]) Clear(ctx context.Context, id string) error {
	key := c.key(id)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return &domain.CacheError{Op: "clear", Key: key, Err: err}
	}
	return nil
}

func (c *Cache[E]) key(id string) string {
	return fmt.Sprintf("%s:%s:%s", c.prefix, c.codec.Name, id)
}
