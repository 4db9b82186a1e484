package lookupcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a Redis-backed JSON cache for small read-mostly lists. A nil *Cache is a
// valid pass-through: reads always miss and writes do nothing.
//
// Each key has a generation counter bumped by Invalidate. Readers that fill the cache
// from the database capture the generation before loading and store through
// SetIfGeneration, so a list loaded before a concurrent invalidation is never cached.
type Cache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// New creates a cache storing entries under keyPrefix for ttl.
func New(client *redis.Client, keyPrefix string, ttl time.Duration) *Cache {
	return &Cache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Get decodes the entry at key into dest and reports whether it was present.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}

	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// a corrupt entry is dropped and treated as a miss
		c.client.Del(ctx, c.keyPrefix+key)
		return false, nil
	}
	return true, nil
}

// Generation returns the invalidation counter of key, zero if it was never invalidated.
func (c *Cache) Generation(ctx context.Context, key string) (int64, error) {
	if c == nil {
		return 0, nil
	}
	gen, err := readGeneration(ctx, c.client, c.generationKey(key))
	if err != nil {
		return 0, fmt.Errorf("read generation of %s: %w", key, err)
	}
	return gen, nil
}

// SetIfGeneration stores value at key unless key was invalidated after gen was read.
// It reports whether the value was stored.
func (c *Cache) SetIfGeneration(ctx context.Context, key string, gen int64, value interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("encode cache value: %w", err)
	}

	genKey := c.generationKey(key)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx, genKey)
		if err != nil {
			return err
		}
		if current != gen {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.keyPrefix+key, data, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("write cache key %s: %w", key, err)
	}
	return true, nil
}

// Invalidate deletes keys and bumps their generations.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if c == nil || len(keys) == 0 {
		return nil
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range keys {
			pipe.Incr(ctx, c.generationKey(k))
			pipe.Del(ctx, c.keyPrefix+k)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate cache keys: %w", err)
	}
	return nil
}

// Ping checks that Redis answers.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

func (c *Cache) generationKey(key string) string {
	return c.keyPrefix + key + ":gen"
}

var errStale = errors.New("cache key invalidated while loading")

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, g getter, genKey string) (int64, error) {
	gen, err := g.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// TTL returns the configured expiry.
func (c *Cache) TTL() time.Duration {
	if c == nil {
		return 0
	}
	return c.ttl
}
