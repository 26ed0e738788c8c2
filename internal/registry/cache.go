package registry

import (
	"context"
	"errors"
	"time"

	"github.com/feral-file/ff-position-api/internal/adapter"
)

const cacheKeyPrefix = "position-api:registry:"

// Cache stores registry template names per token address
type Cache interface {
	// Get returns the cached template name, false on a miss
	Get(ctx context.Context, tokenAddress string) (string, bool, error)

	// Set caches the template name of a token
	Set(ctx context.Context, tokenAddress string, template string) error
}

// RedisCache is a Cache backed by Redis
type RedisCache struct {
	client adapter.RedisClient
	ttl    time.Duration
}

// NewRedisCache creates a Redis backed registry cache
func NewRedisCache(client adapter.RedisClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, tokenAddress string) (string, bool, error) {
	value, err := c.client.Get(ctx, cacheKey(tokenAddress))
	if errors.Is(err, adapter.ErrCacheMiss) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (c *RedisCache) Set(ctx context.Context, tokenAddress string, template string) error {
	return c.client.Set(ctx, cacheKey(tokenAddress), template, c.ttl)
}

// Invalidate drops the cached template of a token
func (c *RedisCache) Invalidate(ctx context.Context, tokenAddress string) error {
	return c.client.Del(ctx, cacheKey(tokenAddress))
}

func cacheKey(tokenAddress string) string {
	return cacheKeyPrefix + tokenAddress
}
