// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides a process-local cache with TTL support and automatic cleanup

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is the error returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache interface using an in-process store
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache. Expired entries are purged
// on the given cleanup interval.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	data := value.([]byte)
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL. A zero TTL stores the
// value without expiration.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := make([]byte, len(value))
	copy(data, value)

	expiration := ttl
	if ttl == 0 {
		expiration = gocache.NoExpiration
	}

	c.cache.Set(key, data, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.cache.Delete(key)
	return nil
}
