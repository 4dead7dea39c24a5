// utils/optioncache.go
package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// OptionTTL is how long cached filter options stay valid. The cache is only
// invalidated explicitly on the location create path; other writes let it age
// out.
const OptionTTL = 5 * time.Minute

// OptionCache holds the serialized filter-options payload. It is Redis-backed
// when a client is available and falls back to a process-local entry otherwise.
type OptionCache struct {
	redis *redis.Client
	key   string
	ttl   time.Duration

	mu        sync.RWMutex
	value     []byte
	expiresAt time.Time
}

// NewOptionCache creates a cache for one endpoint's payload under the given key
func NewOptionCache(client *redis.Client, key string) *OptionCache {
	return &OptionCache{
		redis: client,
		key:   key,
		ttl:   OptionTTL,
	}
}

// Get returns the cached payload, or false when absent or expired
func (oc *OptionCache) Get(ctx context.Context) ([]byte, bool) {
	if oc.redis != nil {
		value, err := oc.redis.Get(ctx, oc.key).Bytes()
		if err != nil {
			return nil, false
		}
		return value, true
	}

	oc.mu.RLock()
	defer oc.mu.RUnlock()
	if oc.value == nil || time.Now().After(oc.expiresAt) {
		return nil, false
	}
	return oc.value, true
}

// Set stores the payload with the cache TTL
func (oc *OptionCache) Set(ctx context.Context, value []byte) {
	if oc.redis != nil {
		oc.redis.Set(ctx, oc.key, value, oc.ttl)
		return
	}

	oc.mu.Lock()
	oc.value = value
	oc.expiresAt = time.Now().Add(oc.ttl)
	oc.mu.Unlock()
}

// Invalidate drops the payload ahead of its TTL
func (oc *OptionCache) Invalidate(ctx context.Context) {
	if oc.redis != nil {
		oc.redis.Del(ctx, oc.key)
		return
	}

	oc.mu.Lock()
	oc.value = nil
	oc.mu.Unlock()
}
