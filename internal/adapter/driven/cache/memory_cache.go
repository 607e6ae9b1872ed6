package cache

import (
	"context"
	"sync"
	"time"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/diillson/bizcase-simulator-go/internal/domain/repository"
	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
)

// DefaultMaxEntries é o limite usado por NewMemoryCache.
const DefaultMaxEntries = 1024

type memoryEntry struct {
	result    entity.ProjectionResult
	storedAt  time.Time
	expiresAt time.Time
}

// MemoryCache keeps projections in process. A zero ttl never expires.
// Set descarta as entradas expiradas e, com o limite atingido, a mais antiga.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	now        func() time.Time
	maxEntries int // 0 = sem limite
}

func NewMemoryCache() repository.CacheRepository {
	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		now:        time.Now,
		maxEntries: DefaultMaxEntries,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (entity.ProjectionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return entity.ProjectionResult{}, types.ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return entity.ProjectionResult{}, types.ErrCacheMiss
	}
	return entry.result, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, result entity.ProjectionResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.pruneExpired(now)
	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}

	entry := memoryEntry{result: result, storedAt: now}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}
	c.entries[key] = entry
	return nil
}

func (c *MemoryCache) pruneExpired(now time.Time) {
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

func (c *MemoryCache) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for k, e := range c.entries {
		if !found || e.storedAt.Before(oldest) {
			oldestKey, oldest, found = k, e.storedAt, true
		}
	}
	if found {
		delete(c.entries, oldestKey)
	}
}
