package digestcache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/vedic-weekly/internal/domain/digest"
)

// MemoryCache keeps assembled digests in process memory. It is the fallback
// when no Valkey instance is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	digest    digest.WeeklyDigest
	expiresAt time.Time
}

// NewMemoryCache constructs the cache. A non-positive ttl disables expiry.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, weekStart string) (digest.WeeklyDigest, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[weekStart]
	c.mu.RUnlock()
	if !ok {
		return digest.WeeklyDigest{}, false, nil
	}
	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, weekStart)
		c.mu.Unlock()
		return digest.WeeklyDigest{}, false, nil
	}
	return entry.digest, true, nil
}

func (c *MemoryCache) Put(_ context.Context, weekStart string, d digest.WeeklyDigest) error {
	entry := memoryEntry{digest: d}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[weekStart] = entry
	c.mu.Unlock()
	return nil
}

var _ digest.Cache = (*MemoryCache)(nil)
