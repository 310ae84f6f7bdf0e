package connection

import (
	"context"
	"sync"
	"time"

	"catalog-manager/core/catalog"
	"catalog-manager/core/metrics"

	"golang.org/x/sync/singleflight"
)

// cachedSnapshot is a decoded snapshot with its build time.
type cachedSnapshot struct {
	catalog *catalog.Catalog
	built   time.Time
	ttl     time.Duration
}

func (c *cachedSnapshot) isExpired() bool {
	if c.ttl == 0 {
		return true
	}
	return time.Since(c.built) > c.ttl
}

// snapshotCache holds decoded snapshots keyed by object key. Snapshots are
// immutable, so the TTL only bounds memory.
type snapshotCache struct {
	mu      sync.RWMutex
	entries map[string]*cachedSnapshot
	sf      singleflight.Group
	ttl     time.Duration
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		entries: make(map[string]*cachedSnapshot),
		ttl:     ttl,
	}
}

// getOrLoad returns the cached snapshot or loads it once, even when many
// callers miss at the same time. Callers must not modify the result.
func (s *snapshotCache) getOrLoad(ctx context.Context, key string, load func(context.Context) (*catalog.Catalog, error)) (*catalog.Catalog, error) {
	if c, ok := s.lookup(key); ok {
		metrics.SnapshotCacheHitsTotal.Inc()
		return c, nil
	}
	metrics.SnapshotCacheMissesTotal.Inc()

	result, err, _ := s.sf.Do(key, func() (any, error) {
		if c, ok := s.lookup(key); ok {
			return c, nil
		}

		c, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if s.ttl > 0 {
			s.mu.Lock()
			s.entries[key] = &cachedSnapshot{catalog: c, built: time.Now(), ttl: s.ttl}
			s.mu.Unlock()
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*catalog.Catalog), nil
}

func (s *snapshotCache) lookup(key string) (*catalog.Catalog, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || entry.isExpired() {
		return nil, false
	}
	return entry.catalog, true
}

// invalidate drops one key.
func (s *snapshotCache) invalidate(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// sweep drops expired entries and returns how many were removed.
func (s *snapshotCache) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, entry := range s.entries {
		if entry.isExpired() {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}
