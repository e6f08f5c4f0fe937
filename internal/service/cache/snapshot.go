// Package cache holds the single aggregated snapshot between requests.
package cache

import (
	"context"
	"sync"
	"time"

	"SawitFeed/internal/domain/models"
	"SawitFeed/internal/domain/repository"
	pkgcache "SawitFeed/pkg/cache"

	"golang.org/x/sync/singleflight"
)

const snapshotKey = "snapshot"

// RefreshFunc runs the full aggregation pipeline and returns a fresh
// snapshot.
type RefreshFunc func(ctx context.Context) (models.PriceSnapshot, error)

type entry struct {
	capturedAt time.Time
	snapshot   models.PriceSnapshot
}

// SnapshotCache owns the one current cache entry. An entry is fresh
// while now-capturedAt < TTL; a stale or missing entry triggers a
// refresh. Concurrent stale reads collapse into a single in-flight
// refresh so simultaneous requests cannot stampede the sources.
//
// The entry is replaced wholesale on a successful refresh and left
// untouched when a refresh fails, so the previous (stale) data stays
// available for the next request.
type SnapshotCache struct {
	ttl     time.Duration
	metrics repository.Metrics

	mu  sync.RWMutex
	cur *entry

	sf singleflight.Group

	// optional shared second level, consulted on local miss
	l2    pkgcache.Service
	l2TTL time.Duration

	now func() time.Time
}

// Option configures SnapshotCache.
type Option func(*SnapshotCache)

// WithL2 attaches a shared cache layer (redis) behind the local entry.
func WithL2(l2 pkgcache.Service) Option {
	return func(c *SnapshotCache) {
		c.l2 = l2
	}
}

func NewSnapshotCache(ttl time.Duration, metrics repository.Metrics, opts ...Option) *SnapshotCache {
	c := &SnapshotCache{
		ttl:     ttl,
		metrics: metrics,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.l2TTL = ttl
	return c
}

// Get returns the cached snapshot when fresh, otherwise refreshes.
// The error is the refresh error; on error no state was modified.
func (c *SnapshotCache) Get(ctx context.Context, refresh RefreshFunc) (models.PriceSnapshot, error) {
	if snap, ok := c.fresh(); ok {
		c.metrics.RecordCacheHit()
		return snap, nil
	}
	c.metrics.RecordCacheMiss()

	v, err, _ := c.sf.Do(snapshotKey, func() (interface{}, error) {
		// Another waiter may have refreshed while this call queued.
		if snap, ok := c.fresh(); ok {
			return snap, nil
		}

		if snap, ok := c.fromL2(ctx); ok {
			c.store(snap)
			return snap, nil
		}

		snap, err := refresh(ctx)
		if err != nil {
			return nil, err
		}

		c.store(snap)
		c.toL2(ctx, snap)
		return snap, nil
	})
	if err != nil {
		return models.PriceSnapshot{}, err
	}
	return v.(models.PriceSnapshot), nil
}

// Peek returns the current entry regardless of freshness.
func (c *SnapshotCache) Peek() (models.PriceSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cur == nil {
		return models.PriceSnapshot{}, false
	}
	return c.cur.snapshot, true
}

func (c *SnapshotCache) fresh() (models.PriceSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cur == nil {
		return models.PriceSnapshot{}, false
	}
	if c.now().Sub(c.cur.capturedAt) >= c.ttl {
		return models.PriceSnapshot{}, false
	}
	return c.cur.snapshot, true
}

func (c *SnapshotCache) store(snap models.PriceSnapshot) {
	c.mu.Lock()
	c.cur = &entry{capturedAt: c.now(), snapshot: snap}
	c.mu.Unlock()
}

// fromL2 loads a shared snapshot if one is still live; redis expiry
// enforces the TTL for the shared layer.
func (c *SnapshotCache) fromL2(ctx context.Context) (models.PriceSnapshot, bool) {
	if c.l2 == nil {
		return models.PriceSnapshot{}, false
	}
	var snap models.PriceSnapshot
	if err := c.l2.Get(ctx, snapshotKey, &snap); err != nil {
		return models.PriceSnapshot{}, false
	}
	if len(snap.Current) == 0 {
		return models.PriceSnapshot{}, false
	}
	return snap, true
}

func (c *SnapshotCache) toL2(ctx context.Context, snap models.PriceSnapshot) {
	if c.l2 == nil {
		return
	}
	// Best effort; a failed shared write never fails the cycle.
	_ = c.l2.Set(ctx, snapshotKey, snap, c.l2TTL)
}
