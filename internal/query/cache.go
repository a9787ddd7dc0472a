// Package query provides the request-keyed fetch cache and the ordered list
// pager that sit between the upstream data source and the read models.
//
// Entities served by the upstream API are static, so successful results are
// memoized for the lifetime of the process. Concurrent requests for the same
// key share one in-flight fetch; a page full of cards asking for the same
// detail record costs one upstream round-trip.
package query

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Status describes the fetch state of one cache key.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is a synchronous snapshot of one key's state.
type Result[V any] struct {
	Status Status
	Value  V
	Err    error
}

// Observer receives cache lookup outcomes. Implemented by metrics.Recorder.
type Observer interface {
	RecordCacheLookup(cache string, hit bool)
	RecordCacheCoalesced(cache string)
}

// Cache memoizes fetch results per key. Successes never expire; errors are
// held until an explicit Clear so the caller decides when to retry.
type Cache[V any] struct {
	name     string
	observer Observer

	mu      sync.RWMutex
	entries map[string]Result[V]
	group   singleflight.Group
}

// New constructs a named cache. The observer may be nil.
func New[V any](name string, observer Observer) *Cache[V] {
	return &Cache[V]{
		name:     name,
		observer: observer,
		entries:  make(map[string]Result[V]),
	}
}

// Peek returns the current state of a key without triggering a fetch.
func (c *Cache[V]) Peek(key string) Result[V] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if res, ok := c.entries[key]; ok {
		return res
	}
	return Result[V]{Status: StatusIdle}
}

// Ensure returns the cached value for key, fetching it at most once. A
// cached error is returned as-is without re-fetching; callers retry by
// invoking Clear first. Abandoning callers (cancelled contexts) detach from
// the shared flight without disturbing its outcome.
func (c *Cache[V]) Ensure(ctx context.Context, key string, fetch func(context.Context) (V, error)) (V, error) {
	if res, ok := c.settled(key); ok {
		c.observeLookup(true)
		return res.Value, res.Err
	}
	c.observeLookup(false)

	ch := c.group.DoChan(key, func() (any, error) {
		// Re-check: a previous flight may have settled this key while we
		// were queued behind the singleflight lock.
		if res, ok := c.settled(key); ok {
			return res.Value, res.Err
		}

		c.setLoading(key)
		// The flight outlives any single caller; detach it from the
		// triggering context so one abandoned card cannot fail the fetch
		// for its siblings.
		value, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			c.set(Result[V]{Status: StatusError, Err: err}, key)
			return nil, err
		}
		c.set(Result[V]{Status: StatusSuccess, Value: value}, key)
		return value, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Shared {
			c.observeCoalesced()
		}
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

// Clear drops the entry for key, allowing the next Ensure to fetch again.
func (c *Cache[V]) Clear(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Reset drops every entry.
func (c *Cache[V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Result[V])
}

// Len reports how many keys currently hold a settled or loading state.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[V]) settled(key string) (Result[V], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[key]
	if !ok || res.Status == StatusLoading {
		return Result[V]{}, false
	}
	return res, true
}

func (c *Cache[V]) setLoading(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok && existing.Status == StatusSuccess {
		return
	}
	c.entries[key] = Result[V]{Status: StatusLoading}
}

func (c *Cache[V]) set(res Result[V], key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = res
}

func (c *Cache[V]) observeLookup(hit bool) {
	if c.observer != nil {
		c.observer.RecordCacheLookup(c.name, hit)
	}
}

func (c *Cache[V]) observeCoalesced() {
	if c.observer != nil {
		c.observer.RecordCacheCoalesced(c.name)
	}
}
