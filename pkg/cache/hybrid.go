package cache

import (
	"container/list"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JuntinLin/bom-owl-sub002/errors"
)

// entry is a cached value plus its expiry deadline.
type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

func (e *entry[V]) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// hybridCache bounds both the count and the age of cached values. The
// least recently used entry is evicted when the cache is full, and
// every entry expires after the configured TTL, whichever comes
// first. A background sweep removes expired entries so abandoned keys
// do not pin memory until their next lookup.
type hybridCache[V any] struct {
	mu              sync.RWMutex
	maxSize         int
	ttl             time.Duration
	cleanupInterval time.Duration
	items           map[string]*list.Element
	order           *list.List // front = most recently used
	stats           *Statistics
	metrics         *cacheMetrics // nil unless WithMetrics was given
	evictFn         EvictCallback[V]

	// Background sweep coordination
	shutdown chan struct{}
	done     chan struct{}
}

// newHybridCache creates the cache and starts its background sweep.
// Returns an error if metrics registration fails when requested.
func newHybridCache[V any](
	ctx context.Context, maxSize int, ttl, cleanupInterval time.Duration, opts *cacheOptions[V],
) (*hybridCache[V], error) {
	var metrics *cacheMetrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newCacheMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "cache", "newHybridCache", "metrics registration")
		}
	}

	c := &hybridCache[V]{
		maxSize:         maxSize,
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		items:           make(map[string]*list.Element),
		order:           list.New(),
		stats:           NewStatistics(),
		metrics:         metrics,
		evictFn:         opts.evictCallback,
		shutdown:        make(chan struct{}),
		done:            make(chan struct{}),
	}

	go c.sweep(ctx)

	return c, nil
}

// Get returns the value for key and refreshes its LRU position.
// An expired entry is removed and reported as a miss.
func (c *hybridCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()

	element, ok := c.items[key]
	if !ok {
		c.recordMiss()
		c.mu.Unlock()
		return zero, false
	}

	ent := element.Value.(*entry[V])
	if ent.expired(time.Now()) {
		c.remove(element)
		c.recordEviction()
		c.recordMiss()
		c.recordSize()
		c.mu.Unlock()
		c.notifyEvict(ent)
		return zero, false
	}

	c.order.MoveToFront(element)
	c.recordHit()
	c.mu.Unlock()

	return ent.value, true
}

// Set stores value under key with a fresh TTL. Storing over an
// existing key refreshes both the value and the deadline.
func (c *hybridCache[V]) Set(key string, value V) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	expiresAt := time.Now().Add(c.ttl)

	c.mu.Lock()

	if element, ok := c.items[key]; ok {
		ent := element.Value.(*entry[V])
		ent.value = value
		ent.expiresAt = expiresAt
		c.order.MoveToFront(element)
		c.recordSet()
		c.mu.Unlock()
		return false, nil
	}

	c.items[key] = c.order.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})

	var evicted *entry[V]
	if len(c.items) > c.maxSize {
		evicted = c.evictOldest()
	}

	c.recordSet()
	c.recordSize()
	c.mu.Unlock()

	if evicted != nil {
		c.notifyEvict(evicted)
	}
	return true, nil
}

// Delete removes an entry by key. Explicit deletion does not trigger
// the eviction callback.
func (c *hybridCache[V]) Delete(key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.items[key]
	if !ok {
		return false, nil
	}

	c.remove(element)
	c.stats.Delete()
	if c.metrics != nil {
		c.metrics.recordDelete()
	}
	c.recordSize()

	return true, nil
}

// Clear removes all entries, invoking the eviction callback for each.
func (c *hybridCache[V]) Clear() error {
	c.mu.Lock()

	var dropped []*entry[V]
	if c.evictFn != nil {
		dropped = make([]*entry[V], 0, len(c.items))
		for element := c.order.Back(); element != nil; element = element.Prev() {
			dropped = append(dropped, element.Value.(*entry[V]))
		}
	}

	c.items = make(map[string]*list.Element)
	c.order.Init()
	c.recordSize()
	c.mu.Unlock()

	for _, ent := range dropped {
		c.notifyEvict(ent)
	}
	return nil
}

// Size returns the current number of entries, expired or not.
func (c *hybridCache[V]) Size() int {
	c.mu.RLock()
	size := len(c.items)
	c.mu.RUnlock()
	return size
}

// Keys returns the unexpired keys in LRU order, most recently used
// first. Expired entries awaiting the next sweep are skipped.
func (c *hybridCache[V]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.items))
	now := time.Now()

	for element := c.order.Front(); element != nil; element = element.Next() {
		ent := element.Value.(*entry[V])
		if now.Before(ent.expiresAt) {
			keys = append(keys, ent.key)
		}
	}
	return keys
}

// Stats returns the cache counters.
func (c *hybridCache[V]) Stats() *Statistics {
	return c.stats
}

// Close stops the background sweep and waits for it to exit.
func (c *hybridCache[V]) Close() error {
	select {
	case <-c.shutdown:
		// Already shutting down
	default:
		close(c.shutdown)
	}

	select {
	case <-c.done:
		return nil
	case <-time.After(5 * time.Second):
		return fmt.Errorf("timeout waiting for sweep goroutine to exit")
	}
}

// evictOldest removes the least recently used entry and returns it so
// the caller can run the eviction callback after unlocking.
// Must be called with the mutex held.
func (c *hybridCache[V]) evictOldest() *entry[V] {
	element := c.order.Back()
	if element == nil {
		return nil
	}
	ent := element.Value.(*entry[V])
	c.remove(element)
	c.recordEviction()
	return ent
}

// remove unlinks an element from both the index and the LRU list.
// Must be called with the mutex held.
func (c *hybridCache[V]) remove(element *list.Element) {
	ent := element.Value.(*entry[V])
	delete(c.items, ent.key)
	c.order.Remove(element)
}

// notifyEvict runs the eviction callback. Never called under the lock.
func (c *hybridCache[V]) notifyEvict(ent *entry[V]) {
	if c.evictFn != nil {
		c.evictFn(ent.key, ent.value)
	}
}

// recordHit and friends keep the always-on statistics and the
// optional Prometheus metrics in step. Must be called with the mutex
// held so counter updates stay ordered with the mutation they track.
func (c *hybridCache[V]) recordHit() {
	c.stats.Hit()
	if c.metrics != nil {
		c.metrics.recordHit()
	}
}

func (c *hybridCache[V]) recordMiss() {
	c.stats.Miss()
	if c.metrics != nil {
		c.metrics.recordMiss()
	}
}

func (c *hybridCache[V]) recordSet() {
	c.stats.Set()
	if c.metrics != nil {
		c.metrics.recordSet()
	}
}

func (c *hybridCache[V]) recordEviction() {
	c.stats.Eviction()
	if c.metrics != nil {
		c.metrics.recordEviction()
	}
}

func (c *hybridCache[V]) recordSize() {
	n := len(c.items)
	c.stats.UpdateSize(int64(n))
	if c.metrics != nil {
		c.metrics.updateSize(n)
	}
}

// sweep runs in a background goroutine and periodically removes
// expired entries until the context is canceled or Close is called.
func (c *hybridCache[V]) sweep(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.shutdown:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

// removeExpired drops every expired entry in one pass.
func (c *hybridCache[V]) removeExpired() {
	now := time.Now()
	var expired []*entry[V]

	c.mu.Lock()
	for element := c.order.Front(); element != nil; {
		next := element.Next()
		ent := element.Value.(*entry[V])
		if ent.expired(now) {
			c.remove(element)
			expired = append(expired, ent)
		}
		element = next
	}
	if len(expired) > 0 {
		for range expired {
			c.recordEviction()
		}
		c.recordSize()
	}
	c.mu.Unlock()

	for _, ent := range expired {
		c.notifyEvict(ent)
	}
}
