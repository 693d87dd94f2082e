package cache

import (
	"github.com/JuntinLin/bom-owl-sub002/metric"
)

// Option configures a cache at construction time.
type Option[V any] func(*cacheOptions[V])

// cacheOptions holds internal configuration for cache instances.
// Statistics are always collected; Prometheus export is opt-in.
type cacheOptions[V any] struct {
	// metricsReg, when set, exposes the cache counters as Prometheus metrics
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is the component label attached to exported metrics
	metricsPrefix string

	// evictCallback is called when items leave the cache
	evictCallback EvictCallback[V]
}

// WithMetrics exports the cache counters as Prometheus metrics under
// the given component prefix. A nil registry or empty prefix leaves
// the export disabled.
func WithMetrics[V any](registry *metric.MetricsRegistry, prefix string) Option[V] {
	return func(opts *cacheOptions[V]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithEvictionCallback sets a callback invoked after an entry is
// evicted or cleared. The callback runs outside the cache lock.
func WithEvictionCallback[V any](callback EvictCallback[V]) Option[V] {
	return func(opts *cacheOptions[V]) {
		opts.evictCallback = callback
	}
}

// applyOptions folds functional options into the final configuration.
func applyOptions[V any](options ...Option[V]) *cacheOptions[V] {
	opts := &cacheOptions[V]{}
	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}
	return opts
}
