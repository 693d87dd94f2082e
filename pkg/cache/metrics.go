package cache

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JuntinLin/bom-owl-sub002/metric"
)

// cacheMetrics holds Prometheus metrics for one cache instance. Each
// instance is distinguished by its component label so the score and
// result pools can be monitored independently.
type cacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	sets      prometheus.Counter
	deletes   prometheus.Counter
	evictions prometheus.Counter

	size prometheus.Gauge
}

// newCacheMetrics creates and registers cache metrics with the registry.
func newCacheMetrics(registry *metric.MetricsRegistry, prefix string) (*cacheMetrics, error) {
	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bomowl",
			Subsystem:   "cache",
			Name:        "hits_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of cache hits",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bomowl",
			Subsystem:   "cache",
			Name:        "misses_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of cache misses",
		}),
		sets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bomowl",
			Subsystem:   "cache",
			Name:        "sets_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of cache set operations",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bomowl",
			Subsystem:   "cache",
			Name:        "deletes_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of cache delete operations",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bomowl",
			Subsystem:   "cache",
			Name:        "evictions_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of cache evictions",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "bomowl",
			Subsystem:   "cache",
			Name:        "size",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of entries in cache",
		}),
	}

	if err := registry.RegisterCounter(prefix, "cache_hits", m.hits); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_misses", m.misses); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_sets", m.sets); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_deletes", m.deletes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_evictions", m.evictions); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "cache_size", m.size); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *cacheMetrics) recordHit() {
	m.hits.Inc()
}

func (m *cacheMetrics) recordMiss() {
	m.misses.Inc()
}

func (m *cacheMetrics) recordSet() {
	m.sets.Inc()
}

func (m *cacheMetrics) recordDelete() {
	m.deletes.Inc()
}

func (m *cacheMetrics) recordEviction() {
	m.evictions.Inc()
}

func (m *cacheMetrics) updateSize(size int) {
	m.size.Set(float64(size))
}
