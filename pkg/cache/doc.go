// Package cache provides the bounded, expiring caches behind the
// similarity layer.
//
// # Overview
//
// A cache holds up to a configured number of entries, each with a
// time-to-live. Eviction happens on whichever bound is hit first:
// the least recently used entry is dropped when the cache is full,
// and a background sweep removes entries that outlive their TTL.
// Caches are generic over the value type and safe for concurrent use.
//
// The similarity service runs two pools on this package: a large,
// short-lived pool of pairwise scores and a small, longer-lived pool
// of ranked search results:
//
//	scores, err := cache.New[float64](ctx, 10000, time.Hour, 5*time.Minute)
//	if err != nil {
//		return err
//	}
//	results, err := cache.New[[]similarity.Match](ctx, 100, 30*time.Minute, 5*time.Minute)
//
// # Configuration
//
// Pools can also be built from declarative configuration, where a
// disabled config yields a noop cache that always misses:
//
//	cfg := cache.Config{Enabled: true, MaxSize: 10000, TTL: time.Hour, CleanupInterval: 5 * time.Minute}
//	scores, err := cache.NewFromConfig[float64](ctx, cfg)
//
// Durations in JSON config accept either strings ("1h", "30m") or
// integer nanoseconds.
//
// # Observability
//
// Every cache carries always-on statistics with atomic counters:
//
//	stats := scores.Stats()
//	stats.HitRatio()        // 0.0 to 1.0
//	stats.AverageLoadTime() // mean cost of recorded miss computations
//
// Callers that compute a value after a miss can report the cost with
// RecordLoad, which feeds AverageLoadTime. The same counters can be
// exported as Prometheus metrics with a component label:
//
//	scores, err := cache.New[float64](ctx, 10000, time.Hour, 5*time.Minute,
//		cache.WithMetrics[float64](registry, "similarity_scores"),
//	)
//
// # Lifecycle
//
// The background sweep runs until the construction context is
// canceled or Close is called. Always Close a cache when done with
// it; Close waits for the sweep goroutine to exit.
package cache
