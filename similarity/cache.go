package similarity

import (
	"context"
	"time"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/metric"
	"github.com/JuntinLin/bom-owl-sub002/pkg/cache"
)

// Config describes the two cache pools. The score pool is high-cardinality
// (one entry per compared item pair); the result pool holds a handful of
// recent search result sets.
type Config struct {
	Scores  cache.Config `json:"scores"`
	Results cache.Config `json:"results"`
}

// DefaultConfig returns the standard pool bounds: 10,000 scores held for an
// hour and 100 search results held for thirty minutes.
func DefaultConfig() Config {
	return Config{
		Scores: cache.Config{
			Enabled:         true,
			MaxSize:         10000,
			TTL:             time.Hour,
			CleanupInterval: 5 * time.Minute,
		},
		Results: cache.Config{
			Enabled:         true,
			MaxSize:         100,
			TTL:             30 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
	}
}

// Validate checks both pool configurations.
func (c Config) Validate() error {
	if err := c.Scores.Validate(); err != nil {
		return errors.WrapInvalid(err, "similarity", "Validate", "scores pool")
	}
	if err := c.Results.Validate(); err != nil {
		return errors.WrapInvalid(err, "similarity", "Validate", "results pool")
	}
	return nil
}

// Match is one ranked search result: a candidate item code and its
// similarity to the searched specification.
type Match struct {
	Code  string  `json:"code"`
	Score float64 `json:"score"`
}

// Cache holds the score and result pools. Both pools expire entries lazily
// on access and evict the least recently used entry once full; no entry is
// ever returned past its TTL.
type Cache struct {
	scores  cache.Cache[float64]
	results cache.Cache[[]Match]
}

// CacheOption configures a Cache.
type CacheOption func(*cacheSettings)

type cacheSettings struct {
	registry *metric.MetricsRegistry
}

// WithCacheMetrics exports both pools' counters as Prometheus metrics.
func WithCacheMetrics(registry *metric.MetricsRegistry) CacheOption {
	return func(s *cacheSettings) {
		s.registry = registry
	}
}

// NewCache builds both pools from cfg. The background sweeps stop when ctx
// is canceled or the cache is closed.
func NewCache(ctx context.Context, cfg Config, opts ...CacheOption) (*Cache, error) {
	settings := &cacheSettings{}
	for _, opt := range opts {
		opt(settings)
	}

	scores, err := cache.NewFromConfig(ctx, cfg.Scores,
		cache.WithMetrics[float64](settings.registry, "similarity_scores"))
	if err != nil {
		return nil, errors.WrapInvalid(err, "similarity", "NewCache", "building score pool")
	}

	results, err := cache.NewFromConfig(ctx, cfg.Results,
		cache.WithMetrics[[]Match](settings.registry, "similarity_results"))
	if err != nil {
		_ = scores.Close()
		return nil, errors.WrapInvalid(err, "similarity", "NewCache", "building result pool")
	}

	return &Cache{scores: scores, results: results}, nil
}

// GetScore returns the cached similarity for the pair, in either argument
// order.
func (c *Cache) GetScore(a, b string) (float64, bool) {
	return c.scores.Get(PairKey(a, b))
}

// PutScore stores the similarity for the pair under the normalized key.
func (c *Cache) PutScore(a, b string, score float64) error {
	if _, err := c.scores.Set(PairKey(a, b), score); err != nil {
		return errors.WrapInvalid(err, "similarity", "PutScore", "storing score")
	}
	return nil
}

// GetResult returns the cached ranked matches for a specification map with
// the same contents, regardless of how the map was built.
func (c *Cache) GetResult(specs map[string]string) ([]Match, bool) {
	return c.results.Get(SpecKey(specs))
}

// PutResult stores the ranked matches under the normalized specification
// key.
func (c *Cache) PutResult(specs map[string]string, matches []Match) error {
	if _, err := c.results.Set(SpecKey(specs), matches); err != nil {
		return errors.WrapInvalid(err, "similarity", "PutResult", "storing result")
	}
	return nil
}

// Clear invalidates both pools. Statistics counters are retained.
func (c *Cache) Clear() error {
	if err := c.scores.Clear(); err != nil {
		return errors.Wrap(err, "similarity", "Clear", "clearing score pool")
	}
	if err := c.results.Clear(); err != nil {
		return errors.Wrap(err, "similarity", "Clear", "clearing result pool")
	}
	return nil
}

// Close stops both pools' background sweeps.
func (c *Cache) Close() error {
	scoreErr := c.scores.Close()
	resultErr := c.results.Close()
	if scoreErr != nil {
		return errors.Wrap(scoreErr, "similarity", "Close", "closing score pool")
	}
	if resultErr != nil {
		return errors.Wrap(resultErr, "similarity", "Close", "closing result pool")
	}
	return nil
}

// recordScoreLoad reports the time a cold score computation took.
func (c *Cache) recordScoreLoad(d time.Duration) {
	if s := c.scores.Stats(); s != nil {
		s.RecordLoad(d)
	}
}

// recordResultLoad reports the time a cold search took.
func (c *Cache) recordResultLoad(d time.Duration) {
	if s := c.results.Stats(); s != nil {
		s.RecordLoad(d)
	}
}

// PoolStats is a point-in-time view of one pool's counters.
type PoolStats struct {
	Hits            int64         `json:"hits"`
	Misses          int64         `json:"misses"`
	HitRate         float64       `json:"hit_rate"`
	Evictions       int64         `json:"evictions"`
	Size            int           `json:"size"`
	AverageLoadTime time.Duration `json:"average_load_time"`

	loads     int64
	loadNanos int64
}

// Stats reports both pools plus an aggregate across them.
type Stats struct {
	Scores  PoolStats `json:"scores"`
	Results PoolStats `json:"results"`
	Total   PoolStats `json:"total"`
}

// Stats snapshots both pools' counters.
func (c *Cache) Stats() Stats {
	scores := poolStats(c.scores)
	results := poolStats(c.results)
	return Stats{
		Scores:  scores,
		Results: results,
		Total:   aggregate(scores, results),
	}
}

func poolStats[V any](pool cache.Cache[V]) PoolStats {
	stats := pool.Stats()
	if stats == nil {
		return PoolStats{}
	}
	ps := PoolStats{
		Hits:            stats.Hits(),
		Misses:          stats.Misses(),
		HitRate:         stats.HitRatio(),
		Evictions:       stats.Evictions(),
		Size:            pool.Size(),
		AverageLoadTime: stats.AverageLoadTime(),
		loads:           stats.Loads(),
	}
	ps.loadNanos = ps.AverageLoadTime.Nanoseconds() * ps.loads
	return ps
}

// aggregate combines pool counters. The hit rate is recomputed over the
// combined totals and the load time is weighted by each pool's load count.
func aggregate(pools ...PoolStats) PoolStats {
	var total PoolStats
	for _, p := range pools {
		total.Hits += p.Hits
		total.Misses += p.Misses
		total.Evictions += p.Evictions
		total.Size += p.Size
		total.loads += p.loads
		total.loadNanos += p.loadNanos
	}
	if requests := total.Hits + total.Misses; requests > 0 {
		total.HitRate = float64(total.Hits) / float64(requests)
	}
	if total.loads > 0 {
		total.AverageLoadTime = time.Duration(total.loadNanos / total.loads)
	}
	return total
}
