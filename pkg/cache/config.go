package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JuntinLin/bom-owl-sub002/errors"
)

// Config describes one cache pool. The similarity score and result
// pools are each built from a Config; a disabled config yields a noop
// cache that always misses.
type Config struct {
	// Enabled determines if caching is enabled.
	Enabled bool `json:"enabled" schema:"editable,type:bool,description:Enable caching"`

	// MaxSize is the maximum number of entries before LRU eviction.
	MaxSize int `json:"max_size" schema:"editable,type:int,description:Maximum number of cache entries,min:1"`

	// TTL is the time-to-live for entries.
	TTL time.Duration `json:"ttl" schema:"editable,type:string,description:Time-to-live for entries"`

	// CleanupInterval is how often expired entries are swept.
	CleanupInterval time.Duration `json:"cleanup_interval" schema:"editable,type:string,description:How often to sweep expired entries"`
}

// DefaultConfig returns defaults suitable for a general lookup cache.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		MaxSize:         1000,
		TTL:             5 * time.Minute,
		CleanupInterval: 1 * time.Minute,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil // No validation needed if disabled
	}

	if c.MaxSize <= 0 {
		return errors.WrapInvalid(errors.ErrInvalidData, "cache", "Validate",
			fmt.Sprintf("max_size must be positive, got %d", c.MaxSize))
	}
	if c.TTL <= 0 {
		return errors.WrapInvalid(errors.ErrInvalidData, "cache", "Validate",
			fmt.Sprintf("ttl must be positive, got %v", c.TTL))
	}
	if c.CleanupInterval <= 0 {
		return errors.WrapInvalid(errors.ErrInvalidData, "cache", "Validate",
			fmt.Sprintf("cleanup_interval must be positive, got %v", c.CleanupInterval))
	}

	return nil
}

// NewFromConfig creates a cache based on the provided configuration.
// Returns a noop cache if config.Enabled is false. Additional
// functional options configure metrics and eviction callbacks.
func NewFromConfig[V any](ctx context.Context, config Config, options ...Option[V]) (Cache[V], error) {
	if err := config.Validate(); err != nil {
		return nil, errors.WrapInvalid(err, "cache", "NewFromConfig", "config validation failed")
	}

	if !config.Enabled {
		return NewNoop[V](), nil
	}

	return New[V](ctx, config.MaxSize, config.TTL, config.CleanupInterval, options...)
}

// New creates a cache bounded by entry count and entry age. The least
// recently used entry is evicted once maxSize is exceeded and every
// entry expires after ttl. The background sweep stops when ctx is
// canceled or the cache is closed.
func New[V any](
	ctx context.Context, maxSize int, ttl, cleanupInterval time.Duration, options ...Option[V],
) (Cache[V], error) {
	opts := applyOptions(options...)
	return newHybridCache[V](ctx, maxSize, ttl, cleanupInterval, opts)
}

// NewNoop creates a cache that stores nothing and always misses.
// This is used when caching is disabled via configuration.
func NewNoop[V any]() Cache[V] {
	return &noopCache[V]{}
}

// noopCache is a cache implementation that does nothing.
type noopCache[V any] struct{}

func (c *noopCache[V]) Get(_ string) (V, bool) {
	var zero V
	return zero, false
}

func (c *noopCache[V]) Set(_ string, _ V) (bool, error) {
	return false, nil
}

func (c *noopCache[V]) Delete(_ string) (bool, error) {
	return false, nil
}

func (c *noopCache[V]) Clear() error {
	return nil
}

func (c *noopCache[V]) Size() int {
	return 0
}

func (c *noopCache[V]) Keys() []string {
	return nil
}

func (c *noopCache[V]) Stats() *Statistics {
	return nil
}

func (c *noopCache[V]) Close() error {
	return nil
}

// UnmarshalJSON implements custom JSON unmarshaling for Config to
// support duration strings (e.g. "1h", "30m") in addition to
// nanosecond integers.
func (c *Config) UnmarshalJSON(data []byte) error {
	// Use an alias to avoid infinite recursion
	type Alias Config

	aux := &struct {
		TTL             json.RawMessage `json:"ttl,omitempty"`
		CleanupInterval json.RawMessage `json:"cleanup_interval,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(c),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.TTL) > 0 {
		ttl, err := parseDurationField(aux.TTL, "ttl")
		if err != nil {
			return err
		}
		c.TTL = ttl
	}

	if len(aux.CleanupInterval) > 0 {
		interval, err := parseDurationField(aux.CleanupInterval, "cleanup_interval")
		if err != nil {
			return err
		}
		c.CleanupInterval = interval
	}

	return nil
}

// parseDurationField parses a JSON duration that can be either a
// string like "1h" or an integer count of nanoseconds.
func parseDurationField(data json.RawMessage, fieldName string) (time.Duration, error) {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		duration, err := time.ParseDuration(str)
		if err != nil {
			return 0, fmt.Errorf("invalid duration string for %s: %w", fieldName, err)
		}
		return duration, nil
	}

	var nsec int64
	if err := json.Unmarshal(data, &nsec); err != nil {
		return 0, fmt.Errorf("field %s must be either a duration string (e.g., '1h') or integer nanoseconds", fieldName)
	}
	return time.Duration(nsec), nil
}
