// Package config loads the YAML configuration for the BOM ontology
// pipeline: logging, the metrics endpoint, the reasoner transport, batch
// conversion, and the similarity cache pools.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/pkg/cache"
	"github.com/JuntinLin/bom-owl-sub002/pkg/retry"
	"github.com/JuntinLin/bom-owl-sub002/pkg/security"
)

// Duration wraps time.Duration so YAML accepts "30m"-style strings as well
// as integer nanoseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler. Bare integers also decode as
// strings, so the node tag decides which form we are looking at.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("duration must be a string like '30m' or integer nanoseconds")
		}
		*d = Duration(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like '30m' or integer nanoseconds")
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the complete pipeline configuration.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	NATS       NATSConfig       `yaml:"nats"`
	Reasoner   ReasonerConfig   `yaml:"reasoner"`
	Batch      BatchConfig      `yaml:"batch"`
	Similarity SimilarityConfig `yaml:"similarity"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// SlogLevel maps the configured level onto slog.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch l.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.WrapInvalid(errors.ErrInvalidConfig, "config", "SlogLevel",
			"unknown log level "+l.Level)
	}
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled  bool            `yaml:"enabled"`
	Port     int             `yaml:"port"`
	Path     string          `yaml:"path"`
	Security security.Config `yaml:"security"`
}

// NATSConfig configures the connection the reasoner gateway rides on.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// ReasonerConfig configures the reasoner gateway.
type ReasonerConfig struct {
	// Subject is the request/reply subject reasoner requests are sent on.
	Subject string `yaml:"subject"`
	// Ruleset names the rule profile the reasoner applies; it is echoed
	// back as the report's reasoner type.
	Ruleset string `yaml:"ruleset"`
	// Timeout bounds one reasoner round trip when the caller's context
	// carries no deadline.
	Timeout Duration    `yaml:"timeout"`
	Retry   RetryConfig `yaml:"retry"`
}

// RetryConfig configures backoff for transient transport failures.
type RetryConfig struct {
	MaxAttempts  int      `yaml:"max_attempts"`
	InitialDelay Duration `yaml:"initial_delay"`
	MaxDelay     Duration `yaml:"max_delay"`
	Multiplier   float64  `yaml:"multiplier"`
	Jitter       bool     `yaml:"jitter"`
}

// ToRetryConfig converts to the retry package's configuration.
func (r RetryConfig) ToRetryConfig() retry.Config {
	return retry.Config{
		MaxAttempts:  r.MaxAttempts,
		InitialDelay: r.InitialDelay.Std(),
		MaxDelay:     r.MaxDelay.Std(),
		Multiplier:   r.Multiplier,
		AddJitter:    r.Jitter,
	}
}

// BatchConfig configures parallel BOM conversion.
type BatchConfig struct {
	// Workers is the conversion worker count; zero selects the pool default.
	Workers int `yaml:"workers"`
	// QueueSize is the pending-record queue capacity; zero selects the
	// pool default.
	QueueSize int `yaml:"queue_size"`
}

// PoolConfig describes one similarity cache pool.
type PoolConfig struct {
	Enabled         bool     `yaml:"enabled"`
	MaxSize         int      `yaml:"max_size"`
	TTL             Duration `yaml:"ttl"`
	CleanupInterval Duration `yaml:"cleanup_interval"`
}

// ToCacheConfig converts to the cache package's configuration.
func (p PoolConfig) ToCacheConfig() cache.Config {
	return cache.Config{
		Enabled:         p.Enabled,
		MaxSize:         p.MaxSize,
		TTL:             p.TTL.Std(),
		CleanupInterval: p.CleanupInterval.Std(),
	}
}

// SimilarityConfig configures the similarity score and result pools.
type SimilarityConfig struct {
	Scores  PoolConfig `yaml:"scores"`
	Results PoolConfig `yaml:"results"`
	// MaxResults bounds how many matches a search returns.
	MaxResults int `yaml:"max_results"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
			Path:    "/metrics",
		},
		NATS: NATSConfig{
			URL: "nats://localhost:4222",
		},
		Reasoner: ReasonerConfig{
			Subject: "reasoner.requests",
			Ruleset: "owl-mini",
			Timeout: Duration(30 * time.Second),
			Retry: RetryConfig{
				MaxAttempts:  3,
				InitialDelay: Duration(100 * time.Millisecond),
				MaxDelay:     Duration(5 * time.Second),
				Multiplier:   2.0,
				Jitter:       true,
			},
		},
		Batch: BatchConfig{
			Workers:   0,
			QueueSize: 0,
		},
		Similarity: SimilarityConfig{
			Scores: PoolConfig{
				Enabled:         true,
				MaxSize:         10000,
				TTL:             Duration(time.Hour),
				CleanupInterval: Duration(5 * time.Minute),
			},
			Results: PoolConfig{
				Enabled:         true,
				MaxSize:         100,
				TTL:             Duration(30 * time.Minute),
				CleanupInterval: Duration(5 * time.Minute),
			},
			MaxResults: 10,
		},
	}
}

// Parse unmarshals YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "config", "Parse", "parsing YAML")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "config", "Load", "reading "+path)
	}
	return Parse(data)
}

// Validate checks the configuration for values the pipeline cannot run
// with.
func (c *Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Log.Format != "" && c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate",
			"log.format must be text or json, got "+c.Log.Format)
	}

	if c.Metrics.Enabled {
		if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
			return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate",
				fmt.Sprintf("metrics.port out of range: %d", c.Metrics.Port))
		}
	}

	if c.NATS.URL == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "config", "Validate",
			"nats.url is required")
	}
	if c.Reasoner.Subject == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "config", "Validate",
			"reasoner.subject is required")
	}
	if c.Reasoner.Timeout.Std() <= 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate",
			"reasoner.timeout must be positive")
	}
	if c.Reasoner.Retry.MaxAttempts < 1 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate",
			"reasoner.retry.max_attempts must be at least 1")
	}

	if c.Batch.Workers < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate",
			"batch.workers must not be negative")
	}
	if c.Batch.QueueSize < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate",
			"batch.queue_size must not be negative")
	}

	if err := c.Similarity.Scores.ToCacheConfig().Validate(); err != nil {
		return errors.WrapInvalid(err, "config", "Validate", "similarity.scores")
	}
	if err := c.Similarity.Results.ToCacheConfig().Validate(); err != nil {
		return errors.WrapInvalid(err, "config", "Validate", "similarity.results")
	}
	if c.Similarity.MaxResults < 1 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate",
			"similarity.max_results must be at least 1")
	}

	return nil
}
