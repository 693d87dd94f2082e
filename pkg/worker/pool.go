package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/JuntinLin/bom-owl-sub002/metric"
)

// Defaults applied when NewPool receives non-positive sizing parameters.
const (
	DefaultWorkers   = 10
	DefaultQueueSize = 1000
)

// Pool is a fixed-size worker pool processing work items of type T.
type Pool[T any] struct {
	workers   int
	queueSize int
	processor func(context.Context, T) error

	workChan chan T
	metrics  *poolMetrics
	wg       *sync.WaitGroup

	lifecycleMu sync.Mutex
	started     bool
	stopped     bool

	// Statistics (atomic)
	submitted int64
	processed int64
	failed    int64
	dropped   int64

	metricsRegistry *metric.MetricsRegistry
	metricsPrefix   string
}

// poolMetrics holds the optional Prometheus instruments for a pool.
type poolMetrics struct {
	queueDepth     prometheus.Gauge
	utilization    prometheus.Gauge
	submitted      prometheus.Counter
	processed      prometheus.Counter
	failed         prometheus.Counter
	dropped        prometheus.Counter
	processingTime *prometheus.HistogramVec
}

// Option configures a Pool at construction time.
type Option[T any] func(*Pool[T])

// WithMetricsRegistry registers pool metrics under the given prefix.
// Metrics appear as bomowl_<prefix>_* once the pool is constructed.
func WithMetricsRegistry[T any](registry *metric.MetricsRegistry, prefix string) Option[T] {
	return func(p *Pool[T]) {
		p.metricsRegistry = registry
		p.metricsPrefix = prefix
	}
}

// NewPool creates a worker pool with the given sizing and processor.
// Non-positive workers or queueSize fall back to the package defaults.
// A nil processor is a programming error and panics.
func NewPool[T any](workers, queueSize int, processor func(context.Context, T) error, opts ...Option[T]) *Pool[T] {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if processor == nil {
		panic(ErrNilProcessor)
	}

	pool := &Pool[T]{
		workers:   workers,
		queueSize: queueSize,
		processor: processor,
		workChan:  make(chan T, queueSize),
	}

	for _, opt := range opts {
		opt(pool)
	}

	if pool.metricsRegistry != nil && pool.metricsPrefix != "" {
		pool.registerMetrics()
	}

	return pool
}

// registerMetrics creates the pool's Prometheus instruments and registers
// them with the shared registry under the configured prefix.
func (p *Pool[T]) registerMetrics() {
	gauge := func(name, help string) prometheus.Gauge {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bomowl",
			Subsystem: p.metricsPrefix,
			Name:      name,
			Help:      help,
		})
		_ = p.metricsRegistry.RegisterGauge(p.metricsPrefix, name, g)
		return g
	}
	counter := func(name, help string) prometheus.Counter {
		c := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bomowl",
			Subsystem: p.metricsPrefix,
			Name:      name,
			Help:      help,
		})
		_ = p.metricsRegistry.RegisterCounter(p.metricsPrefix, name, c)
		return c
	}

	processingTime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bomowl",
		Subsystem: p.metricsPrefix,
		Name:      "processing_duration_seconds",
		Help:      "Time spent processing work items",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"status"})
	_ = p.metricsRegistry.RegisterHistogramVec(p.metricsPrefix, "processing_duration_seconds", processingTime)

	p.metrics = &poolMetrics{
		queueDepth:     gauge("queue_depth", "Current worker pool queue depth"),
		utilization:    gauge("utilization", "Worker pool utilization (0-1)"),
		submitted:      counter("submitted_total", "Total work items submitted"),
		processed:      counter("processed_total", "Total work items processed"),
		failed:         counter("failed_total", "Total work items that failed processing"),
		dropped:        counter("dropped_total", "Total work items dropped due to full queue"),
		processingTime: processingTime,
	}
}

// Submit enqueues a work item without blocking. Returns ErrQueueFull when
// the queue is at capacity; the caller decides whether to retry or drop.
func (p *Pool[T]) Submit(work T) error {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	if !p.started {
		return ErrPoolNotStarted
	}
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.workChan <- work:
		atomic.AddInt64(&p.submitted, 1)
		if p.metrics != nil {
			p.metrics.submitted.Inc()
			p.metrics.queueDepth.Set(float64(len(p.workChan)))
		}
		return nil
	default:
		atomic.AddInt64(&p.dropped, 1)
		if p.metrics != nil {
			p.metrics.dropped.Inc()
		}
		return ErrQueueFull
	}
}

// Start launches the workers. The context is passed to every processor
// invocation; cancelling it stops the workers.
func (p *Pool[T]) Start(ctx context.Context) error {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	if p.started {
		return ErrPoolAlreadyStarted
	}

	p.wg = &sync.WaitGroup{}

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}

	if p.metrics != nil {
		p.wg.Add(1)
		go p.metricsUpdater(ctx)
	}

	p.started = true
	return nil
}

// Stop closes the queue and waits for workers to drain it. Returns
// ErrStopTimeout if they do not finish within the given timeout.
func (p *Pool[T]) Stop(timeout time.Duration) error {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	if !p.started || p.stopped {
		return nil
	}

	close(p.workChan)

	done := make(chan struct{})
	go func() {
		if p.wg != nil {
			p.wg.Wait()
		}
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		p.stopped = true
		return nil
	case <-timer.C:
		return ErrStopTimeout
	}
}

// Stats returns a snapshot of pool counters.
func (p *Pool[T]) Stats() PoolStats {
	return PoolStats{
		Workers:    p.workers,
		QueueSize:  p.queueSize,
		QueueDepth: len(p.workChan),
		Submitted:  atomic.LoadInt64(&p.submitted),
		Processed:  atomic.LoadInt64(&p.processed),
		Failed:     atomic.LoadInt64(&p.failed),
		Dropped:    atomic.LoadInt64(&p.dropped),
	}
}

// PoolStats is a point-in-time snapshot of pool activity.
type PoolStats struct {
	Workers    int   `json:"workers"`
	QueueSize  int   `json:"queue_size"`
	QueueDepth int   `json:"queue_depth"`
	Submitted  int64 `json:"submitted"`
	Processed  int64 `json:"processed"`
	Failed     int64 `json:"failed"`
	Dropped    int64 `json:"dropped"`
}

func (p *Pool[T]) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case work, ok := <-p.workChan:
			if !ok {
				return
			}

			start := time.Now()
			err := p.processor(ctx, work)
			duration := time.Since(start)

			atomic.AddInt64(&p.processed, 1)
			if err != nil {
				atomic.AddInt64(&p.failed, 1)
			}

			if p.metrics != nil {
				p.metrics.processed.Inc()
				status := "success"
				if err != nil {
					p.metrics.failed.Inc()
					status = "error"
				}
				p.metrics.processingTime.WithLabelValues(status).Observe(duration.Seconds())
			}
		}
	}
}

// metricsUpdater refreshes gauge metrics once per second.
func (p *Pool[T]) metricsUpdater(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			depth := float64(len(p.workChan))
			p.metrics.queueDepth.Set(depth)
			p.metrics.utilization.Set(depth / float64(p.queueSize))
		}
	}
}
