package convert

import (
	"context"
	"log/slog"
	"time"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/metric"
	"github.com/JuntinLin/bom-owl-sub002/pkg/worker"
)

// Batch converts BOM records in parallel, one record per worker task.
// Records carry no ordering guarantee between each other; the graph and the
// node index absorb concurrent writes.
type Batch struct {
	converter *Converter
	index     *NodeIndex
	pool      *worker.Pool[BomRecord]
	logger    *slog.Logger

	workers   int
	queueSize int
	registry  *metric.MetricsRegistry
}

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithBatchWorkers sets the worker count. Zero or negative selects the pool
// default.
func WithBatchWorkers(n int) BatchOption {
	return func(b *Batch) {
		b.workers = n
	}
}

// WithBatchQueueSize sets the pending-record queue capacity. Zero or
// negative selects the pool default.
func WithBatchQueueSize(n int) BatchOption {
	return func(b *Batch) {
		b.queueSize = n
	}
}

// WithBatchLogger sets the logger for per-record failures.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *Batch) {
		b.logger = logger
	}
}

// WithBatchMetricsRegistry exposes the pool's queue and throughput metrics
// under the batch_convert subsystem.
func WithBatchMetricsRegistry(registry *metric.MetricsRegistry) BatchOption {
	return func(b *Batch) {
		b.registry = registry
	}
}

// NewBatch creates a batch converter over an existing Converter and index.
func NewBatch(converter *Converter, index *NodeIndex, opts ...BatchOption) (*Batch, error) {
	if converter == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "batch", "NewBatch", "converter")
	}
	if index == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "batch", "NewBatch", "node index")
	}

	b := &Batch{
		converter: converter,
		index:     index,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	var poolOpts []worker.Option[BomRecord]
	if b.registry != nil {
		poolOpts = append(poolOpts, worker.WithMetricsRegistry[BomRecord](b.registry, "batch_convert"))
	}
	b.pool = worker.NewPool(b.workers, b.queueSize, b.process, poolOpts...)

	return b, nil
}

// Start launches the workers. The context bounds the whole batch run;
// cancelling it abandons queued records.
func (b *Batch) Start(ctx context.Context) error {
	return b.pool.Start(ctx)
}

// Submit queues one BOM record for conversion. Returns worker.ErrQueueFull
// when the queue is saturated; the caller decides whether to retry or shed.
func (b *Batch) Submit(rec BomRecord) error {
	return b.pool.Submit(rec)
}

// Stop drains the queue and waits up to timeout for in-flight conversions.
func (b *Batch) Stop(timeout time.Duration) error {
	return b.pool.Stop(timeout)
}

// Stats returns the pool counters.
func (b *Batch) Stats() worker.PoolStats {
	return b.pool.Stats()
}

func (b *Batch) process(ctx context.Context, rec BomRecord) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapTransient(err, "batch", "process", "conversion cancelled")
	}

	if err := b.converter.ConvertBomStructure(rec.Master, rec.Components, b.index); err != nil {
		b.logger.Error("BOM conversion failed",
			"master", rec.Master.Code,
			"components", len(rec.Components),
			"error", err)
		return err
	}

	b.logger.Debug("BOM converted",
		"master", rec.Master.Code,
		"components", len(rec.Components))
	return nil
}
