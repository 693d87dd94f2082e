// Package worker provides a generic, bounded worker pool for concurrent
// task processing.
//
// The pool runs a fixed number of goroutines that drain a buffered channel
// of work items. Submit is non-blocking: when the queue is full it returns
// ErrQueueFull instead of waiting, so callers get an immediate backpressure
// signal. Batch ontology conversion uses a pool to fan material and BOM
// records out across CPU cores:
//
//	pool := worker.NewPool[convert.MaterialRecord](
//	    8,    // workers
//	    500,  // queue size
//	    func(ctx context.Context, rec convert.MaterialRecord) error {
//	        _, err := converter.ConvertMaterial(ctx, rec)
//	        return err
//	    },
//	)
//
//	if err := pool.Start(ctx); err != nil {
//	    return err
//	}
//	defer pool.Stop(10 * time.Second)
//
//	for _, rec := range records {
//	    if err := pool.Submit(rec); err != nil {
//	        if errors.Is(err, worker.ErrQueueFull) {
//	            // back off or count the drop
//	        }
//	    }
//	}
//
// # Observability
//
// Statistics are always tracked with atomic counters and exposed through
// Stats(). Prometheus metrics are opt-in:
//
//	pool := worker.NewPool[convert.MaterialRecord](
//	    8, 500, process,
//	    worker.WithMetricsRegistry[convert.MaterialRecord](registry, "batch_convert"),
//	)
//
// registers bomowl_batch_convert_queue_depth, _utilization,
// _submitted_total, _processed_total, _failed_total, _dropped_total and
// _processing_duration_seconds (histogram labelled by status).
//
// # Lifecycle
//
// Start may be called once; the context it receives is handed to every
// processor invocation and cancelling it stops the workers. Stop closes the
// queue, lets workers drain the remaining items, and returns ErrStopTimeout
// if they are still busy when the deadline passes. Per-item timeouts belong
// in the processor function.
//
// Worker count is fixed at construction. There is no dynamic scaling and no
// priority ordering; items are processed FIFO.
package worker
