package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JuntinLin/bom-owl-sub002/metric"
)

// conversionTask stands in for the record types the batch converter feeds
// through a pool.
type conversionTask struct {
	code  string
	delay time.Duration
	fail  bool
}

func noopProcessor(ctx context.Context, _ conversionTask) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func TestNewPool(t *testing.T) {
	pool := NewPool(5, 100, noopProcessor)
	if pool.workers != 5 {
		t.Errorf("expected 5 workers, got %d", pool.workers)
	}
	if pool.queueSize != 100 {
		t.Errorf("expected queue size 100, got %d", pool.queueSize)
	}

	// Non-positive values fall back to defaults
	pool = NewPool(0, 100, noopProcessor)
	if pool.workers != DefaultWorkers {
		t.Errorf("expected default %d workers, got %d", DefaultWorkers, pool.workers)
	}

	pool = NewPool(5, 0, noopProcessor)
	if pool.queueSize != DefaultQueueSize {
		t.Errorf("expected default queue size %d, got %d", DefaultQueueSize, pool.queueSize)
	}
}

func TestNewPool_NilProcessor(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil processor")
		}
	}()
	NewPool[conversionTask](5, 100, nil)
}

func TestPool_StartStop(t *testing.T) {
	var processedCount int64
	processor := func(_ context.Context, _ conversionTask) error {
		atomic.AddInt64(&processedCount, 1)
		return nil
	}

	pool := NewPool(2, 10, processor)

	ctx := context.Background()
	if err := pool.Start(ctx); err != nil {
		t.Fatalf("failed to start pool: %v", err)
	}

	if err := pool.Start(ctx); err == nil {
		t.Error("expected error when starting pool twice")
	}

	for i := 0; i < 5; i++ {
		if err := pool.Submit(conversionTask{code: "3GC2008001000YB"}); err != nil {
			t.Errorf("failed to submit work %d: %v", i, err)
		}
	}

	time.Sleep(100 * time.Millisecond)

	if err := pool.Stop(5 * time.Second); err != nil {
		t.Fatalf("failed to stop pool: %v", err)
	}

	if processed := atomic.LoadInt64(&processedCount); processed != 5 {
		t.Errorf("expected 5 processed items, got %d", processed)
	}

	if err := pool.Submit(conversionTask{}); err == nil {
		t.Error("expected error when submitting to stopped pool")
	}
}

func TestPool_QueueFull(t *testing.T) {
	processor := func(_ context.Context, task conversionTask) error {
		time.Sleep(task.delay)
		return nil
	}

	pool := NewPool(1, 2, processor)

	ctx := context.Background()
	if err := pool.Start(ctx); err != nil {
		t.Fatalf("failed to start pool: %v", err)
	}
	defer pool.Stop(5 * time.Second)

	submitted := 0
	dropped := 0

	for i := 0; i < 5; i++ {
		err := pool.Submit(conversionTask{delay: 200 * time.Millisecond})
		if err != nil {
			dropped++
		} else {
			submitted++
		}
	}

	if dropped == 0 {
		t.Error("expected some work to be dropped due to full queue")
	}
	if submitted == 0 {
		t.Error("expected some work to be submitted successfully")
	}

	if stats := pool.Stats(); stats.Dropped == 0 {
		t.Error("stats should show dropped work items")
	}
}

func TestPool_ProcessingErrors(t *testing.T) {
	var successCount, errorCount int64

	processor := func(_ context.Context, task conversionTask) error {
		if task.fail {
			atomic.AddInt64(&errorCount, 1)
			return errors.New("simulated conversion failure")
		}
		atomic.AddInt64(&successCount, 1)
		return nil
	}

	pool := NewPool(2, 10, processor)

	ctx := context.Background()
	if err := pool.Start(ctx); err != nil {
		t.Fatalf("failed to start pool: %v", err)
	}
	defer pool.Stop(5 * time.Second)

	for i := 0; i < 10; i++ {
		task := conversionTask{fail: i%2 == 0}
		if err := pool.Submit(task); err != nil {
			t.Errorf("failed to submit work %d: %v", i, err)
		}
	}

	time.Sleep(100 * time.Millisecond)

	if success := atomic.LoadInt64(&successCount); success != 5 {
		t.Errorf("expected 5 successful processes, got %d", success)
	}
	if errCount := atomic.LoadInt64(&errorCount); errCount != 5 {
		t.Errorf("expected 5 failed processes, got %d", errCount)
	}

	stats := pool.Stats()
	if stats.Processed != 10 {
		t.Errorf("expected 10 processed items in stats, got %d", stats.Processed)
	}
	if stats.Failed != 5 {
		t.Errorf("expected 5 failed items in stats, got %d", stats.Failed)
	}
}

func TestPool_ContextCancellation(t *testing.T) {
	var processedCount int64

	processor := func(ctx context.Context, task conversionTask) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			time.Sleep(task.delay)
			atomic.AddInt64(&processedCount, 1)
			return nil
		}
	}

	pool := NewPool(2, 10, processor)

	ctx, cancel := context.WithCancel(context.Background())
	if err := pool.Start(ctx); err != nil {
		t.Fatalf("failed to start pool: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := pool.Submit(conversionTask{delay: 50 * time.Millisecond}); err != nil {
			t.Errorf("failed to submit work %d: %v", i, err)
		}
	}

	time.Sleep(10 * time.Millisecond)
	cancel()

	if err := pool.Stop(5 * time.Second); err != nil {
		t.Fatalf("failed to stop pool: %v", err)
	}

	t.Logf("processed %d items before cancellation", atomic.LoadInt64(&processedCount))
}

func TestPool_ConcurrentSubmissions(t *testing.T) {
	var processedCount int64

	processor := func(_ context.Context, _ conversionTask) error {
		atomic.AddInt64(&processedCount, 1)
		return nil
	}

	pool := NewPool(5, 100, processor)

	ctx := context.Background()
	if err := pool.Start(ctx); err != nil {
		t.Fatalf("failed to start pool: %v", err)
	}
	defer pool.Stop(5 * time.Second)

	var wg sync.WaitGroup
	submitters := 10
	workPerSubmitter := 10

	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < workPerSubmitter; j++ {
				if err := pool.Submit(conversionTask{}); err != nil {
					t.Errorf("failed to submit work: %v", err)
				}
			}
		}()
	}

	wg.Wait()

	time.Sleep(200 * time.Millisecond)

	processed := atomic.LoadInt64(&processedCount)
	expected := int64(submitters * workPerSubmitter)
	if processed != expected {
		t.Errorf("expected %d processed items, got %d", expected, processed)
	}
}

func TestPool_Stats(t *testing.T) {
	processor := func(ctx context.Context, _ conversionTask) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
			return nil
		}
	}

	pool := NewPool(3, 50, processor)

	stats := pool.Stats()
	if stats.Workers != 3 {
		t.Errorf("expected 3 workers in stats, got %d", stats.Workers)
	}
	if stats.QueueSize != 50 {
		t.Errorf("expected queue size 50 in stats, got %d", stats.QueueSize)
	}
	if stats.Submitted != 0 {
		t.Errorf("expected 0 submitted initially, got %d", stats.Submitted)
	}

	ctx := context.Background()
	if err := pool.Start(ctx); err != nil {
		t.Fatalf("failed to start pool: %v", err)
	}
	defer pool.Stop(5 * time.Second)

	for i := 0; i < 10; i++ {
		_ = pool.Submit(conversionTask{})
	}

	time.Sleep(50 * time.Millisecond)
	stats = pool.Stats()

	if stats.Submitted != 10 {
		t.Errorf("expected 10 submitted in stats, got %d", stats.Submitted)
	}
	if stats.Processed <= 0 || stats.Processed > stats.Submitted {
		t.Errorf("invalid processed count in stats: %d (submitted: %d)", stats.Processed, stats.Submitted)
	}
}

func TestPool_MetricsRegistration(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	pool := NewPool(2, 10, noopProcessor,
		WithMetricsRegistry[conversionTask](registry, "batch_convert"))

	ctx := context.Background()
	if err := pool.Start(ctx); err != nil {
		t.Fatalf("failed to start pool: %v", err)
	}
	defer pool.Stop(5 * time.Second)

	for i := 0; i < 3; i++ {
		if err := pool.Submit(conversionTask{}); err != nil {
			t.Fatalf("failed to submit work: %v", err)
		}
	}

	time.Sleep(50 * time.Millisecond)

	families, err := registry.PrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	found := make(map[string]bool)
	for _, mf := range families {
		found[mf.GetName()] = true
	}

	for _, name := range []string{
		"bomowl_batch_convert_queue_depth",
		"bomowl_batch_convert_utilization",
		"bomowl_batch_convert_submitted_total",
		"bomowl_batch_convert_processed_total",
		"bomowl_batch_convert_failed_total",
		"bomowl_batch_convert_dropped_total",
		"bomowl_batch_convert_processing_duration_seconds",
	} {
		if !found[name] {
			t.Errorf("expected metric %s to be registered", name)
		}
	}
}
