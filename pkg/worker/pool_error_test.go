package worker

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestPool_SentinelErrors verifies each lifecycle error is returned where
// documented and can be matched with errors.Is.
func TestPool_SentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			name: "ErrPoolNotStarted when submitting before start",
			test: func(t *testing.T) {
				pool := NewPool(2, 10, noopProcessor)

				err := pool.Submit(conversionTask{})
				if !errors.Is(err, ErrPoolNotStarted) {
					t.Errorf("expected ErrPoolNotStarted, got %v", err)
				}
			},
		},
		{
			name: "ErrPoolAlreadyStarted when starting twice",
			test: func(t *testing.T) {
				pool := NewPool(2, 10, noopProcessor)

				ctx := context.Background()
				if err := pool.Start(ctx); err != nil {
					t.Fatalf("failed to start pool: %v", err)
				}
				defer pool.Stop(5 * time.Second)

				if err := pool.Start(ctx); !errors.Is(err, ErrPoolAlreadyStarted) {
					t.Errorf("expected ErrPoolAlreadyStarted, got %v", err)
				}
			},
		},
		{
			name: "ErrPoolStopped when submitting after stop",
			test: func(t *testing.T) {
				pool := NewPool(2, 10, noopProcessor)

				ctx := context.Background()
				if err := pool.Start(ctx); err != nil {
					t.Fatalf("failed to start pool: %v", err)
				}

				if err := pool.Stop(5 * time.Second); err != nil {
					t.Fatalf("failed to stop pool: %v", err)
				}

				if err := pool.Submit(conversionTask{}); !errors.Is(err, ErrPoolStopped) {
					t.Errorf("expected ErrPoolStopped, got %v", err)
				}
			},
		},
		{
			name: "ErrQueueFull when queue is at capacity",
			test: func(t *testing.T) {
				// Processor blocks so the queue backs up
				processor := func(_ context.Context, _ conversionTask) error {
					time.Sleep(1 * time.Second)
					return nil
				}

				pool := NewPool(1, 2, processor)

				ctx := context.Background()
				if err := pool.Start(ctx); err != nil {
					t.Fatalf("failed to start pool: %v", err)
				}
				defer pool.Stop(5 * time.Second)

				var queueFullErr error
				for i := 0; i < 10; i++ {
					if err := pool.Submit(conversionTask{}); err != nil {
						queueFullErr = err
						break
					}
				}

				if !errors.Is(queueFullErr, ErrQueueFull) {
					t.Errorf("expected ErrQueueFull, got %v", queueFullErr)
				}
			},
		},
		{
			name: "ErrStopTimeout when workers do not finish in time",
			test: func(t *testing.T) {
				processor := func(ctx context.Context, _ conversionTask) error {
					select {
					case <-time.After(10 * time.Second):
						return nil
					case <-ctx.Done():
						return ctx.Err()
					}
				}

				pool := NewPool(1, 10, processor)

				ctx := context.Background()
				if err := pool.Start(ctx); err != nil {
					t.Fatalf("failed to start pool: %v", err)
				}

				_ = pool.Submit(conversionTask{})

				// Let the worker pick the item up before stopping
				time.Sleep(10 * time.Millisecond)

				if err := pool.Stop(50 * time.Millisecond); !errors.Is(err, ErrStopTimeout) {
					t.Errorf("expected ErrStopTimeout, got %v", err)
				}
			},
		},
		{
			name: "ErrNilProcessor panic from NewPool",
			test: func(t *testing.T) {
				defer func() {
					r := recover()
					if r == nil {
						t.Error("expected panic for nil processor")
						return
					}
					if !errors.Is(r.(error), ErrNilProcessor) {
						t.Errorf("expected panic with ErrNilProcessor, got %v", r)
					}
				}()
				NewPool[conversionTask](5, 100, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.test(t)
		})
	}
}

// TestPool_ErrorsAreNotWrapped verifies sentinel errors come back unwrapped.
func TestPool_ErrorsAreNotWrapped(t *testing.T) {
	pool := NewPool(2, 10, noopProcessor)

	err := pool.Submit(conversionTask{})

	if !errors.Is(err, ErrPoolNotStarted) {
		t.Errorf("errors.Is failed for ErrPoolNotStarted: %v", err)
	}
	if err != ErrPoolNotStarted {
		t.Errorf("expected exact sentinel ErrPoolNotStarted, got %v", err)
	}
}
