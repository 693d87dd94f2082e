package worker

import "errors"

// Sentinel errors returned by pool operations. They are never wrapped, so
// callers can compare with errors.Is or plain equality.
var (
	// ErrPoolNotStarted is returned by Submit before Start has run.
	ErrPoolNotStarted = errors.New("worker pool not started")

	// ErrPoolStopped is returned by Submit after Stop has completed.
	ErrPoolStopped = errors.New("worker pool stopped")

	// ErrPoolAlreadyStarted is returned by a second call to Start.
	ErrPoolAlreadyStarted = errors.New("worker pool already started")

	// ErrQueueFull is the backpressure signal from a non-blocking Submit.
	ErrQueueFull = errors.New("worker pool queue full")

	// ErrNilProcessor is the panic value when NewPool gets a nil processor.
	ErrNilProcessor = errors.New("processor function cannot be nil")

	// ErrStopTimeout means workers were still busy when the Stop deadline hit.
	ErrStopTimeout = errors.New("timeout waiting for workers to stop")
)
