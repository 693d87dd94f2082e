// Package retry provides simple exponential backoff retry logic for transient failures.
//
// # Overview
//
// This package offers a minimal retry mechanism with exponential backoff,
// used by the reasoner gateway to ride out transient connectivity failures
// within the caller's deadline.
//
// # Core Functions
//
//   - Do: Execute function with retry and exponential backoff
//   - DoWithResult: Execute function with retry, returns both result and error
//
// # Usage Examples
//
// Basic retry with defaults:
//
//	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
//	    return conn.Flush()
//	})
//
// Retry with result:
//
//	msg, err := retry.DoWithResult(ctx, cfg, func() (*nats.Msg, error) {
//	    return conn.RequestWithContext(ctx, subject, payload)
//	})
//
// Marking an error non-retryable stops the loop immediately:
//
//	if errors.IsInvalid(err) {
//	    return retry.NonRetryable(err)
//	}
//
// # Design Philosophy
//
// This package is intentionally minimal:
//
//   - No circuit breakers
//   - No metrics collection (instrument at the call site)
//   - No error classification (the caller decides what to retry)
//   - Just exponential backoff with jitter
//
// # Context Cancellation
//
// All retry operations respect context cancellation and stop immediately when
// the context is cancelled, either during operation execution or during the
// backoff delay.
package retry
