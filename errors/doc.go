// Package errors provides standardized error handling patterns for the BOM
// ontology core.
//
// # Overview
//
// The package implements a three-class error classification system: Transient
// (temporary, retryable), Invalid (bad input, non-retryable), and Fatal
// (unrecoverable, stop processing).
//
// The classification drives the error policy of the whole module:
//
//   - Malformed BOM input is Invalid and recovered locally (the record is
//     skipped and logged, conversion of the remaining records continues).
//   - A broken schema reference (an axiom naming an undeclared class or
//     property) is Fatal; schema construction fails fast and no partial
//     schema is ever published.
//   - Reasoner connectivity failures are Transient and retried within the
//     caller's deadline; exhaustion is reported as an error result, never
//     as a panic.
//   - A cache miss is not an error at all.
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Gateway", "Validate", "reasoner request")
//	errors.WrapInvalid(err, "Converter", "ConvertMaterial", "item code")
//	errors.WrapFatal(err, "Builder", "link", "superclass reference")
//
// The generic Wrap() preserves the original error's classification through
// the chain; errors.Is, errors.As and Unwrap all behave as the standard
// library defines them.
//
// # Context Cancellation
//
// Context errors (context.DeadlineExceeded, context.Canceled) classify as
// Transient, so context-based reasoner timeouts and network timeouts are
// handled by the same retry policy.
//
// # Retry Configuration
//
// RetryConfig carries classification-aware retry settings and converts to
// the pkg/retry Config via ToRetryConfig for use with retry.Do.
package errors
