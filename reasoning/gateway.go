package reasoning

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/metric"
	"github.com/JuntinLin/bom-owl-sub002/ontology"
	"github.com/JuntinLin/bom-owl-sub002/pkg/retry"
	"github.com/JuntinLin/bom-owl-sub002/pkg/timestamp"
)

// Reasoner is the core-facing view of a reasoning backend. Every method
// returns a Report, including on transport failure or timeout; the error
// surfaces inside the report rather than as a raw Go error.
type Reasoner interface {
	Validate(ctx context.Context, masterCode string, graph, schema []ontology.Triple) Report
	Infer(ctx context.Context, masterCode string, graph, schema []ontology.Triple) Report
	Hierarchy(ctx context.Context, masterCode string, graph, schema []ontology.Triple) Report
}

// Requester sends a request payload and waits for a single reply.
// natsclient.Client satisfies it.
type Requester interface {
	Request(ctx context.Context, subject string, data []byte) ([]byte, error)
}

// Reasoner operations carried in the request envelope.
const (
	OpValidate  = "validate"
	OpInfer     = "infer"
	OpHierarchy = "hierarchy"
)

const (
	defaultSubject = "reasoner.requests"
	defaultRuleset = "owl-mini"
	defaultTimeout = 30 * time.Second
)

// request is the wire envelope sent to the reasoner.
type request struct {
	RequestID  string            `json:"requestId"`
	Operation  string            `json:"operation"`
	MasterCode string            `json:"masterCode"`
	Ruleset    string            `json:"ruleset"`
	Graph      []ontology.Triple `json:"graph"`
	Schema     []ontology.Triple `json:"schema"`
}

// Gateway forwards graphs to an external reasoner over a request/reply
// transport and extracts the replies into Reports.
type Gateway struct {
	transport Requester
	subject   string
	ruleset   string
	timeout   time.Duration
	retry     retry.Config
	logger    *slog.Logger
	metrics   *metric.Metrics
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway) error

// WithSubject sets the transport subject reasoner requests are published on.
func WithSubject(subject string) GatewayOption {
	return func(g *Gateway) error {
		if subject == "" {
			return errors.WrapInvalid(errors.ErrMissingConfig, "Gateway", "WithSubject", "subject must not be empty")
		}
		g.subject = subject
		return nil
	}
}

// WithRuleset sets the ruleset name requested from the reasoner. The same
// name is echoed back as the report's reasoner type.
func WithRuleset(ruleset string) GatewayOption {
	return func(g *Gateway) error {
		if ruleset == "" {
			return errors.WrapInvalid(errors.ErrMissingConfig, "Gateway", "WithRuleset", "ruleset must not be empty")
		}
		g.ruleset = ruleset
		return nil
	}
}

// WithTimeout sets the per-request deadline applied when the caller's
// context carries none.
func WithTimeout(timeout time.Duration) GatewayOption {
	return func(g *Gateway) error {
		if timeout <= 0 {
			return errors.WrapInvalid(errors.ErrInvalidConfig, "Gateway", "WithTimeout", "timeout must be positive")
		}
		g.timeout = timeout
		return nil
	}
}

// WithRetry overrides the retry policy for transient transport failures.
func WithRetry(cfg retry.Config) GatewayOption {
	return func(g *Gateway) error {
		if cfg.MaxAttempts < 1 {
			return errors.WrapInvalid(errors.ErrInvalidConfig, "Gateway", "WithRetry", "retry needs at least one attempt")
		}
		g.retry = cfg
		return nil
	}
}

// WithGatewayLogger sets the logger. A nil logger falls back to the default.
func WithGatewayLogger(logger *slog.Logger) GatewayOption {
	return func(g *Gateway) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// WithGatewayMetrics attaches metrics collection.
func WithGatewayMetrics(metrics *metric.Metrics) GatewayOption {
	return func(g *Gateway) error {
		g.metrics = metrics
		return nil
	}
}

// NewGateway builds a Gateway over the given transport.
func NewGateway(transport Requester, opts ...GatewayOption) (*Gateway, error) {
	if transport == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "Gateway", "NewGateway", "transport must not be nil")
	}

	g := &Gateway{
		transport: transport,
		subject:   defaultSubject,
		ruleset:   defaultRuleset,
		timeout:   defaultTimeout,
		retry:     errors.DefaultRetryConfig().ToRetryConfig(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Validate asks the reasoner to consistency-check the graph against the schema.
func (g *Gateway) Validate(ctx context.Context, masterCode string, graph, schema []ontology.Triple) Report {
	return g.request(ctx, OpValidate, masterCode, graph, schema)
}

// Infer asks the reasoner for the triples entailed by the graph and schema.
func (g *Gateway) Infer(ctx context.Context, masterCode string, graph, schema []ontology.Triple) Report {
	return g.request(ctx, OpInfer, masterCode, graph, schema)
}

// Hierarchy asks the reasoner to materialize the BOM component hierarchy.
func (g *Gateway) Hierarchy(ctx context.Context, masterCode string, graph, schema []ontology.Triple) Report {
	return g.request(ctx, OpHierarchy, masterCode, graph, schema)
}

func (g *Gateway) request(ctx context.Context, operation, masterCode string, graph, schema []ontology.Triple) Report {
	requestID := uuid.NewString()
	start := time.Now()

	report, err := g.exchange(ctx, requestID, operation, masterCode, graph, schema)
	elapsed := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		if stderrors.Is(err, context.DeadlineExceeded) {
			status = "timeout"
		}
		g.logger.Error("Reasoner request failed",
			"operation", operation,
			"masterCode", masterCode,
			"requestId", requestID,
			"status", status,
			"elapsed", elapsed,
			"error", err)
		report = Extract(RawResult{Error: err.Error()}, masterCode, g.ruleset, elapsed)
	} else {
		report.Elapsed = elapsed
		g.logger.Debug("Reasoner request completed",
			"operation", operation,
			"masterCode", masterCode,
			"requestId", requestID,
			"valid", report.Valid,
			"elapsed", elapsed,
			"reasonedAt", timestamp.Format(report.ReasonedAt))
	}
	report.RequestID = requestID

	if g.metrics != nil {
		g.metrics.RecordReasonerRequest(status)
		g.metrics.RecordReasonerDuration(elapsed)
		g.metrics.RecordReasonerStatus(err == nil)
	}

	return report
}

// exchange runs the request/reply round trip with retries on transient
// transport failures. Decode failures are not retried; the reasoner already
// answered, just not in a shape we accept.
func (g *Gateway) exchange(ctx context.Context, requestID, operation, masterCode string, graph, schema []ontology.Triple) (Report, error) {
	payload, err := json.Marshal(request{
		RequestID:  requestID,
		Operation:  operation,
		MasterCode: masterCode,
		Ruleset:    g.ruleset,
		Graph:      graph,
		Schema:     schema,
	})
	if err != nil {
		return Report{}, errors.WrapInvalid(err, "Gateway", "exchange", "encode reasoner request")
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	attempts := 0
	raw, err := retry.DoWithResult(ctx, g.retry, func() (RawResult, error) {
		attempts++
		if attempts > 1 && g.metrics != nil {
			g.metrics.RecordReasonerRetry()
		}

		reply, reqErr := g.transport.Request(ctx, g.subject, payload)
		if reqErr != nil {
			if !errors.IsTransient(reqErr) {
				return RawResult{}, retry.NonRetryable(reqErr)
			}
			return RawResult{}, reqErr
		}

		decoded, decErr := DecodeResult(reply)
		if decErr != nil {
			return RawResult{}, retry.NonRetryable(decErr)
		}
		return decoded, nil
	})
	if err != nil {
		return Report{}, err
	}

	return Extract(raw, masterCode, g.ruleset, 0), nil
}
