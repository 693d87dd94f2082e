package reasoning

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/ontology"
	"github.com/JuntinLin/bom-owl-sub002/pkg/retry"
)

// fakeTransport answers requests from a scripted handler and records what
// it was asked.
type fakeTransport struct {
	mu       sync.Mutex
	calls    int
	subjects []string
	payloads [][]byte
	handler  func(call int, data []byte) ([]byte, error)
}

func (f *fakeTransport) Request(ctx context.Context, subject string, data []byte) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.handler(call, data)
}

func (f *fakeTransport) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func fastRetry() retry.Config {
	return retry.Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func replyWith(t *testing.T, raw RawResult) func(int, []byte) ([]byte, error) {
	t.Helper()
	reply, err := json.Marshal(raw)
	require.NoError(t, err)
	return func(int, []byte) ([]byte, error) {
		return reply, nil
	}
}

func TestGateway_ValidReply(t *testing.T) {
	transport := &fakeTransport{handler: replyWith(t, RawResult{
		Triples: []RawTriple{{Subject: "s", Predicate: "p", Object: "o"}},
	})}
	gw, err := NewGateway(transport, WithSubject("reasoner.test"), WithRuleset("owl-mini"))
	require.NoError(t, err)

	graph := []ontology.Triple{{Subject: "s", Predicate: "p", Object: "o"}}
	report := gw.Infer(context.Background(), "1010-01", graph, nil)

	assert.True(t, report.Valid)
	assert.Equal(t, "1010-01", report.MasterCode)
	assert.Equal(t, "owl-mini", report.ReasonerType)
	assert.NotEmpty(t, report.RequestID)
	assert.Len(t, report.InferredTriples, 1)
	assert.Nil(t, report.Hierarchy)

	require.Equal(t, 1, transport.callCount())
	assert.Equal(t, "reasoner.test", transport.subjects[0])

	var req struct {
		RequestID  string            `json:"requestId"`
		Operation  string            `json:"operation"`
		MasterCode string            `json:"masterCode"`
		Ruleset    string            `json:"ruleset"`
		Graph      []ontology.Triple `json:"graph"`
	}
	require.NoError(t, json.Unmarshal(transport.payloads[0], &req))
	assert.Equal(t, report.RequestID, req.RequestID)
	assert.Equal(t, OpInfer, req.Operation)
	assert.Equal(t, "1010-01", req.MasterCode)
	assert.Equal(t, "owl-mini", req.Ruleset)
	assert.Equal(t, graph, req.Graph)
}

func TestGateway_OperationPerMethod(t *testing.T) {
	transport := &fakeTransport{handler: replyWith(t, RawResult{})}
	gw, err := NewGateway(transport)
	require.NoError(t, err)

	ctx := context.Background()
	gw.Validate(ctx, "m", nil, nil)
	gw.Infer(ctx, "m", nil, nil)
	gw.Hierarchy(ctx, "m", nil, nil)

	ops := make([]string, 0, 3)
	for _, payload := range transport.payloads {
		var req struct {
			Operation string `json:"operation"`
		}
		require.NoError(t, json.Unmarshal(payload, &req))
		ops = append(ops, req.Operation)
	}
	assert.Equal(t, []string{OpValidate, OpInfer, OpHierarchy}, ops)
}

func TestGateway_ErrorReplyBecomesInvalidReport(t *testing.T) {
	transport := &fakeTransport{handler: replyWith(t, RawResult{Error: "inconsistent ontology"})}
	gw, err := NewGateway(transport)
	require.NoError(t, err)

	report := gw.Validate(context.Background(), "1010-01", nil, nil)

	assert.False(t, report.Valid)
	assert.Equal(t, "inconsistent ontology", report.ErrorMessage)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.InferredTriples)
	assert.Nil(t, report.Hierarchy)
}

func TestGateway_TransientFailureRetriesThenReports(t *testing.T) {
	transport := &fakeTransport{handler: func(int, []byte) ([]byte, error) {
		return nil, errors.WrapTransient(errors.ErrReasonerUnavailable, "fake", "Request", "no responders")
	}}
	gw, err := NewGateway(transport, WithRetry(fastRetry()))
	require.NoError(t, err)

	report := gw.Infer(context.Background(), "1010-01", nil, nil)

	assert.False(t, report.Valid)
	assert.NotEmpty(t, report.ErrorMessage)
	assert.Equal(t, 3, transport.callCount())
}

func TestGateway_TransientFailureThenSuccess(t *testing.T) {
	reply, err := json.Marshal(RawResult{})
	require.NoError(t, err)
	transport := &fakeTransport{handler: func(call int, _ []byte) ([]byte, error) {
		if call == 1 {
			return nil, errors.WrapTransient(errors.ErrReasonerUnavailable, "fake", "Request", "connection dropped")
		}
		return reply, nil
	}}
	gw, err := NewGateway(transport, WithRetry(fastRetry()))
	require.NoError(t, err)

	report := gw.Infer(context.Background(), "1010-01", nil, nil)

	assert.True(t, report.Valid)
	assert.Equal(t, 2, transport.callCount())
}

func TestGateway_InvalidFailureNotRetried(t *testing.T) {
	transport := &fakeTransport{handler: func(int, []byte) ([]byte, error) {
		return nil, errors.WrapInvalid(errors.ErrInvalidData, "fake", "Request", "rejected payload")
	}}
	gw, err := NewGateway(transport, WithRetry(fastRetry()))
	require.NoError(t, err)

	report := gw.Infer(context.Background(), "1010-01", nil, nil)

	assert.False(t, report.Valid)
	assert.Equal(t, 1, transport.callCount())
}

func TestGateway_MalformedReplyNotRetried(t *testing.T) {
	transport := &fakeTransport{handler: func(int, []byte) ([]byte, error) {
		return []byte("not json"), nil
	}}
	gw, err := NewGateway(transport, WithRetry(fastRetry()))
	require.NoError(t, err)

	report := gw.Infer(context.Background(), "1010-01", nil, nil)

	assert.False(t, report.Valid)
	assert.NotEmpty(t, report.ErrorMessage)
	assert.Equal(t, 1, transport.callCount())
}

func TestGateway_TimeoutBecomesErrorReport(t *testing.T) {
	transport := &fakeTransport{handler: func(int, []byte) ([]byte, error) {
		time.Sleep(50 * time.Millisecond)
		return nil, context.DeadlineExceeded
	}}
	gw, err := NewGateway(transport, WithTimeout(10*time.Millisecond), WithRetry(fastRetry()))
	require.NoError(t, err)

	report := gw.Validate(context.Background(), "1010-01", nil, nil)

	assert.False(t, report.Valid)
	assert.NotEmpty(t, report.ErrorMessage)
	assert.Nil(t, report.Hierarchy)
}

func TestGateway_CallerDeadlineRespected(t *testing.T) {
	transport := &fakeTransport{handler: func(int, []byte) ([]byte, error) {
		return nil, context.DeadlineExceeded
	}}
	gw, err := NewGateway(transport, WithRetry(fastRetry()))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	report := gw.Infer(ctx, "1010-01", nil, nil)
	assert.False(t, report.Valid)
}

func TestNewGateway_RequiresTransport(t *testing.T) {
	_, err := NewGateway(nil)
	assert.Error(t, err)
}
