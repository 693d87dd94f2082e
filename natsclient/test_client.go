// Testcontainers-based NATS infrastructure for integration tests.
package natsclient

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestClient provides a containerized NATS server plus a connected Client
type TestClient struct {
	container testcontainers.Container
	Client    *Client
	URL       string
	cleanup   func()
}

// testConfig holds configuration for test client
type testConfig struct {
	natsVersion  string
	timeout      time.Duration
	startTimeout time.Duration
}

// TestOption for configuring test client
type TestOption func(*testConfig)

// WithNATSVersion specifies a specific NATS server version to use
func WithNATSVersion(version string) TestOption {
	return func(cfg *testConfig) {
		cfg.natsVersion = version
	}
}

// WithTestTimeout sets the connection timeout for test client
func WithTestTimeout(timeout time.Duration) TestOption {
	return func(cfg *testConfig) {
		cfg.timeout = timeout
	}
}

// WithStartTimeout sets the container startup timeout
func WithStartTimeout(timeout time.Duration) TestOption {
	return func(cfg *testConfig) {
		cfg.startTimeout = timeout
	}
}

// NewSharedTestClient creates a NATS test container for use in TestMain.
// Unlike NewTestClient, this doesn't require testing.T and returns errors.
func NewSharedTestClient(opts ...TestOption) (*TestClient, error) {
	cfg := defaultTestConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	ctx := context.Background()

	container, url, err := startNATSContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := connectTestClient(ctx, url, cfg)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &TestClient{
		container: container,
		Client:    client,
		URL:       url,
		cleanup: func() {
			_ = client.Close(context.Background())
			_ = container.Terminate(context.Background())
		},
	}, nil
}

// NewTestClient creates a new NATS test container.
// Accepts testing.TB so it works with both *testing.T and *testing.B.
func NewTestClient(t testing.TB, opts ...TestOption) *TestClient {
	t.Helper()

	testClient, err := NewSharedTestClient(opts...)
	if err != nil {
		t.Fatalf("failed to start test NATS: %v", err)
	}
	return testClient
}

// Close shuts down the client and terminates the container
func (tc *TestClient) Close() {
	if tc.cleanup != nil {
		tc.cleanup()
	}
}

func defaultTestConfig() *testConfig {
	return &testConfig{
		natsVersion:  "2.11.7-alpine",
		timeout:      5 * time.Second,
		startTimeout: 30 * time.Second,
	}
}

func startNATSContainer(ctx context.Context, cfg *testConfig) (testcontainers.Container, string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "nats:" + cfg.natsVersion,
		ExposedPorts: []string{"4222/tcp", "8222/tcp"},
		Cmd:          []string{"--port", "4222", "--http_port", "8222"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("4222/tcp"),
			wait.ForHTTP("/").WithPort("8222/tcp").WithStartupTimeout(cfg.startTimeout),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to start NATS container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "4222")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", fmt.Errorf("failed to get mapped port: %w", err)
	}

	return container, fmt.Sprintf("nats://%s:%s", host, port.Port()), nil
}

func connectTestClient(ctx context.Context, url string, cfg *testConfig) (*Client, error) {
	client, err := NewClient(url,
		WithTimeout(cfg.timeout),
		WithMaxReconnects(0),  // No reconnects in tests
		WithHealthInterval(0), // Disable health monitoring
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS client: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	if err := client.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	if err := client.WaitForConnection(connectCtx); err != nil {
		_ = client.Close(ctx)
		return nil, fmt.Errorf("NATS connection not ready: %w", err)
	}

	return client, nil
}
