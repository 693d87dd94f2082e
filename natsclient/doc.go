// Package natsclient provides a NATS client with circuit breaker protection,
// automatic reconnection, and request/reply support for the reasoner gateway.
//
// The package wraps the standard NATS Go client with reliability features:
// a circuit breaker around repeated connection failures, exponential backoff
// while the circuit is open, and context propagation through every
// operation. The reasoning gateway is its primary consumer, but the client
// is general enough for any request/reply or pub/sub exchange.
//
// # Core Features
//
// Circuit Breaker Pattern: Prevents cascading failures by failing fast after
// a threshold of consecutive failures (default: 5). The circuit opens to
// stop further attempts, then re-probes the server after a backoff that
// doubles up to a configurable maximum.
//
// Connection Lifecycle Management: Handles connection states through the
// lifecycle: Disconnected → Connecting → Connected → Reconnecting →
// Connected, with configurable callbacks for state changes.
//
// Request/Reply: Request sends one message and waits for the reply under the
// caller's context deadline. Missing responders and deadline hits surface as
// transient errors so a retry policy can decide what to do.
//
// # Basic Usage
//
// Creating and connecting to NATS:
//
//	client, err := natsclient.NewClient("nats://localhost:4222")
//	if err != nil {
//	    return err
//	}
//
//	ctx := context.Background()
//	err = client.Connect(ctx)
//	if err != nil {
//	    return err
//	}
//	defer client.Close(ctx)
//
//	// Request/reply with a deadline
//	reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
//	defer cancel()
//	reply, err := client.Request(reqCtx, "reasoner.validate", payload)
//
//	// Publish a message
//	err = client.Publish(ctx, "subject.name", []byte("message data"))
//
//	// Subscribe to messages
//	err = client.Subscribe(ctx, "subject.*", func(msgCtx context.Context, data []byte) {
//	    fmt.Printf("Received: %s\n", string(data))
//	})
//
// # Advanced Configuration
//
// Creating a client with options:
//
//	client, err := natsclient.NewClient("nats://localhost:4222",
//	    natsclient.WithMaxReconnects(-1),  // Infinite reconnects
//	    natsclient.WithReconnectWait(2*time.Second),
//	    natsclient.WithCircuitBreakerThreshold(10),
//	    natsclient.WithDisconnectCallback(func(err error) {
//	        log.Printf("Disconnected: %v", err)
//	    }),
//	)
//
// # Circuit Breaker Pattern
//
// The circuit breaker protects against hammering an unreachable server:
//
//	err := client.Connect(ctx)
//	if errors.Is(err, natsclient.ErrCircuitOpen) {
//	    log.Println("Circuit breaker is open, backing off...")
//	    time.Sleep(client.Backoff())
//	    // Retry later
//	}
//
// # Authentication and Security
//
// Username/password or token authentication:
//
//	client, err := natsclient.NewClient(url,
//	    natsclient.WithCredentials("username", "password"),
//	)
//
// TLS from certificate files, or a prebuilt *tls.Config (see pkg/tlsutil):
//
//	client, err := natsclient.NewClient(url,
//	    natsclient.WithTLS("client.crt", "client.key", "ca.crt"),
//	)
//
//	tlsConfig, _ := tlsutil.LoadClientTLSConfig(cfg.Security.TLS.Client)
//	client, err := natsclient.NewClient(url,
//	    natsclient.WithTLSConfig(tlsConfig),
//	)
//
// Credentials are cleared from memory when the client is closed.
//
// # Testing
//
// Integration tests run against a real NATS server via testcontainers
// rather than mocks:
//
//	func TestMyGateway(t *testing.T) {
//	    testClient := natsclient.NewTestClient(t)
//	    defer testClient.Close()
//
//	    err := testClient.Client.Publish(ctx, "test.subject", []byte("test data"))
//	    assert.NoError(t, err)
//	}
//
// # Thread Safety
//
// The Client type is safe for concurrent use: connection state is managed
// with atomic operations and mutexes, subscriptions can be created from any
// goroutine, and Close() is a no-op after the first call.
package natsclient
