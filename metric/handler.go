package metric

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/pkg/security"
	"github.com/JuntinLin/bom-owl-sub002/pkg/tlsutil"
)

// Server exposes a MetricsRegistry over HTTP for Prometheus scraping,
// alongside a JSON health endpoint. Start binds the listener synchronously
// (port 0 picks a free one) and serves in the background until Stop, so the
// caller can read the bound address immediately after Start returns.
type Server struct {
	registry *MetricsRegistry
	port     int
	path     string
	security security.Config
	logger   *slog.Logger

	mu       sync.Mutex
	listener net.Listener
	server   *http.Server
	started  time.Time
}

// ServerOption configures a metrics Server.
type ServerOption func(*Server)

// WithServerPort sets the listen port. Port 0 binds an ephemeral port.
func WithServerPort(port int) ServerOption {
	return func(s *Server) {
		s.port = port
	}
}

// WithServerPath sets the scrape path (default "/metrics").
func WithServerPath(path string) ServerOption {
	return func(s *Server) {
		if path != "" {
			s.path = path
		}
	}
}

// WithServerSecurity enables TLS per the platform security config.
func WithServerSecurity(cfg security.Config) ServerOption {
	return func(s *Server) {
		s.security = cfg
	}
}

// WithServerLogger sets the logger for server lifecycle events.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a metrics server for the provided registry.
func NewServer(registry *MetricsRegistry, opts ...ServerOption) (*Server, error) {
	if registry == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig,
			"Server", "NewServer", "metrics registry is required")
	}

	s := &Server{
		registry: registry,
		port:     9090,
		path:     "/metrics",
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start binds the listener and begins serving in the background.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return errors.WrapInvalid(
			fmt.Errorf("server already running"),
			"Server", "Start", "cannot start server that is already running")
	}

	mux := http.NewServeMux()
	mux.Handle(s.path, promhttp.HandlerFor(
		s.registry.PrometheusRegistry(),
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	))
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.handleIndex)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return errors.WrapFatal(err, "Server", "Start",
			fmt.Sprintf("listen on port %d", s.port))
	}

	if s.security.TLS.Server.Enabled {
		tlsConfig, err := tlsutil.LoadServerTLSConfig(s.security.TLS.Server)
		if err != nil {
			_ = listener.Close()
			return errors.WrapFatal(err, "Server", "Start", "load TLS config")
		}
		listener = tls.NewListener(listener, tlsConfig)
	}

	s.listener = listener
	s.started = time.Now()
	s.server = &http.Server{Handler: mux}

	go func(srv *http.Server) {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("metrics server stopped", "error", err)
		}
	}(s.server)

	s.logger.Info("metrics server listening",
		"address", listener.Addr().String(),
		"path", s.path)
	return nil
}

// Stop shuts the server down gracefully, honoring the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil
	}

	err := s.server.Shutdown(ctx)
	s.server = nil
	s.listener = nil
	if err != nil {
		return errors.WrapTransient(err, "Server", "Stop",
			"failed to stop HTTP server")
	}
	return nil
}

// Addr returns the bound listen address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// MetricsURL returns a loopback URL for the scrape endpoint, or "" before
// Start.
func (s *Server) MetricsURL() string {
	addr := s.Addr()
	if addr == "" {
		return ""
	}

	scheme := "http"
	if s.security.TLS.Server.Enabled {
		scheme = "https"
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s://127.0.0.1:%s%s", scheme, port, s.path)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":        "ok",
		"uptimeSeconds": int64(time.Since(s.started).Seconds()),
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	_, _ = fmt.Fprintf(w, `<html>
<head><title>BOM Knowledge Graph Metrics</title></head>
<body>
<h1>BOM Knowledge Graph Metrics Server</h1>
<p><a href="%s">Metrics</a></p>
<p><a href="/health">Health</a></p>
</body>
</html>`, s.path)
}
