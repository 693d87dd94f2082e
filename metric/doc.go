// Package metric provides Prometheus metrics for the BOM ontology
// pipeline: a shared registry, the pipeline-level metrics every
// component records into, and an HTTP server that exposes them.
//
// # Architecture
//
// Metrics are split into two layers:
//
//   - Pipeline metrics (Metrics): conversion throughput and duration,
//     graph size, classification outcomes, validation warnings, and
//     reasoner connectivity. These are created once per registry and
//     shared by every component.
//   - Component metrics: anything a single component owns, such as
//     per-pool cache counters. Components register these through the
//     MetricsRegistrar interface under their own service name.
//
// The registry rejects duplicate registrations at both its own index
// and the Prometheus level, so a misconfigured component fails fast
// instead of silently double-counting.
//
// # Usage
//
// Create one registry per process and hand it to components:
//
//	registry := metric.NewMetricsRegistry()
//	core := registry.CoreMetrics()
//
//	core.RecordConversion("material", "ok")
//	core.RecordConversionDuration("material", elapsed)
//	core.SetGraphNodes(graph.Len())
//
// Components with their own metrics register them by name:
//
//	counter := prometheus.NewCounter(prometheus.CounterOpts{
//		Namespace: "bomowl",
//		Subsystem: "similarity",
//		Name:      "searches_total",
//		Help:      "Total number of similarity searches",
//	})
//	if err := registry.RegisterCounter("similarity", "searches_total", counter); err != nil {
//		return err
//	}
//
// # Exposition
//
// Server wraps promhttp and serves the registry on /metrics, plus a
// JSON /health endpoint. Start binds synchronously and serves in the
// background; TLS is controlled by the platform security configuration:
//
//	srv, err := metric.NewServer(registry,
//		metric.WithServerPort(9090),
//		metric.WithServerSecurity(securityCfg),
//	)
//	if err != nil {
//		return err
//	}
//	if err := srv.Start(); err != nil {
//		return err
//	}
//	defer srv.Stop(context.Background())
//
// # Naming
//
// All metrics use the "bomowl" namespace with a subsystem per concern
// (convert, classify, graph, reasoner, cache). Names follow the
// Prometheus conventions: counters end in _total, durations are
// histograms in seconds.
package metric
