package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the pipeline-level metrics shared by every
// component: conversion throughput, classification outcomes, graph
// size, and reasoner connectivity. Component-specific metrics are
// registered separately through the MetricsRegistrar interface.
type Metrics struct {
	// Service metrics
	ServiceStatus *prometheus.GaugeVec
	ErrorsTotal   *prometheus.CounterVec

	// Conversion metrics
	ConversionsTotal   *prometheus.CounterVec
	ConversionDuration *prometheus.HistogramVec
	GraphNodes         prometheus.Gauge

	// Classification metrics
	ClassificationsTotal *prometheus.CounterVec
	ValidationWarnings   *prometheus.CounterVec
	SuggestionsGenerated prometheus.Counter

	// Reasoner gateway metrics
	ReasonerConnected prometheus.Gauge
	ReasonerRequests  *prometheus.CounterVec
	ReasonerDuration  prometheus.Histogram
	ReasonerRetries   prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all pipeline metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		ServiceStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "bomowl",
				Subsystem: "service",
				Name:      "status",
				Help:      "Service status (0=stopped, 1=starting, 2=running, 3=stopping, 4=failed)",
			},
			[]string{"service"},
		),

		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bomowl",
				Subsystem: "errors",
				Name:      "total",
				Help:      "Total number of errors by component and classification",
			},
			[]string{"component", "class"},
		),

		ConversionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bomowl",
				Subsystem: "convert",
				Name:      "operations_total",
				Help:      "Total number of conversion operations by entity kind",
			},
			[]string{"entity", "status"},
		),

		ConversionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "bomowl",
				Subsystem: "convert",
				Name:      "duration_seconds",
				Help:      "Conversion duration in seconds by entity kind",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"entity"},
		),

		GraphNodes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "bomowl",
				Subsystem: "graph",
				Name:      "nodes",
				Help:      "Current number of nodes in the ontology graph",
			},
		),

		ClassificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bomowl",
				Subsystem: "classify",
				Name:      "operations_total",
				Help:      "Total number of classification operations",
			},
			[]string{"status"},
		),

		ValidationWarnings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bomowl",
				Subsystem: "classify",
				Name:      "validation_warnings_total",
				Help:      "Total number of specification validation warnings by field",
			},
			[]string{"field"},
		),

		SuggestionsGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "bomowl",
				Subsystem: "classify",
				Name:      "suggestions_total",
				Help:      "Total number of component suggestion sets generated",
			},
		),

		// Reasoner gateway metrics
		ReasonerConnected: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "bomowl",
				Subsystem: "reasoner",
				Name:      "connected",
				Help:      "Reasoner connection status (0=disconnected, 1=connected)",
			},
		),

		ReasonerRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bomowl",
				Subsystem: "reasoner",
				Name:      "requests_total",
				Help:      "Total number of reasoner requests by outcome",
			},
			[]string{"status"},
		),

		ReasonerDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "bomowl",
				Subsystem: "reasoner",
				Name:      "request_duration_seconds",
				Help:      "Reasoner round-trip duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),

		ReasonerRetries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "bomowl",
				Subsystem: "reasoner",
				Name:      "retries_total",
				Help:      "Total number of reasoner request retries",
			},
		),
	}
}

// RecordServiceStatus updates the service status metric.
func (c *Metrics) RecordServiceStatus(service string, status int) {
	c.ServiceStatus.WithLabelValues(service).Set(float64(status))
}

// RecordError increments the error counter for a component.
func (c *Metrics) RecordError(component, class string) {
	c.ErrorsTotal.WithLabelValues(component, class).Inc()
}

// RecordConversion increments the conversion counter.
// Entity is "material" or "bom"; status is "ok" or "error".
func (c *Metrics) RecordConversion(entity, status string) {
	c.ConversionsTotal.WithLabelValues(entity, status).Inc()
}

// RecordConversionDuration records how long one conversion took.
func (c *Metrics) RecordConversionDuration(entity string, duration time.Duration) {
	c.ConversionDuration.WithLabelValues(entity).Observe(duration.Seconds())
}

// SetGraphNodes updates the graph size gauge.
func (c *Metrics) SetGraphNodes(n int) {
	c.GraphNodes.Set(float64(n))
}

// RecordClassification increments the classification counter.
// Status is "ok" or "skipped".
func (c *Metrics) RecordClassification(status string) {
	c.ClassificationsTotal.WithLabelValues(status).Inc()
}

// RecordValidationWarning increments the warning counter for a field.
func (c *Metrics) RecordValidationWarning(field string) {
	c.ValidationWarnings.WithLabelValues(field).Inc()
}

// RecordSuggestion increments the suggestion counter.
func (c *Metrics) RecordSuggestion() {
	c.SuggestionsGenerated.Inc()
}

// RecordReasonerStatus updates the reasoner connection gauge.
func (c *Metrics) RecordReasonerStatus(connected bool) {
	value := 0.0
	if connected {
		value = 1.0
	}
	c.ReasonerConnected.Set(value)
}

// RecordReasonerRequest increments the reasoner request counter.
// Status is "ok", "error", or "timeout".
func (c *Metrics) RecordReasonerRequest(status string) {
	c.ReasonerRequests.WithLabelValues(status).Inc()
}

// RecordReasonerDuration records one reasoner round trip.
func (c *Metrics) RecordReasonerDuration(duration time.Duration) {
	c.ReasonerDuration.Observe(duration.Seconds())
}

// RecordReasonerRetry increments the retry counter.
func (c *Metrics) RecordReasonerRetry() {
	c.ReasonerRetries.Inc()
}
