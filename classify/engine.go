package classify

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/metric"
	"github.com/JuntinLin/bom-owl-sub002/ontology"
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

// Engine evaluates the classification dimensions. It holds no per-call
// state; one Engine serves any number of concurrent callers.
type Engine struct {
	logger  *slog.Logger
	metrics *metric.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for skipped-dimension warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics enables classification and validation counters.
func WithMetrics(m *metric.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Classify evaluates every dimension of the specification map and returns
// the matched tags in dimension order: bore, stroke, series, rod end,
// installation. Each dimension contributes at most one tag. A non-numeric
// bore or stroke skips that dimension with a warning; unknown enumeration
// values contribute nothing. Classify never fails.
func (e *Engine) Classify(specs map[string]string) []string {
	var tags []string
	skipped := false

	if bore, ok, numeric := e.numericSpec(specs, SpecBore); ok {
		if numeric {
			tags = append(tags, classifyRange(boreRules, bore))
		} else {
			skipped = true
		}
	}
	if stroke, ok, numeric := e.numericSpec(specs, SpecStroke); ok {
		if numeric {
			tags = append(tags, classifyRange(strokeRules, stroke))
		} else {
			skipped = true
		}
	}
	if tag, ok := lookupSpec(specs, SpecSeries, seriesRules); ok {
		tags = append(tags, tag)
	}
	if tag, ok := lookupSpec(specs, SpecRodEndType, rodEndRules); ok {
		tags = append(tags, tag)
	}
	if tag, ok := lookupSpec(specs, SpecInstallation, installationRules); ok {
		tags = append(tags, tag)
	}

	if e.metrics != nil {
		status := "ok"
		if skipped {
			status = "skipped"
		}
		e.metrics.RecordClassification(status)
	}
	return tags
}

// numericSpec reads a numeric field. The first result is the parsed value,
// the second reports presence, the third reports parseability.
func (e *Engine) numericSpec(specs map[string]string, key string) (int, bool, bool) {
	raw, ok := specs[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, false, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		e.logger.Warn("Skipping classification dimension: non-numeric value",
			"field", key, "value", raw)
		return 0, true, false
	}
	return value, true, true
}

func lookupSpec(specs map[string]string, key string, rules []valueRule) (string, bool) {
	raw, ok := specs[key]
	if !ok || raw == "" {
		return "", false
	}
	return classifyValue(rules, strings.TrimSpace(raw))
}

// Apply attaches the tags plus the base HydraulicCylinder class to a node.
// One tag per dimension keeps the disjointness axioms satisfied by
// construction.
func (e *Engine) Apply(g *ontology.Graph, nodeID string, tags []string) error {
	if g == nil {
		return errors.WrapInvalid(errors.ErrMissingConfig, "classify", "Apply", "graph")
	}
	types := append([]string{vocabulary.ClassHydraulicCylinder}, tags...)
	return g.AddType(nodeID, types...)
}

// ClassifyNode reads the feature properties conversion attached to a node,
// classifies them, and applies the resulting tags to the same node. It
// returns the tag set for the caller's report.
func (e *Engine) ClassifyNode(g *ontology.Graph, nodeID string) ([]string, error) {
	if g == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "classify", "ClassifyNode", "graph")
	}
	node, ok := g.Node(nodeID)
	if !ok {
		return nil, errors.WrapInvalid(errors.ErrNodeNotFound, "classify", "ClassifyNode",
			"loading node "+nodeID)
	}

	specs := make(map[string]string)
	if bore, ok := node.IntProperty(vocabulary.PropHasBoreSize); ok {
		specs[SpecBore] = strconv.Itoa(bore)
	}
	if stroke, ok := node.IntProperty(vocabulary.PropHasStrokeLength); ok {
		specs[SpecStroke] = strconv.Itoa(stroke)
	}
	if series, ok := node.StringProperty(vocabulary.PropHasSeries); ok {
		specs[SpecSeries] = series
	}
	if rodEnd, ok := node.StringProperty(vocabulary.PropHasRodEndType); ok {
		specs[SpecRodEndType] = rodEnd
	}
	if installation, ok := node.StringProperty(vocabulary.PropHasInstallationType); ok {
		specs[SpecInstallation] = installation
	}

	tags := e.Classify(specs)
	if err := e.Apply(g, nodeID, tags); err != nil {
		return nil, err
	}
	return tags, nil
}
