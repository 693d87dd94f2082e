package similarity

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/JuntinLin/bom-owl-sub002/classify"
)

// scoreDimension weights one specification field's contribution to the
// overall similarity. Numeric dimensions compare by closeness, enumeration
// dimensions by exact match.
type scoreDimension struct {
	key     string
	weight  float64
	numeric bool
}

// The weights favor the physical dimensions over the coded ones: two
// cylinders with matching bore and stroke are better substitutes than two
// sharing only a series code.
var scoreDimensions = []scoreDimension{
	{key: classify.SpecBore, weight: 0.30, numeric: true},
	{key: classify.SpecStroke, weight: 0.25, numeric: true},
	{key: classify.SpecSeries, weight: 0.20},
	{key: classify.SpecRodEndType, weight: 0.15},
	{key: classify.SpecInstallation, weight: 0.10},
}

// Scorer computes a deterministic weighted similarity in [0,1] between two
// specification maps. It holds no per-call state.
type Scorer struct {
	logger *slog.Logger
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer)

// WithScorerLogger sets the logger for skipped-dimension warnings.
func WithScorerLogger(logger *slog.Logger) ScorerOption {
	return func(s *Scorer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScorer creates a Scorer.
func NewScorer(opts ...ScorerOption) *Scorer {
	s := &Scorer{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score compares two specification maps dimension by dimension. Numeric
// dimensions contribute min/max closeness, enumeration dimensions
// contribute 1 on exact match and 0 otherwise. Only dimensions present in
// both maps are compared, and the result is normalized by the compared
// weight so partial specifications still score on what they share. A
// non-numeric value in a numeric dimension skips that dimension with a
// warning, never an error. No comparable dimensions yields 0.
func (s *Scorer) Score(a, b map[string]string) float64 {
	var sum, weight float64

	for _, dim := range scoreDimensions {
		av, aok := lookup(a, dim.key)
		bv, bok := lookup(b, dim.key)
		if !aok || !bok {
			continue
		}

		if dim.numeric {
			closeness, ok := s.numericCloseness(dim.key, av, bv)
			if !ok {
				continue
			}
			sum += dim.weight * closeness
		} else if av == bv {
			sum += dim.weight
		}
		weight += dim.weight
	}

	if weight == 0 {
		return 0
	}
	return sum / weight
}

// numericCloseness grades two numeric values by their ratio: equal values
// score 1 and the score falls toward 0 as they diverge.
func (s *Scorer) numericCloseness(key, a, b string) (float64, bool) {
	av, aerr := strconv.Atoi(a)
	bv, berr := strconv.Atoi(b)
	if aerr != nil || berr != nil {
		s.logger.Warn("Skipping similarity dimension: non-numeric value",
			"field", key, "left", a, "right", b)
		return 0, false
	}
	if av < 0 || bv < 0 {
		s.logger.Warn("Skipping similarity dimension: negative value",
			"field", key, "left", a, "right", b)
		return 0, false
	}
	if av == bv {
		return 1, true
	}
	lo, hi := float64(av), float64(bv)
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return 1, true
	}
	return lo / hi, true
}

func lookup(specs map[string]string, key string) (string, bool) {
	raw, ok := specs[key]
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}
