package similarity

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/JuntinLin/bom-owl-sub002/errors"
)

const defaultMaxResults = 10

// Service is the search routine the cache fronts. It keeps a catalog of
// item specifications, answers pairwise similarity queries through the
// score pool, and ranks the catalog against a searched specification
// through the result pool.
type Service struct {
	cache      *Cache
	scorer     *Scorer
	logger     *slog.Logger
	maxResults int

	mu      sync.RWMutex
	catalog map[string]map[string]string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithScorer replaces the default scorer.
func WithScorer(scorer *Scorer) ServiceOption {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithMaxResults bounds how many matches Search returns. Zero or negative
// keeps the default.
func WithMaxResults(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// NewService creates a Service over the given cache.
func NewService(c *Cache, opts ...ServiceOption) (*Service, error) {
	if c == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "similarity", "NewService", "cache must not be nil")
	}
	s := &Service{
		cache:      c,
		scorer:     NewScorer(),
		logger:     slog.Default(),
		maxResults: defaultMaxResults,
		catalog:    make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Register adds or replaces an item's specifications in the catalog.
func (s *Service) Register(code string, specs map[string]string) error {
	if code == "" {
		return errors.WrapInvalid(errors.ErrEmptyIdentifier, "similarity", "Register", "item code")
	}
	copied := make(map[string]string, len(specs))
	for k, v := range specs {
		copied[k] = v
	}

	s.mu.Lock()
	s.catalog[code] = copied
	s.mu.Unlock()
	return nil
}

// Remove drops an item from the catalog. Cached scores involving the item
// age out by TTL rather than being invalidated eagerly.
func (s *Service) Remove(code string) {
	s.mu.Lock()
	delete(s.catalog, code)
	s.mu.Unlock()
}

// Codes returns the registered item codes in sorted order.
func (s *Service) Codes() []string {
	s.mu.RLock()
	codes := make([]string, 0, len(s.catalog))
	for code := range s.catalog {
		codes = append(codes, code)
	}
	s.mu.RUnlock()
	sort.Strings(codes)
	return codes
}

// Score returns the similarity between two registered items, consulting the
// score pool before computing. The arguments commute.
func (s *Service) Score(a, b string) (float64, error) {
	if score, ok := s.cache.GetScore(a, b); ok {
		return score, nil
	}

	specsA, err := s.specs(a)
	if err != nil {
		return 0, err
	}
	specsB, err := s.specs(b)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	score := s.scorer.Score(specsA, specsB)
	s.cache.recordScoreLoad(time.Since(start))

	if err := s.cache.PutScore(a, b, score); err != nil {
		return 0, err
	}
	s.logger.Debug("Computed similarity score", "left", a, "right", b, "score", score)
	return score, nil
}

// Search ranks the catalog against the searched specification, best match
// first with ties broken by code. Repeated searches with an equal
// specification map are served from the result pool.
func (s *Service) Search(specs map[string]string) ([]Match, error) {
	if len(specs) == 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidData, "similarity", "Search", "empty specification")
	}

	if matches, ok := s.cache.GetResult(specs); ok {
		return cloneMatches(matches), nil
	}

	start := time.Now()
	matches := s.rank(specs)
	s.cache.recordResultLoad(time.Since(start))

	if err := s.cache.PutResult(specs, matches); err != nil {
		return nil, err
	}
	s.logger.Debug("Ranked similarity search", "candidates", len(matches))
	return cloneMatches(matches), nil
}

// Stats reports both pools' counters.
func (s *Service) Stats() Stats {
	return s.cache.Stats()
}

// Clear invalidates both pools.
func (s *Service) Clear() error {
	return s.cache.Clear()
}

func (s *Service) rank(specs map[string]string) []Match {
	s.mu.RLock()
	matches := make([]Match, 0, len(s.catalog))
	for code, candidate := range s.catalog {
		matches = append(matches, Match{Code: code, Score: s.scorer.Score(specs, candidate)})
	}
	s.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Code < matches[j].Code
	})
	if len(matches) > s.maxResults {
		matches = matches[:s.maxResults]
	}
	return matches
}

func (s *Service) specs(code string) (map[string]string, error) {
	s.mu.RLock()
	specs, ok := s.catalog[code]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.WrapInvalid(errors.ErrNodeNotFound, "similarity", "Score",
			"no specifications registered for "+code)
	}
	return specs, nil
}

// cloneMatches copies a cached slice so callers cannot mutate pool state.
func cloneMatches(matches []Match) []Match {
	out := make([]Match, len(matches))
	copy(out, matches)
	return out
}
