package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks cache behavior with lock-free counters. Every
// cache carries one; Prometheus export is layered separately so the
// counters stay available without a metrics registry.
type Statistics struct {
	// Atomic counters for thread-safe updates
	hits      int64
	misses    int64
	sets      int64
	deletes   int64
	evictions int64
	loads     int64
	loadNanos int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	peakSize    int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Hit records a cache hit.
func (s *Statistics) Hit() {
	atomic.AddInt64(&s.hits, 1)
}

// Miss records a cache miss.
func (s *Statistics) Miss() {
	atomic.AddInt64(&s.misses, 1)
}

// Set records a cache set operation.
func (s *Statistics) Set() {
	atomic.AddInt64(&s.sets, 1)
}

// Delete records a cache delete operation.
func (s *Statistics) Delete() {
	atomic.AddInt64(&s.deletes, 1)
}

// Eviction records a cache eviction.
func (s *Statistics) Eviction() {
	atomic.AddInt64(&s.evictions, 1)
}

// RecordLoad records the time spent computing a value after a miss.
// The similarity service reports score and search computations here,
// which makes AverageLoadTime the observed cost of a cold lookup.
func (s *Statistics) RecordLoad(d time.Duration) {
	atomic.AddInt64(&s.loads, 1)
	atomic.AddInt64(&s.loadNanos, d.Nanoseconds())
}

// UpdateSize updates the current cache size and the peak watermark.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.peakSize {
		s.peakSize = size
	}
	s.mu.Unlock()
}

// Hits returns the total number of cache hits.
func (s *Statistics) Hits() int64 {
	return atomic.LoadInt64(&s.hits)
}

// Misses returns the total number of cache misses.
func (s *Statistics) Misses() int64 {
	return atomic.LoadInt64(&s.misses)
}

// Sets returns the total number of set operations.
func (s *Statistics) Sets() int64 {
	return atomic.LoadInt64(&s.sets)
}

// Deletes returns the total number of delete operations.
func (s *Statistics) Deletes() int64 {
	return atomic.LoadInt64(&s.deletes)
}

// Evictions returns the total number of evictions.
func (s *Statistics) Evictions() int64 {
	return atomic.LoadInt64(&s.evictions)
}

// Loads returns the number of recorded miss computations.
func (s *Statistics) Loads() int64 {
	return atomic.LoadInt64(&s.loads)
}

// CurrentSize returns the current number of entries in the cache.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// PeakSize returns the largest number of entries the cache has held.
func (s *Statistics) PeakSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.peakSize
}

// HitRatio returns the cache hit ratio (0.0 to 1.0).
func (s *Statistics) HitRatio() float64 {
	hits := s.Hits()
	misses := s.Misses()
	total := hits + misses

	if total == 0 {
		return 0.0
	}

	return float64(hits) / float64(total)
}

// MissRatio returns the cache miss ratio (0.0 to 1.0).
func (s *Statistics) MissRatio() float64 {
	return 1.0 - s.HitRatio()
}

// AverageLoadTime returns the mean duration of recorded miss
// computations, or zero when none were recorded.
func (s *Statistics) AverageLoadTime() time.Duration {
	loads := atomic.LoadInt64(&s.loads)
	if loads == 0 {
		return 0
	}
	return time.Duration(atomic.LoadInt64(&s.loadNanos) / loads)
}

// RequestsPerSecond returns the average number of requests (hits +
// misses) per second since the tracker started.
func (s *Statistics) RequestsPerSecond() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	totalRequests := s.Hits() + s.Misses()
	return float64(totalRequests) / elapsed.Seconds()
}

// Uptime returns how long the tracker has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.hits, 0)
	atomic.StoreInt64(&s.misses, 0)
	atomic.StoreInt64(&s.sets, 0)
	atomic.StoreInt64(&s.deletes, 0)
	atomic.StoreInt64(&s.evictions, 0)
	atomic.StoreInt64(&s.loads, 0)
	atomic.StoreInt64(&s.loadNanos, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.peakSize = 0
	s.mu.Unlock()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Hits              int64         `json:"hits"`
	Misses            int64         `json:"misses"`
	Sets              int64         `json:"sets"`
	Deletes           int64         `json:"deletes"`
	Evictions         int64         `json:"evictions"`
	Loads             int64         `json:"loads"`
	CurrentSize       int64         `json:"current_size"`
	PeakSize          int64         `json:"peak_size"`
	HitRatio          float64       `json:"hit_ratio"`
	MissRatio         float64       `json:"miss_ratio"`
	AverageLoadTime   time.Duration `json:"average_load_time"`
	RequestsPerSecond float64       `json:"requests_per_second"`
	Uptime            time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Hits:              s.Hits(),
		Misses:            s.Misses(),
		Sets:              s.Sets(),
		Deletes:           s.Deletes(),
		Evictions:         s.Evictions(),
		Loads:             s.Loads(),
		CurrentSize:       s.CurrentSize(),
		PeakSize:          s.PeakSize(),
		HitRatio:          s.HitRatio(),
		MissRatio:         s.MissRatio(),
		AverageLoadTime:   s.AverageLoadTime(),
		RequestsPerSecond: s.RequestsPerSecond(),
		Uptime:            s.Uptime(),
	}
}
