package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type screenKey struct {
	screen  string
	outcome string
}

// Recorder keeps in-memory counters for upstream calls and screen loads and,
// when built by Setup, mirrors them to OpenTelemetry instruments.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*upstreamStats
	screens map[screenKey]int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:   make(map[string]*upstreamStats),
		screens: make(map[screenKey]int),
		otel:    otel,
	}
}

// RecordProviderAttempt counts one upstream call and keeps its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	s := r.ensureStatsLocked(provider)
	s.calls++
	s.lastCallLatency = duration
	if err != nil {
		s.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit counts an HTTP 429 from upstream and keeps the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	s := r.ensureStatsLocked(provider)
	s.rateLimitHits++
	if retryAfter > 0 {
		s.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordScreenLoad counts how a roster or statistics load ended.
func (r *Recorder) RecordScreenLoad(screen, outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.screens[screenKey{screen: screen, outcome: outcome}]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordScreenLoad(screen, outcome, duration)
	}
}

// ScreenLoads returns how many loads of screen ended with outcome.
func (r *Recorder) ScreenLoads(screen, outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.screens[screenKey{screen: screen, outcome: outcome}]
}

func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a point-in-time copy of one provider's counters.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stats[provider]
	if !ok || s == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           s.calls,
		Errors:          s.errors,
		RateLimitHits:   s.rateLimitHits,
		LastRetryAfter:  s.lastRetryAfter,
		LastCallLatency: s.lastCallLatency,
	}
}

// RecordHTTPRequest only reaches OpenTelemetry; nothing is kept in memory.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStatsLocked(provider string) *upstreamStats {
	s, ok := r.stats[provider]
	if !ok {
		s = &upstreamStats{}
		r.stats[provider] = s
	}
	return s
}
