package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits      int
	misses    int
	coalesced int
}

// Recorder captures lightweight, in-memory metrics about upstream fetches,
// cache behavior, and team operations. OTel export is layered on when
// telemetry is enabled.
type Recorder struct {
	mu      sync.Mutex
	sources map[string]*sourceStats
	caches  map[string]*cacheStats
	teamOps map[string]int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources: make(map[string]*sourceStats),
		caches:  make(map[string]*cacheStats),
		teamOps: make(map[string]int),
		otel:    otel,
	}
}

// RecordFetchAttempt increments counters for an upstream fetch and stores
// the last observed latency.
func (r *Recorder) RecordFetchAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureSource(source)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(source, duration, err)
	}
}

// RecordCacheLookup tracks one cache read as a hit or miss.
func (r *Recorder) RecordCacheLookup(cache string, hit bool) {
	if r == nil {
		return
	}

	stats := r.ensureCache(cache)
	r.mu.Lock()
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(cache, hit)
	}
}

// RecordCacheCoalesced tracks a request that piggybacked on an in-flight
// fetch instead of issuing its own.
func (r *Recorder) RecordCacheCoalesced(cache string) {
	if r == nil {
		return
	}

	stats := r.ensureCache(cache)
	r.mu.Lock()
	stats.coalesced++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheCoalesced(cache)
	}
}

// RecordTeamOp counts one team command (save, delete, import, export).
func (r *Recorder) RecordTeamOp(op string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.teamOps[op]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTeamOp(op)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// FetchCalls returns the total attempts recorded for a source.
func (r *Recorder) FetchCalls(source string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.sources[source]; ok {
		return stats.calls
	}
	return 0
}

// FetchErrors returns the failed attempts recorded for a source.
func (r *Recorder) FetchErrors(source string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.sources[source]; ok {
		return stats.errors
	}
	return 0
}

// CacheHits returns recorded hits for a cache.
func (r *Recorder) CacheHits(cache string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.caches[cache]; ok {
		return stats.hits
	}
	return 0
}

// CacheMisses returns recorded misses for a cache.
func (r *Recorder) CacheMisses(cache string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.caches[cache]; ok {
		return stats.misses
	}
	return 0
}

// CacheCoalesced returns recorded coalesced waits for a cache.
func (r *Recorder) CacheCoalesced(cache string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.caches[cache]; ok {
		return stats.coalesced
	}
	return 0
}

// TeamOps returns the count recorded for a team command.
func (r *Recorder) TeamOps(op string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.teamOps[op]
}

func (r *Recorder) ensureSource(source string) *sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	return stats
}

func (r *Recorder) ensureCache(cache string) *cacheStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.caches[cache]
	if !ok {
		stats = &cacheStats{}
		r.caches[cache] = stats
	}
	return stats
}
