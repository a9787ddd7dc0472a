// Package sprite resolves sprite image URLs with a bounded retry schedule
// and a terminal fallback, as an explicit state machine: attempt count,
// increasing delay, fallback after the last attempt. Outcomes are memoized
// per URL so a broken sprite is probed once per session.
package sprite

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"pokedex-service/internal/query"
)

const (
	// DefaultFallbackURL mirrors the catalog's placeholder artwork.
	DefaultFallbackURL = "/missingno.png"

	defaultMaxAttempts  = 3
	defaultInitialDelay = 250 * time.Millisecond
	defaultProbeTimeout = 5 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls the resolver.
type Config struct {
	FallbackURL  string
	MaxAttempts  int
	InitialDelay time.Duration
	HTTPClient   *http.Client
}

// Resolver probes sprite URLs and substitutes the fallback for ones that
// stay unreachable.
type Resolver struct {
	client      httpDoer
	fallbackURL string
	maxAttempts int
	newSchedule func() backoff.BackOff
	cache       *query.Cache[string]
}

// NewResolver constructs a resolver; zero-value config fields fall back to
// defaults. The observer may be nil.
func NewResolver(cfg Config, observer query.Observer) *Resolver {
	fallbackURL := cfg.FallbackURL
	if fallbackURL == "" {
		fallbackURL = DefaultFallbackURL
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	initialDelay := cfg.InitialDelay
	if initialDelay <= 0 {
		initialDelay = defaultInitialDelay
	}
	client := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		client = &http.Client{Timeout: defaultProbeTimeout}
	}
	return &Resolver{
		client:      client,
		fallbackURL: fallbackURL,
		maxAttempts: maxAttempts,
		newSchedule: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initialDelay
			b.RandomizationFactor = 0
			b.Reset()
			return b
		},
		cache: query.New[string]("sprite", observer),
	}
}

// Resolve returns the sprite URL when it is reachable, or the fallback once
// the bounded attempts are exhausted. It never returns an error: the
// fallback is the terminal state. An empty URL resolves straight to the
// fallback.
func (r *Resolver) Resolve(ctx context.Context, url string) string {
	if url == "" {
		return r.fallbackURL
	}
	resolved, err := r.cache.Ensure(ctx, url, func(fctx context.Context) (string, error) {
		return r.probe(fctx, url), nil
	})
	if err != nil {
		// Caller abandoned mid-probe; the sprite is cosmetic, serve the
		// fallback without caching a verdict.
		return r.fallbackURL
	}
	return resolved
}

func (r *Resolver) probe(ctx context.Context, url string) string {
	schedule := r.newSchedule()
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if r.reachable(ctx, url) {
			return url
		}
		if attempt == r.maxAttempts {
			break
		}
		delay := schedule.NextBackOff()
		if delay == backoff.Stop {
			break
		}
		select {
		case <-ctx.Done():
			return r.fallbackURL
		case <-time.After(delay):
		}
	}
	return r.fallbackURL
}

func (r *Resolver) reachable(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
