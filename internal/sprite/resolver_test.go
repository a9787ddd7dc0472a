package sprite

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestResolver(rt roundTripperFunc, maxAttempts int) *Resolver {
	return NewResolver(Config{
		MaxAttempts:  maxAttempts,
		InitialDelay: time.Millisecond,
		HTTPClient:   &http.Client{Transport: rt},
	}, nil)
}

func headResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("")),
		Header:     make(http.Header),
	}
}

func TestResolvePassesThroughReachableURL(t *testing.T) {
	var probes atomic.Int32
	r := newTestResolver(func(req *http.Request) (*http.Response, error) {
		probes.Add(1)
		if req.Method != http.MethodHead {
			t.Fatalf("expected HEAD probe, got %s", req.Method)
		}
		return headResponse(http.StatusOK), nil
	}, 3)

	got := r.Resolve(context.Background(), "https://sprites.test/25.png")
	if got != "https://sprites.test/25.png" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if probes.Load() != 1 {
		t.Fatalf("expected a single probe, got %d", probes.Load())
	}
}

func TestResolveFallsBackAfterBoundedAttempts(t *testing.T) {
	var probes atomic.Int32
	r := newTestResolver(func(req *http.Request) (*http.Response, error) {
		probes.Add(1)
		return nil, errors.New("unreachable")
	}, 3)

	got := r.Resolve(context.Background(), "https://sprites.test/broken.png")
	if got != DefaultFallbackURL {
		t.Fatalf("expected fallback, got %q", got)
	}
	if probes.Load() != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", probes.Load())
	}
}

func TestResolveMemoizesVerdict(t *testing.T) {
	var probes atomic.Int32
	r := newTestResolver(func(req *http.Request) (*http.Response, error) {
		probes.Add(1)
		return nil, errors.New("unreachable")
	}, 2)

	first := r.Resolve(context.Background(), "https://sprites.test/broken.png")
	second := r.Resolve(context.Background(), "https://sprites.test/broken.png")
	if first != second {
		t.Fatalf("expected stable verdict, got %q then %q", first, second)
	}
	if probes.Load() != 2 {
		t.Fatalf("expected no re-probing after the verdict, got %d probes", probes.Load())
	}
}

func TestResolveTreatsNon2xxAsUnreachable(t *testing.T) {
	r := newTestResolver(func(req *http.Request) (*http.Response, error) {
		return headResponse(http.StatusNotFound), nil
	}, 2)

	if got := r.Resolve(context.Background(), "https://sprites.test/404.png"); got != DefaultFallbackURL {
		t.Fatalf("expected fallback for 404, got %q", got)
	}
}

func TestResolveEmptyURL(t *testing.T) {
	r := newTestResolver(func(req *http.Request) (*http.Response, error) {
		t.Fatalf("no probe expected for empty url")
		return nil, nil
	}, 2)

	if got := r.Resolve(context.Background(), ""); got != DefaultFallbackURL {
		t.Fatalf("expected fallback for empty url, got %q", got)
	}
}
