package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestEnsureFetchesOnceAndMemoizes(t *testing.T) {
	c := New[string]("test", nil)
	var calls atomic.Int32

	fetch := func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.Ensure(context.Background(), "k", fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "value" {
			t.Fatalf("unexpected value %q", got)
		}
	}

	if n := calls.Load(); n != 1 {
		t.Fatalf("expected exactly 1 fetch, got %d", n)
	}
}

func TestEnsureCoalescesConcurrentRequests(t *testing.T) {
	c := New[string]("test", nil)
	var calls atomic.Int32
	release := make(chan struct{})

	fetch := func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "value", nil
	}

	const workers = 16
	var wg sync.WaitGroup
	results := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Ensure(context.Background(), "k", fetch)
		}(i)
	}

	// Let every worker reach the shared flight before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("expected 1 underlying fetch for %d concurrent ensures, got %d", workers, n)
	}
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d got error %v", i, errs[i])
		}
		if results[i] != "value" {
			t.Fatalf("worker %d got %q", i, results[i])
		}
	}
}

func TestEnsureCachesErrorsWithoutRetry(t *testing.T) {
	c := New[string]("test", nil)
	var calls atomic.Int32
	boom := errors.New("boom")

	fetch := func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "", boom
	}

	for i := 0; i < 3; i++ {
		if _, err := c.Ensure(context.Background(), "k", fetch); !errors.Is(err, boom) {
			t.Fatalf("expected cached error, got %v", err)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("expected error to be cached after 1 fetch, got %d fetches", n)
	}

	if res := c.Peek("k"); res.Status != StatusError {
		t.Fatalf("expected error status, got %s", res.Status)
	}

	c.Clear("k")
	fetchOK := func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "recovered", nil
	}
	got, err := c.Ensure(context.Background(), "k", fetchOK)
	if err != nil || got != "recovered" {
		t.Fatalf("expected retry after Clear, got %q, %v", got, err)
	}
}

func TestPeekStatuses(t *testing.T) {
	c := New[int]("test", nil)

	if res := c.Peek("k"); res.Status != StatusIdle {
		t.Fatalf("expected idle for unseen key, got %s", res.Status)
	}

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_, _ = c.Ensure(context.Background(), "k", func(ctx context.Context) (int, error) {
			close(started)
			<-release
			return 42, nil
		})
	}()

	<-started
	if res := c.Peek("k"); res.Status != StatusLoading {
		t.Fatalf("expected loading while in flight, got %s", res.Status)
	}

	close(release)
	deadline := time.After(2 * time.Second)
	for {
		if res := c.Peek("k"); res.Status == StatusSuccess {
			if res.Value != 42 {
				t.Fatalf("unexpected value %d", res.Value)
			}
			break
		}
		select {
		case <-deadline:
			t.Fatalf("key never reached success")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestAbandonedCallerDoesNotDisturbFlight(t *testing.T) {
	c := New[string]("test", nil)
	release := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Ensure(ctx, "k", func(fctx context.Context) (string, error) {
			<-release
			return "late", nil
		})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled caller to see ctx error, got %v", err)
	}

	// The shared flight keeps going and still settles the key.
	close(release)
	deadline := time.After(2 * time.Second)
	for c.Peek("k").Status != StatusSuccess {
		select {
		case <-deadline:
			t.Fatalf("flight result was lost after caller abandoned")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	got, err := c.Ensure(context.Background(), "k", func(ctx context.Context) (string, error) {
		t.Fatalf("fetch should not run again for a settled key")
		return "", nil
	})
	if err != nil || got != "late" {
		t.Fatalf("expected memoized value, got %q, %v", got, err)
	}
}

func TestResetDropsAllEntries(t *testing.T) {
	c := New[int]("test", nil)
	for _, key := range []string{"a", "b"} {
		if _, err := c.Ensure(context.Background(), key, func(ctx context.Context) (int, error) { return 1, nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	c.Reset()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after reset, got %d", c.Len())
	}
}
