package prefetch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/query"
)

type pagedSource struct {
	pages [][]domain.Summary
	calls atomic.Int32
	fail  atomic.Bool
}

func (s *pagedSource) FetchList(ctx context.Context, limit, offset int) (domain.ListPage, error) {
	s.calls.Add(1)
	if s.fail.Load() {
		return domain.ListPage{}, &providers.FetchError{Endpoint: "/pokemon", StatusCode: 500}
	}
	page := offset / limit
	if page >= len(s.pages) {
		return domain.ListPage{Items: []domain.Summary{}, HasNext: false}, nil
	}
	return domain.ListPage{
		Items:     s.pages[page],
		HasNext:   page < len(s.pages)-1,
		PageIndex: page,
	}, nil
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

func TestWarmerWalksAllPages(t *testing.T) {
	src := &pagedSource{pages: [][]domain.Summary{
		{{ID: 1, Name: "bulbasaur"}, {ID: 2, Name: "ivysaur"}},
		{{ID: 3, Name: "venusaur"}},
	}}
	pager := query.NewPager(src, 2)
	w := New(pager, nil, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop(context.Background())

	waitFor(t, 2*time.Second, func() bool { return w.Status().Completed })

	status := w.Status()
	if status.Pages != 2 {
		t.Fatalf("expected 2 pages warmed, got %d", status.Pages)
	}
	if !status.IsReady() {
		t.Fatalf("expected ready status, got %+v", status)
	}
	if got := len(pager.Items()); got != 3 {
		t.Fatalf("expected 3 items accumulated, got %d", got)
	}
}

func TestWarmerRetriesAfterFailure(t *testing.T) {
	src := &pagedSource{pages: [][]domain.Summary{
		{{ID: 1, Name: "bulbasaur"}},
		{{ID: 2, Name: "ivysaur"}},
	}}
	src.fail.Store(true)
	pager := query.NewPager(src, 1)
	w := New(pager, nil, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop(context.Background())

	waitFor(t, 2*time.Second, func() bool { return w.Status().ConsecutiveFailures >= 1 })
	if w.Status().LastError == "" {
		t.Fatalf("expected a recorded error")
	}

	src.fail.Store(false)
	waitFor(t, 2*time.Second, func() bool { return w.Status().Completed })

	status := w.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected failure streak reset, got %d", status.ConsecutiveFailures)
	}
	if got := len(pager.Items()); got != 2 {
		t.Fatalf("expected 2 items after recovery, got %d", got)
	}
}

func TestWarmerStartIsIdempotent(t *testing.T) {
	src := &pagedSource{pages: [][]domain.Summary{{{ID: 1, Name: "bulbasaur"}}}}
	pager := query.NewPager(src, 1)
	w := New(pager, nil, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	w.Start(ctx)
	defer w.Stop(context.Background())

	waitFor(t, 2*time.Second, func() bool { return w.Status().Completed })
	if got := src.calls.Load(); got != 1 {
		t.Fatalf("expected a single fetch for a single page, got %d", got)
	}
}
