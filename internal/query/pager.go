package query

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/providers"
)

const defaultPageSize = 200

// Pager accumulates the upstream listing page by page, strictly in order.
// Page N+1 is requested only after page N resolved with HasNext; results
// append to the sequence and never replace earlier pages. Concurrent
// EnsureNext calls for the same page share one upstream fetch.
type Pager struct {
	source providers.ListSource

	mu       sync.Mutex
	pageSize int
	items    []domain.Summary
	nextPage int
	hasNext  bool
	lastErr  error

	group singleflight.Group
}

// NewPager constructs a pager over the given list source.
func NewPager(source providers.ListSource, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Pager{
		source:   source,
		pageSize: pageSize,
		hasNext:  true,
	}
}

// Items returns a copy of the accumulated item sequence.
func (p *Pager) Items() []domain.Summary {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Summary, len(p.items))
	copy(out, p.items)
	return out
}

// HasNext reports whether more pages remain upstream.
func (p *Pager) HasNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasNext
}

// Err returns the error from the last failed page fetch, if any.
func (p *Pager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Pages reports how many pages have been accumulated so far.
func (p *Pager) Pages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nextPage
}

// EnsureNext fetches the next page if one remains. It is a no-op when the
// sequence is exhausted, and returns the held error (without re-fetching)
// after a failure until ClearError is called. Concurrent callers while a
// page is in flight share its outcome.
func (p *Pager) EnsureNext(ctx context.Context) error {
	p.mu.Lock()
	if p.lastErr != nil {
		err := p.lastErr
		p.mu.Unlock()
		return err
	}
	if !p.hasNext {
		p.mu.Unlock()
		return nil
	}
	page := p.nextPage
	size := p.pageSize
	p.mu.Unlock()

	ch := p.group.DoChan("page-"+strconv.Itoa(page), func() (any, error) {
		p.mu.Lock()
		if page != p.nextPage || p.lastErr != nil {
			// Settled by an earlier flight for this page.
			err := p.lastErr
			p.mu.Unlock()
			return nil, err
		}
		p.mu.Unlock()

		result, err := p.source.FetchList(context.WithoutCancel(ctx), size, page*size)

		p.mu.Lock()
		defer p.mu.Unlock()
		if page != p.nextPage {
			return nil, nil
		}
		if err != nil {
			p.lastErr = err
			return nil, err
		}
		p.items = append(p.items, result.Items...)
		p.nextPage++
		p.hasNext = result.HasNext
		return nil, nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

// EnsureAll walks the remaining pages in order until the sequence is
// exhausted or a page fails.
func (p *Pager) EnsureAll(ctx context.Context) error {
	for p.HasNext() {
		if err := p.EnsureNext(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ClearError drops the held fetch error so the failed page can be retried.
func (p *Pager) ClearError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastErr = nil
}

// Reset discards the accumulated sequence and starts fresh with the given
// page size (<= 0 keeps the current size).
func (p *Pager) Reset(pageSize int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pageSize > 0 {
		p.pageSize = pageSize
	}
	p.items = nil
	p.nextPage = 0
	p.hasNext = true
	p.lastErr = nil
}
