// Package prefetch warms the catalog list on boot so first paint never
// waits on the upstream API.
package prefetch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pokedex-service/internal/logging"
	"pokedex-service/internal/query"
)

const defaultRetryDelay = 30 * time.Second

// Warmer walks the list pager page by page in the background until the
// sequence is exhausted. A failed page is retried after a delay; pages
// already fetched are never re-fetched.
type Warmer struct {
	pager      *query.Pager
	logger     *slog.Logger
	retryDelay time.Duration

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the warmup loop.
type Status struct {
	Completed           bool
	Pages               int
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether at least one page has landed and the warmup is
// not failing repeatedly.
func (s Status) IsReady() bool {
	if s.Pages == 0 {
		return s.Completed
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Warmer with sane defaults.
func New(pager *query.Pager, logger *slog.Logger, retryDelay time.Duration) *Warmer {
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	return &Warmer{
		pager:      pager,
		logger:     logger,
		retryDelay: retryDelay,
		done:       make(chan struct{}),
	}
}

// Start begins the warmup until the catalog is exhausted, the context is
// cancelled, or Stop is called.
func (w *Warmer) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	go func() {
		logging.Info(w.logger, "catalog warmup started")
		for {
			if w.warmOnce(ctx) {
				logging.Info(w.logger, "catalog warmup complete",
					logging.FieldPage, w.pager.Pages(),
					logging.FieldCount, len(w.pager.Items()))
				return
			}

			select {
			case <-ctx.Done():
				logging.Info(w.logger, "catalog warmup stopped")
				return
			case <-w.done:
				logging.Info(w.logger, "catalog warmup stopped")
				return
			case <-time.After(w.retryDelay):
			}
		}
	}()
}

// Stop halts the warmup loop.
func (w *Warmer) Stop(ctx context.Context) error {
	_ = ctx
	w.stopOnce.Do(func() {
		close(w.done)
	})
	return nil
}

// warmOnce walks the remaining pages; returns whether the sequence is
// exhausted.
func (w *Warmer) warmOnce(ctx context.Context) bool {
	start := time.Now()
	w.recordAttempt(start)

	// A held error from a previous cycle blocks paging; this loop owns the
	// retry decision.
	w.pager.ClearError()
	err := w.pager.EnsureAll(ctx)
	if err != nil {
		logging.Error(w.logger, "catalog warmup page failed", err,
			logging.FieldPage, w.pager.Pages())
		w.recordFailure(err, start)
		return false
	}

	w.recordSuccess(start)
	return !w.pager.HasNext()
}

// Status returns a snapshot of the warmup's recent health.
func (w *Warmer) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	status := w.status
	status.Pages = w.pager.Pages()
	status.Completed = !w.pager.HasNext()
	return status
}

func (w *Warmer) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Warmer) recordSuccess(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

func (w *Warmer) recordFailure(err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	if err != nil {
		w.status.LastError = err.Error()
	}
	w.status.LastAttempt = at
}
