package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/logging"
)

const (
	defaultRetryAttempts    = 3
	defaultInitialBackoff   = 200 * time.Millisecond
	defaultBackoffMultiple  = 2.0
	defaultMaxBackoffDelay  = 5 * time.Second
	defaultBackoffJitterPct = 0.1
)

// retryingSource wraps a DataSource with bounded retry/backoff behavior.
// Successes are never retried and the wrapped error is returned unchanged
// once attempts are exhausted.
type retryingSource struct {
	inner       DataSource
	logger      *slog.Logger
	maxAttempts int
	newSchedule func() backoff.BackOff
}

// NewRetryingSource wraps the given source with retries. If maxAttempts or
// initialDelay are <= 0, defaults are used.
func NewRetryingSource(inner DataSource, logger *slog.Logger, maxAttempts int, initialDelay time.Duration) DataSource {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialDelay <= 0 {
		initialDelay = defaultInitialBackoff
	}
	return &retryingSource{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		newSchedule: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initialDelay
			b.Multiplier = defaultBackoffMultiple
			b.MaxInterval = defaultMaxBackoffDelay
			b.RandomizationFactor = defaultBackoffJitterPct
			b.Reset()
			return b
		},
	}
}

func (r *retryingSource) FetchList(ctx context.Context, limit, offset int) (domain.ListPage, error) {
	return retry(ctx, r, "list", func() (domain.ListPage, error) {
		return r.inner.FetchList(ctx, limit, offset)
	})
}

func (r *retryingSource) FetchDetail(ctx context.Context, idOrName string) (domain.Detail, error) {
	return retry(ctx, r, "detail", func() (domain.Detail, error) {
		return r.inner.FetchDetail(ctx, idOrName)
	})
}

func (r *retryingSource) FetchSpecies(ctx context.Context, id int) (domain.Species, error) {
	return retry(ctx, r, "species", func() (domain.Species, error) {
		return r.inner.FetchSpecies(ctx, id)
	})
}

func retry[T any](ctx context.Context, r *retryingSource, op string, fn func() (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)
	schedule := r.newSchedule()

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		value, err := fn()
		if err == nil {
			return value, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		logging.Warn(r.logger, "upstream fetch retry",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Any("error", err),
		)

		delay := schedule.NextBackOff()
		if delay == backoff.Stop {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	logging.Warn(r.logger, "upstream fetch failed",
		slog.String("op", op),
		slog.Int("attempts", r.maxAttempts),
		slog.Any("error", lastErr),
	)
	return zero, lastErr
}
