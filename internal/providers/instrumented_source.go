package providers

import (
	"context"
	"time"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/metrics"
)

// instrumentedSource records attempt counts, error counts, and latency for
// every upstream call.
type instrumentedSource struct {
	inner    DataSource
	recorder *metrics.Recorder
	name     string
}

// NewInstrumentedSource wraps the given source with fetch metrics under the
// provided source name. A nil recorder returns the source unchanged.
func NewInstrumentedSource(inner DataSource, recorder *metrics.Recorder, name string) DataSource {
	if recorder == nil {
		return inner
	}
	return &instrumentedSource{inner: inner, recorder: recorder, name: name}
}

func (s *instrumentedSource) FetchList(ctx context.Context, limit, offset int) (domain.ListPage, error) {
	start := time.Now()
	page, err := s.inner.FetchList(ctx, limit, offset)
	s.recorder.RecordFetchAttempt(s.name, time.Since(start), err)
	return page, err
}

func (s *instrumentedSource) FetchDetail(ctx context.Context, idOrName string) (domain.Detail, error) {
	start := time.Now()
	detail, err := s.inner.FetchDetail(ctx, idOrName)
	s.recorder.RecordFetchAttempt(s.name, time.Since(start), err)
	return detail, err
}

func (s *instrumentedSource) FetchSpecies(ctx context.Context, id int) (domain.Species, error) {
	start := time.Now()
	species, err := s.inner.FetchSpecies(ctx, id)
	s.recorder.RecordFetchAttempt(s.name, time.Since(start), err)
	return species, err
}
