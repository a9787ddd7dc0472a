// Package catalog coordinates the browse session: the ordered list pager,
// the per-entity caches, the filter criteria, and the reveal cursor.
package catalog

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/filter"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/query"
	"pokedex-service/internal/sprite"
)

// Config wires the service's collaborators.
type Config struct {
	Source         providers.DataSource
	Sprites        *sprite.Resolver
	Observer       query.Observer
	Logger         *slog.Logger
	PageSize       int
	InitialVisible int
	Step           int
}

// View is the browse read model: the visible window plus enough shape for a
// client to render pagination controls.
type View struct {
	Items       []domain.Summary `json:"items"`
	Total       int              `json:"total"`
	Visible     int              `json:"visible"`
	HasMore     bool             `json:"has_more"`
	HasNextPage bool             `json:"has_next_page"`
	Criteria    filter.Criteria  `json:"criteria"`
}

// Service owns one browse session over the catalog. List pages accumulate
// strictly in order; filters apply to whatever has been fetched so far, and
// the cursor truncates the filtered result to the visible window.
type Service struct {
	source  providers.DataSource
	pager   *query.Pager
	details *query.Cache[domain.Detail]
	species *query.Cache[domain.Species]
	sprites *sprite.Resolver
	logger  *slog.Logger

	mu       sync.Mutex
	criteria filter.Criteria
	cursor   *filter.Cursor
	initial  int
	step     int
}

// NewService constructs the catalog service.
func NewService(cfg Config) *Service {
	initial := cfg.InitialVisible
	if initial <= 0 {
		initial = filter.DefaultInitialVisible
	}
	step := cfg.Step
	if step <= 0 {
		step = filter.DefaultStep
	}
	return &Service{
		source:  cfg.Source,
		pager:   query.NewPager(cfg.Source, cfg.PageSize),
		details: query.New[domain.Detail]("detail", cfg.Observer),
		species: query.New[domain.Species]("species", cfg.Observer),
		sprites: cfg.Sprites,
		logger:  cfg.Logger,
		initial: initial,
		step:    step,
	}
}

// Browse returns the current window, fetching list pages as needed to fill
// it. A fetch failure surfaces alongside whatever items resolved before it.
func (s *Service) Browse(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.fillWindow(ctx)
	return s.view(), err
}

// SetSearch replaces the name filter and resets the reveal cursor.
func (s *Service) SetSearch(ctx context.Context, name string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Name = strings.TrimSpace(name)
	s.ensureCursor().Reset()
	err := s.fillWindow(ctx)
	return s.view(), err
}

// SetGeneration replaces the generation filter and resets the reveal cursor.
// Zero clears the filter.
func (s *Service) SetGeneration(ctx context.Context, generation int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Generation = generation
	s.ensureCursor().Reset()
	err := s.fillWindow(ctx)
	return s.view(), err
}

// ClearFilters drops both filters and resets the reveal cursor.
func (s *Service) ClearFilters(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = filter.Criteria{}
	s.ensureCursor().Reset()
	err := s.fillWindow(ctx)
	return s.view(), err
}

// LoadMore grows the visible window by one step, fetching further list pages
// when the filtered result cannot fill the grown window yet.
func (s *Service) LoadMore(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cursor := s.ensureCursor()
	target := cursor.Visible() + s.step
	err := s.fetchUntil(ctx, target)

	filtered := filter.Apply(s.pager.Items(), s.criteria)
	cursor.Advance(s.revealTotal(len(filtered)))
	return s.view(), err
}

// RetryList clears a held list fetch error and tries the failed page again.
func (s *Service) RetryList(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pager.ClearError()
	err := s.fillWindow(ctx)
	return s.view(), err
}

// Detail returns the full record for one Pokémon, fetching it at most once.
// The sprite URL is resolved through the sprite prober when one is wired.
func (s *Service) Detail(ctx context.Context, idOrName string) (domain.Detail, error) {
	key := detailKey(idOrName)
	detail, err := s.details.Ensure(ctx, key, func(fctx context.Context) (domain.Detail, error) {
		d, fetchErr := s.source.FetchDetail(fctx, key)
		if fetchErr != nil {
			logging.Warn(s.logger, "detail fetch failed",
				logging.FieldPokemon, key, "error", fetchErr)
			return domain.Detail{}, fetchErr
		}
		if s.sprites != nil {
			d.SpriteURL = s.sprites.Resolve(fctx, d.SpriteURL)
		}
		return d, nil
	})
	if err != nil {
		return domain.Detail{}, err
	}
	return detail, nil
}

// DetailStatus reports the cache state for one Pokémon without fetching.
func (s *Service) DetailStatus(idOrName string) query.Status {
	return s.details.Peek(detailKey(idOrName)).Status
}

// ClearDetail drops a cached detail record (including a held error) so the
// next Detail call fetches again.
func (s *Service) ClearDetail(idOrName string) {
	s.details.Clear(detailKey(idOrName))
}

// Species returns the species record for a species id, fetching it at most
// once.
func (s *Service) Species(ctx context.Context, id int) (domain.Species, error) {
	key := strconv.Itoa(id)
	return s.species.Ensure(ctx, key, func(fctx context.Context) (domain.Species, error) {
		return s.source.FetchSpecies(fctx, id)
	})
}

// ClearSpecies drops a cached species record so it can be re-fetched.
func (s *Service) ClearSpecies(id int) {
	s.species.Clear(strconv.Itoa(id))
}

// Criteria returns the active filters.
func (s *Service) Criteria() filter.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// Pager exposes the underlying list pager for warmup and readiness probes.
func (s *Service) Pager() *query.Pager {
	return s.pager
}

// fillWindow fetches list pages until the filtered result covers the current
// window or the sequence is exhausted. Callers hold s.mu.
func (s *Service) fillWindow(ctx context.Context) error {
	return s.fetchUntil(ctx, s.ensureCursor().Visible())
}

// fetchUntil fetches pages in order until the filtered result reaches target
// items, a page fails, or the upstream sequence ends. Callers hold s.mu.
func (s *Service) fetchUntil(ctx context.Context, target int) error {
	for {
		filtered := filter.Apply(s.pager.Items(), s.criteria)
		if len(filtered) >= target || !s.pager.HasNext() {
			return s.pager.Err()
		}
		if err := s.pager.EnsureNext(ctx); err != nil {
			return err
		}
	}
}

// revealTotal is the upper bound the cursor may advance to: the filtered
// count, or one step beyond the window while more pages remain so a sparse
// filter can keep revealing as pages arrive.
func (s *Service) revealTotal(filteredLen int) int {
	if s.pager.HasNext() {
		return filteredLen + s.step
	}
	return filteredLen
}

// view builds the read model from current state. Callers hold s.mu.
func (s *Service) view() View {
	cursor := s.ensureCursor()
	filtered := filter.Apply(s.pager.Items(), s.criteria)
	window := cursor.Window(filtered)
	return View{
		Items:       window,
		Total:       len(filtered),
		Visible:     len(window),
		HasMore:     cursor.HasMore(len(filtered)) || s.pager.HasNext(),
		HasNextPage: s.pager.HasNext(),
		Criteria:    s.criteria,
	}
}

func (s *Service) ensureCursor() *filter.Cursor {
	if s.cursor == nil {
		s.cursor = filter.NewCursor(s.initial, s.step)
	}
	return s.cursor
}

func detailKey(idOrName string) string {
	return strings.ToLower(strings.TrimSpace(idOrName))
}
