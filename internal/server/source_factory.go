package server

import (
	"log/slog"
	"net/http"
	"strings"

	"pokedex-service/internal/config"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
	"pokedex-service/internal/providers/pokeapi"
)

// sourceFactory assembles the data source with shared decorators
// (instrumentation + retry).
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, recorder *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: recorder}
}

func (f sourceFactory) build(cfg config.Config) providers.DataSource {
	name := normalizeSourceName(cfg.Provider)
	base := f.selectSource(name, cfg)
	instrumented := providers.NewInstrumentedSource(base, f.metrics, name)
	return providers.NewRetryingSource(instrumented, f.logger, cfg.PokeAPI.MaxRetries, cfg.PokeAPI.RetryDelay)
}

func (f sourceFactory) selectSource(name string, cfg config.Config) providers.DataSource {
	switch name {
	case "fixture":
		return fixture.New()
	default:
		return pokeapi.NewClient(pokeapi.Config{
			BaseURL:           cfg.PokeAPI.BaseURL,
			HTTPClient:        &http.Client{Timeout: cfg.PokeAPI.Timeout},
			RequestsPerMinute: cfg.PokeAPI.RequestsPerMinute,
		})
	}
}

func normalizeSourceName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "pokeapi"
	}
	return name
}
