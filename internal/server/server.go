package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"pokedex-service/internal/app/catalog"
	teamsapp "pokedex-service/internal/app/teams"
	"pokedex-service/internal/config"
	"pokedex-service/internal/export"
	httpserver "pokedex-service/internal/http"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/prefetch"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/sprite"
)

var metricsSetup = metrics.Setup

// Server wires the data source, application services, warmup loop, and HTTP
// surfaces together.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	catalogSvc    *catalog.Service
	teamsSvc      *teamsapp.Service
	warmer        *prefetch.Warmer
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default source wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithSource(cfg, logger, nil)
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, source providers.DataSource) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if source == nil {
		source = newSourceFactory(logger, recorder).build(cfg)
	}

	catalogSvc := catalog.NewService(catalog.Config{
		Source:         source,
		Sprites:        sprite.NewResolver(sprite.Config{}, recorder),
		Observer:       recorder,
		Logger:         logger,
		PageSize:       cfg.Browse.PageSize,
		InitialVisible: cfg.Browse.InitialVisible,
		Step:           cfg.Browse.Step,
	})
	teamsSvc := teamsapp.NewService(export.NewWriter(cfg.Export.Dir), recorder, logger)

	var warmer *prefetch.Warmer
	if cfg.Prefetch.Enabled {
		warmer = prefetch.New(catalogSvc.Pager(), logger, cfg.Prefetch.RetryDelay)
	}

	httpSrv := buildHTTPServer(cfg, catalogSvc, teamsSvc, warmer, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		catalogSvc:    catalogSvc,
		teamsSvc:      teamsSvc,
		warmer:        warmer,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, catalogSvc *catalog.Service, teamsSvc *teamsapp.Service, warmer *prefetch.Warmer, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := httpserver.NewHandler(catalogSvc, teamsSvc, warmer, logger)
	router := httpserver.NewRouter(handler)

	corsWrapper := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-ID"},
	})

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := httpserver.LoggingMiddleware(logger, recorder, corsWrapper.Handler(router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the warmup loop and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.warmer != nil {
		s.warmer.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.warmer != nil {
		if err := s.warmer.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop warmup", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
