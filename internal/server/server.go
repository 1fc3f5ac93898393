package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/namousaymane/KooraGoal/internal/app/football"
	"github.com/namousaymane/KooraGoal/internal/cache"
	"github.com/namousaymane/KooraGoal/internal/config"
	httpserver "github.com/namousaymane/KooraGoal/internal/http"
	"github.com/namousaymane/KooraGoal/internal/http/handlers"
	"github.com/namousaymane/KooraGoal/internal/http/middleware"
	"github.com/namousaymane/KooraGoal/internal/kvstore"
	"github.com/namousaymane/KooraGoal/internal/logging"
	"github.com/namousaymane/KooraGoal/internal/metrics"
	"github.com/namousaymane/KooraGoal/internal/providers"
	"github.com/namousaymane/KooraGoal/internal/timeutil"
	"github.com/namousaymane/KooraGoal/internal/warmer"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         kvstore.Store
	closeStore    func() error
	service       *football.Service
	warmer        *warmer.Warmer
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New wires config, cache store, upstream fetcher, cache manager, query service and router.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithFetcher(ctx, cfg, logger, nil, nil)
}

// newServerWithFetcher lets tests inject the upstream and the recorder.
func newServerWithFetcher(ctx context.Context, cfg config.Config, logger *slog.Logger, fetcher providers.Fetcher, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	store, closeStore, err := buildStore(ctx, cfg, logger)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(ctx)
		}
		return nil, err
	}

	factory := newProviderFactory(logger, recorder)
	if fetcher == nil {
		fetcher = factory.build(cfg)
	} else {
		fetcher = factory.wrap(fetcher)
	}
	logging.Info(logger, "upstream selected", slog.String(logging.FieldProvider, cfg.ProviderName()))

	loc, err := timeutil.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Warn(logger, "unknown timezone, using UTC", slog.Any("error", err))
		loc = time.UTC
	}
	manager := cache.NewManager(store, fetcher, cache.WithLogger(logger), cache.WithRecorder(recorder))
	svc := football.NewService(manager, loc, football.WithLogger(logger))

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         store,
		closeStore:    closeStore,
		service:       svc,
		warmer:        warmer.New(svc, logger, cfg.Store.WarmInterval),
		httpServer:    buildHTTPServer(cfg, svc, store, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, closeStore func() error) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		closeStore: closeStore,
	}
}

func buildHTTPServer(cfg config.Config, svc *football.Service, store kvstore.Store, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	ready := func(ctx context.Context) error { return kvstore.Ping(ctx, store) }
	handler := handlers.NewHandler(svc, logger, ready)

	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(recorder, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin, cfg.CORSOrigins)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.warmer.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.warmer.Stop()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", slog.Any("error", err))
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", slog.Any("error", err))
		}
	}

	// In-flight requests are drained above, so the store can be released.
	if s.closeStore != nil {
		if err := s.closeStore(); err != nil {
			logging.Warn(s.logger, "cache store close failed", slog.Any("error", err))
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any("error", err))
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

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", slog.Any("error", err))
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
