// Package server wires the StudyVerse application and runs its HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncobase/studyverse/config"
	"github.com/ncobase/studyverse/data"
	"github.com/ncobase/studyverse/handler"
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/logging/observes"
	"github.com/ncobase/studyverse/middleware"
	"github.com/ncobase/studyverse/net/resp"
	"github.com/ncobase/studyverse/security/jwt"
	"github.com/ncobase/studyverse/service"
	"github.com/ncobase/studyverse/version"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 30 * time.Second

// App represents the main application.
type App struct {
	config  *config.Config
	logger  *logger.Logger
	data    *data.Data
	service *service.Service
	handler *handler.Handler
	server  *http.Server
}

// New creates the application with manual dependency injection. The
// returned cleanup releases everything New opened, in reverse order.
func New(cfg *config.Config) (*App, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	// Create logger
	info := version.GetVersionInfo()
	log := logger.StdLogger()
	log.SetVersion(info.Version)
	cleanLogger, err := log.Init(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	cleanups = append(cleanups, cleanLogger)

	flush, err := observes.NewSentry(&observes.SentryOptions{
		Dsn:         cfg.Observes.Sentry.Endpoint,
		Name:        cfg.AppName,
		Release:     info.Version,
		Environment: sentryEnvironment(cfg),
		SampleRate:  cfg.Observes.Sentry.SampleRate,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to init sentry: %w", err)
	}
	cleanups = append(cleanups, flush)

	shutdownTracer, err := observes.NewTracer(context.Background(), &observes.TracerOption{
		URL:                cfg.Observes.Tracer.Endpoint,
		Name:               cfg.AppName,
		Version:            info.Version,
		Revision:           info.Revision,
		Environment:        cfg.RunMode,
		SamplingRate:       cfg.Observes.Tracer.SamplingRate,
		BatchTimeout:       cfg.Observes.Tracer.BatchTimeout,
		ExportTimeout:      cfg.Observes.Tracer.ExportTimeout,
		MaxExportBatchSize: cfg.Observes.Tracer.MaxExportBatchSize,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to init tracer: %w", err)
	}
	cleanups = append(cleanups, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			log.Warn(ctx, "failed to shutdown tracer", "error", err)
		}
	})

	// Create data layer
	dataLayer, err := data.New(cfg.Data, log)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create data layer: %w", err)
	}
	cleanups = append(cleanups, func() {
		if err := dataLayer.Close(); err != nil {
			log.Error(context.Background(), "failed to close data layer", "error", err)
		}
	})

	if cfg.Auth.JWT.Secret == "" {
		cleanup()
		return nil, nil, errors.New("auth.jwt.secret is required")
	}
	tokens := jwt.NewTokenManager(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Expire)

	svc := service.NewService(dataLayer, tokens, log, service.Options{Location: cfg.Location()})
	gate := middleware.Authenticate(tokens, svc.User, log)

	app := &App{
		config:  cfg,
		logger:  log,
		data:    dataLayer,
		service: svc,
		handler: handler.NewHandler(svc, dataLayer, gate, log),
	}

	cfg.Watch(func(next *config.Config) {
		if next.Logger.Level > 0 {
			log.SetLevel(logrus.Level(next.Logger.Level))
			log.Info(context.Background(), "log level reloaded", "level", next.Logger.Level)
		}
	})

	return app, cleanup, nil
}

func sentryEnvironment(cfg *config.Config) string {
	if cfg.Observes.Sentry.Environment != "" {
		return cfg.Observes.Sentry.Environment
	}
	return cfg.RunMode
}

// Router builds the gin engine with the middleware chain and all routes.
func (a *App) Router() *gin.Engine {
	if a.config.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(
		middleware.Trace(),
		middleware.Recovery(a.logger),
		middleware.Logger(a.logger),
		middleware.CORS(a.config.Server.CORS.AllowedOrigins),
	)
	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotFound("Not found"))
	})

	a.handler.RegisterRoutes(r)
	return r
}

// Run serves until ctx is done or SIGINT/SIGTERM arrives, then shuts down
// gracefully.
func (a *App) Run(ctx context.Context) error {
	addr := a.config.Server.Addr()
	a.server = &http.Server{
		Addr:         addr,
		Handler:      a.Router(),
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(context.Background(), "Starting server", "addr", addr, "driver", a.config.Data.Driver)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-errCh:
		if ok {
			a.logger.Error(context.Background(), "Server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info(context.Background(), "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(shutdownCtx, "Server forced to shutdown", "error", err)
		return err
	}

	a.logger.Info(context.Background(), "Server exited")
	return nil
}
