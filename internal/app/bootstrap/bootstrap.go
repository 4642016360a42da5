package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	barengine "votebar/contexts/voting/bar-engine"
	"votebar/contexts/voting/bar-engine/adapters/memory"
	"votebar/internal/platform/config"
	"votebar/internal/platform/httpserver"
	"votebar/internal/platform/metrics"

	"golang.org/x/sync/errgroup"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

// shutdownGrace bounds how long in-flight requests may drain after the
// process receives a stop signal.
const shutdownGrace = 10 * time.Second

type APIApp struct {
	server        *httpserver.Server
	engine        barengine.Module
	sweepInterval time.Duration
	logger        *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel).With("service", cfg.ServiceName, "process", "api")

	registry := memory.NewRegistry()
	engine := barengine.NewModule(barengine.Dependencies{
		Registry:       registry,
		Clock:          registry,
		IDGen:          registry,
		Logger:         logger,
		DefaultRoomTTL: cfg.DefaultRoomTTL,
		OnEvicted: func(count int) {
			metrics.RoomsEvicted.Add(float64(count))
		},
	})

	server := httpserver.New(engine, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:        server,
		engine:        engine,
		sweepInterval: cfg.SweepInterval,
		logger:        logger,
	}, nil
}

// Run drives the HTTP server and the room expiry sweep together. The sweep
// schedule lives here, not inside the engine, so the host decides the
// policy and owns cancellation.
func (a *APIApp) Run(ctx context.Context) error {
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"sweep_interval", a.sweepInterval.String(),
	)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		// Shutdown unblocks the Start goroutine above; without it Wait
		// would never return after the signal context cancels.
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})
	group.Go(func() error {
		ticker := time.NewTicker(a.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
			if err := a.engine.Sweeper.RunOnce(ctx); err != nil {
				return err
			}
		}
	})
	return group.Wait()
}

func newLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.TrimSpace(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
