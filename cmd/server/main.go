// Package main is the entry point for the media gateway. It wires the AniList
// client, media service and HTTP adapter using samber/do v2, starts the HTTP
// server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"

	adapthttp "github.com/jsamuelsen11/media-gateway/internal/adapters/http"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/media-gateway/internal/app"
	"github.com/jsamuelsen11/media-gateway/internal/platform/config"
	"github.com/jsamuelsen11/media-gateway/internal/platform/health"
	"github.com/jsamuelsen11/media-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/media-gateway/internal/platform/logging"
	"github.com/jsamuelsen11/media-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen11/media-gateway/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "media-gateway: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := config.ProfileFromEnv("")
	if profile == "" {
		return fmt.Errorf("%s environment variable is required (e.g. local, dev, prod)", config.EnvProfile)
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(otel, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(injector, cfg, logger)

	// Invoking the server wires the whole graph up front.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[*health.Registry](injector)
	registry.Register(do.MustInvoke[*graphql.Client](injector))

	logger.Info("media gateway starting",
		slog.String("profile", profile),
		slog.String("anilist", cfg.Client.BaseURL),
		slog.Int("health_checks", registry.Len()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Info("shutdown signal received")
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), serverShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// flushTelemetry exports buffered spans and metrics before exit.
func flushTelemetry(otel *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "anilist", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*graphql.Client, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return graphql.New(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MediaAPI, error) {
		transport := do.MustInvoke[*graphql.Client](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return anilist.NewMediaAPI(transport, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MediaService, error) {
		api := do.MustInvoke[ports.MediaAPI](i)
		return app.NewMediaService(api, logger, app.WithOverviewWorkers(cfg.API.OverviewWorkers)), nil
	})

	do.Provide(injector, func(_ do.Injector) (*health.Registry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.MediaHandler, error) {
		svc := do.MustInvoke[ports.MediaService](i)
		return handlers.NewMediaHandler(svc, dto.PageLimits{
			Default: cfg.API.DefaultPerPage,
			Max:     cfg.API.MaxPerPage,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[*health.Registry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		mediaH := do.MustInvoke[*handlers.MediaHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(mediaH, healthH, middleware.Gateway(middleware.GatewayOptions{
			Logger:         logger,
			Metrics:        metrics,
			RequestTimeout: cfg.Server.WriteTimeout,
		})), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
