package main

import (
	"context"
	"countries/internal/api"
	"countries/internal/api/handler/v1handler"
	"countries/internal/config"
	"countries/internal/worker"
	"countries/pkg/countrysource/restcountries"
	"countries/pkg/logger"
	"countries/pkg/metrics"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, a *app, mp metric.MeterProvider) func(ctx context.Context) {
	deps := api.Deps{
		Deps: v1handler.Deps{
			Countries:   a.countries,
			Preferences: a.preferences,
		},
		MeterProvider: mp,
	}
	if a.pg != nil {
		deps.Health = a.pg.Ping
	}

	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupWorker starts the River client when a database is configured.
func setupWorker(ctx context.Context, cfg *config.Config, a *app) func(ctx context.Context) {
	if a.pg == nil {
		logger.Info(ctx, "database is not configured, background worker disabled")

		return func(context.Context) {}
	}

	options := worker.Options{}
	if cfg.Snapshot.Enabled {
		options.SnapshotInterval = cfg.Snapshot.Interval
	}
	riverClient, err := worker.Start(ctx, a.pg.Pool, a.countries, options)
	if err != nil {
		logger.Fatal(ctx, "could not start worker", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping worker...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop worker", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			a, err := newApp(ctx, cfg, restcountries.WithMeterProvider(mp))
			if err != nil {
				logger.Fatal(ctx, "could not create services", zap.Error(err))
			}
			defer a.close()

			stopWorker := setupWorker(ctx, cfg, a)
			stopWebserver := setupServer(ctx, cfg, a, mp)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
