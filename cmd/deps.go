package main

import (
	"context"
	"countries/internal/config"
	"countries/internal/countries"
	"countries/internal/preferences"
	"countries/pkg/countrysource/restcountries"
	"countries/pkg/logger"
	"countries/pkg/storage"
	"countries/pkg/storage/filestore"
	"countries/pkg/storage/postgres"
	"net/http"

	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// app holds the services shared by the commands.
type app struct {
	countries   countries.Service
	preferences preferences.Service
	// pg is nil when no database is configured.
	pg    *postgres.PgSQL
	close func()
}

// newApp builds the services from cfg. The database is opened only when it
// is configured, the restcountries client is created with opts.
func newApp(ctx context.Context, cfg *config.Config, opts ...restcountries.Option) (*app, error) {
	a := &app{close: func() {}}

	var store storage.Storage
	if cfg.DatabaseEnabled() {
		pg, closePg := getPostgres(ctx, cfg)
		a.pg, a.close, store = pg, closePg, pg
	}

	source, err := restcountries.New(&http.Client{Timeout: cfg.RestCountries.Timeout}, cfg.RestCountries.BaseURL, opts...)
	if err != nil {
		a.close()

		return nil, err //nolint: wrapcheck
	}
	a.countries = countries.New(source, store, countries.NewOptions(cfg))

	switch cfg.Preferences.Backend {
	case config.PreferencesPostgres:
		a.preferences = preferences.New(a.pg)
	default:
		fileStore, err := filestore.New(cfg.Preferences.FilePath)
		if err != nil {
			a.close()

			return nil, err //nolint: wrapcheck
		}
		a.preferences = preferences.New(fileStore)
	}

	return a, nil
}
