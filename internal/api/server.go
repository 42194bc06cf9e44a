// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the countries service.
package api

import (
	"context"
	"countries/internal/api/handler/v1handler"
	"countries/internal/api/specs/v1specs"
	"countries/internal/config"
	"countries/pkg/controller"
	"countries/pkg/metrics"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	timeoutBody  = `{"code":"TIMEOUT","message":"request timed out"}`
	notFoundBody = `{"code":"NOT_FOUND","message":"resource not found"}`
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer authentication for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds the handling of a single request via http.TimeoutHandler.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists the CORS origins, "*" allows any.
	AllowedOrigins []string
	// PprofEnabled mounts net/http/pprof under /debug/pprof/.
	PprofEnabled bool
}

// NewOptions maps the HTTP settings of cfg to server Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		PprofEnabled:      cfg.HTTP.PprofEnabled,
	}
}

type Deps struct {
	v1handler.Deps

	// Sec validates bearer tokens. When nil, one is built from
	// Options.SecHandlerOptions.
	Sec *v1handler.SecHandler

	// MeterProvider records the request metrics. When nil, a provider
	// exporting to the default Prometheus registry is created.
	MeterProvider metric.MeterProvider
	// Health reports whether the server's dependencies are reachable. A nil
	// Health always reports healthy.
	Health func(ctx context.Context) error
}

// NewServer wires up and returns a configured *http.Server. It serves:
//   - Prometheus metrics (MetricsPath)
//   - the embedded OpenAPI v1 spec and Swagger UI
//   - the v1 API
//   - /healthz and, when enabled, pprof
//
// Requests pass through the metrics, CORS and logging middlewares and are
// bounded by RequestTimeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	mp := deps.MeterProvider
	if mp == nil {
		sdkMP, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		mp = sdkMP
	}

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Countries Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	if deps.Sec == nil {
		secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
		if err != nil {
			return nil, fmt.Errorf("could not create sec handler: %w", err)
		}
		deps.Sec = secHandler
	}
	v1Srv, err := v1specs.NewServer(v1handler.New(deps.Deps),
		deps.Sec,
		v1specs.WithMeterProvider(mp),
		v1specs.WithPathPrefix("/v1"),
		v1specs.WithNotFound(notFound))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 server: %w", err)
	}
	mux.Handle("/v1/", v1Srv)

	mux.HandleFunc("GET /healthz", healthz(deps.Health))

	// pprof
	if opts.PprofEnabled {
		mux.Handle(controller.PprofPrefix, controller.PprofMux())
	}

	withMetrics, err := controller.WithMetrics(mp, mux)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	handler := withMetrics(mux)

	// cors
	handler = controller.WithCORS(opts.AllowedOrigins)(handler)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(notFoundBody))
}

func healthz(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if check != nil {
			if err := check(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unavailable"}`))

				return
			}
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
