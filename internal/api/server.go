// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the price watch service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"pricewatch/internal/api/handler/v1handler"
	"pricewatch/internal/config"
	"pricewatch/pkg/controller"
	"pricewatch/pkg/logger"
	"pricewatch/pkg/metrics"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// RiverUIPrefix is the path the River job dashboard is served under.
const RiverUIPrefix = "/riverui"

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer authentication for the runs API.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the timeout applied via http.TimeoutHandler to API requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
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
	}
}

type Deps struct {
	v1handler.Deps

	// RiverClient backs the River UI. The UI is not mounted when nil.
	RiverClient *river.Client[pgx.Tx]
	// Health reports whether the dependencies are reachable. Nil means healthy.
	Health func(ctx context.Context) error
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) fed by the OpenTelemetry exporter
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes
// - River UI, when a River client is given
// - pprof endpoints for profiling and a health check
// It also wraps the mux with CORS and logging middlewares and applies a request timeout
// to the v1 API.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// otel metrics are exported through the default prometheus registry
	if _, err := metrics.Setup(); err != nil {
		return nil, fmt.Errorf("could not setup metrics: %w", err)
	}
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Price Watch Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1Mux := http.NewServeMux()
	v1handler.New(deps.Deps).Mount(v1Mux, secHandler)
	mux.Handle("/v1/", withTimeout(v1Mux, opts.RequestTimeout))

	// river ui
	if deps.RiverClient != nil {
		uiHandler, err := riverui.NewHandler(&riverui.HandlerOpts{
			Endpoints: riverui.NewEndpoints(deps.RiverClient, nil),
			Logger:    slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
			Prefix:    RiverUIPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create river ui handler: %w", err)
		}
		if err := uiHandler.Start(ctx); err != nil {
			return nil, fmt.Errorf("could not start river ui handler: %w", err)
		}
		mux.Handle(RiverUIPrefix+"/", uiHandler)
	}

	// pprof
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if deps.Health != nil {
			if err := deps.Health(r.Context()); err != nil {
				logger.Warn(r.Context(), "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("unavailable"))

				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	})

	// cors
	handler := controller.WithCORS(mux)

	// logger
	handler = controller.WithLogger(handler)

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

func withTimeout(h http.Handler, timeout time.Duration) http.Handler {
	if timeout <= 0 {
		return h
	}

	return http.TimeoutHandler(h, timeout, `{"code":"TIMEOUT","message":"request timed out"}`)
}
