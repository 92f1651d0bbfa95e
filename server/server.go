// Package server exposes path search over HTTP.
//
// Routes:
//
//	POST /v1/paths   solve one request; ?format=geojson returns a FeatureCollection
//	GET  /healthz    liveness probe
//	GET  /metrics    Prometheus exposition
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridstar/metrics"
)

// DefaultMaxCells bounds the grid size accepted by POST /v1/paths.
const DefaultMaxCells = 1 << 20

// Server routes HTTP requests to the path search.
type Server struct {
	router   *mux.Router
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Collector
	maxCells int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry sets the registry that search metrics are registered with and
// /metrics serves. Default: a fresh registry with process and Go collectors.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithMaxCells limits rows×cols of submitted grids.
func WithMaxCells(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxCells = n
		}
	}
}

// New builds a Server with its routes registered.
func New(opts ...Option) *Server {
	s := &Server{
		logger:   slog.Default(),
		maxCells: DefaultMaxCells,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	s.metrics = metrics.NewCollector(s.registry)

	s.router = mux.NewRouter().StrictSlash(true)
	for _, rt := range s.routes() {
		s.router.
			Methods(rt.Method).
			Path(rt.Pattern).
			Name(rt.Name).
			Handler(s.logged(rt.Name, rt.HandlerFunc))
	}

	return s
}

// Route binds a named handler to a method and path.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

func (s *Server) routes() []Route {
	return []Route{
		{"SolvePath", http.MethodPost, "/v1/paths", s.solvePath},
		{"Healthz", http.MethodGet, "/healthz", s.healthz},
		{"Metrics", http.MethodGet, "/metrics",
			promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}).ServeHTTP},
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server: listening", slog.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// statusRecorder captures the response code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logged(name string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		began := time.Now()
		next.ServeHTTP(rec, r)
		s.logger.Info("server: request",
			slog.String("route", name),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("code", rec.code),
			slog.Duration("elapsed", time.Since(began)),
		)
	})
}
