package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/hyperflex/pkg/middleware"
)

// Server renders element documents over HTTP and WebSocket.
type Server struct {
	config   Config
	logger   *slog.Logger
	registry *prometheus.Registry
	tracer   trace.TracerProvider
	extra    []middleware.Middleware

	render   middleware.RenderFunc
	upgrader websocket.Upgrader
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry sets the Prometheus registry used for build metrics and
// served at the metrics path. Default: a fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used when
// tracing is enabled. Default: the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		s.tracer = tp
	}
}

// WithMiddleware adds render middleware inside the built-in ones.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(s *Server) {
		s.extra = append(s.extra, mws...)
	}
}

// New creates a Server. Unset config fields take their defaults.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{config: cfg.withDefaults()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "server")
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.config.CheckOrigin,
	}
	s.render = middleware.Chain(middleware.Build, s.renderMiddleware()...)
	s.router = s.routes()
	return s
}

func (s *Server) renderMiddleware() []middleware.Middleware {
	mws := []middleware.Middleware{middleware.Logging(s.logger)}
	if s.config.MetricsEnabled {
		mws = append(mws, middleware.Prometheus(
			middleware.WithRegistry(s.registry),
			middleware.WithNamespace(s.config.MetricsNamespace),
		))
	}
	if s.config.TracingEnabled {
		opts := []middleware.OTelOption{middleware.WithTracerName(s.config.TracerName)}
		if s.tracer != nil {
			opts = append(opts, middleware.WithTracerProvider(s.tracer))
		}
		mws = append(mws, middleware.OpenTelemetry(opts...))
	}
	return append(mws, s.extra...)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)

	r.Post("/render", s.handleRender)
	r.Get("/parse", s.handleParse)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", s.handleHealth)
	if s.config.MetricsEnabled {
		r.Method(http.MethodGet, s.config.MetricsPath,
			promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the server's http.Handler for mounting in other routers
// or for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the Prometheus registry the server reports to.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully
// within ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
		s.logger.Info("server shutdown complete")
		return nil
	}
}
