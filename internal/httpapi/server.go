// Package httpapi serves project generation over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/thellimist/apigen/internal/apispec"
	"github.com/thellimist/apigen/internal/logx"
	"github.com/thellimist/apigen/internal/metrics"
	"github.com/thellimist/apigen/internal/project"
)

// DefaultMaxUploadBytes bounds request bodies when Config leaves it unset.
const DefaultMaxUploadBytes = 10 << 20

// Generator creates a project from specs.
type Generator interface {
	Generate(ctx context.Context, specs []apispec.EndpointSpec, baseName string) (*project.Result, error)
}

// Config holds the server's collaborators.
type Config struct {
	Generator      Generator
	Metrics        *metrics.Metrics
	MCP            http.Handler // Mounted at /mcp when set
	DefaultParent  string
	MaxUploadBytes int64
	Logger         *slog.Logger
}

// Server routes the generator API.
type Server struct {
	router         chi.Router
	generator      Generator
	metrics        *metrics.Metrics
	defaultParent  string
	maxUploadBytes int64
	logger         *slog.Logger
}

// New builds a Server and its routes.
func New(cfg Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		generator:      cfg.Generator,
		metrics:        cfg.Metrics,
		defaultParent:  cfg.DefaultParent,
		maxUploadBytes: cfg.MaxUploadBytes,
		logger:         cfg.Logger,
	}
	if s.maxUploadBytes <= 0 {
		s.maxUploadBytes = DefaultMaxUploadBytes
	}
	if s.logger == nil {
		s.logger = logx.Default()
	}
	s.routes(cfg.MCP)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(mcpHandler http.Handler) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	s.router.Route("/api/generator", func(r chi.Router) {
		r.Post("/fromJson", s.handleFromJSON)
		r.Post("/fromFile", s.handleFromFile)
	})

	if mcpHandler != nil {
		s.router.Handle("/mcp", mcpHandler)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"dur", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}

// ListenAndServe runs handler on addr until ctx is canceled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, readTimeout time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = logx.Default()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readTimeout,
		ReadTimeout:       readTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("stopping HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
