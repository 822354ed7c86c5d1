// Package server wires the route table, sessions and metrics into the
// asocialoud HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/yardimci/pageroute"
	"github.com/yardimci/pageroute/chirouter"
	"github.com/yardimci/pageroute/internal/auth"
	"github.com/yardimci/pageroute/internal/config"
	"github.com/yardimci/pageroute/internal/metrics"
	"github.com/yardimci/pageroute/internal/pages"
)

// Server is the asocialoud front-end server.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	handler http.Handler
}

// New builds the HTTP handler serving table. Metrics are registered with reg
// when enabled in cfg.
func New(cfg *config.Config, table *pageroute.Table, logger *slog.Logger, reg *prometheus.Registry) *Server {
	home := "/"
	if r, ok := table.Lookup(pages.NameMemberArea); ok {
		home = r.Path
	}
	sessions := auth.New(&cfg.Session, home, cfg.Guard.LoginPath, logger)

	opts := []pageroute.ShellOption{
		pageroute.WithLogger(logger),
		pageroute.WithErrorHandler(errorHandler(logger)),
	}
	if cfg.Guard.Enabled {
		logger.Info("navigation guard enabled", "login_path", cfg.Guard.LoginPath)
		opts = append(opts, pageroute.WithGuard(pageroute.NewAuthGuard(sessions, cfg.Guard.LoginPath, logger)))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	if cfg.Metrics.Enabled {
		opts = append(opts, pageroute.WithObserver(metrics.New(reg)))
		r.Method(http.MethodGet, cfg.Metrics.Path, metrics.Handler(reg))
	}
	sessions.Routes(r, pages.SessionPath)

	shell := pageroute.NewShell(table, opts...)
	pageroute.Mount(chirouter.NewChiRouter(r), shell)

	return &Server{
		cfg:     cfg,
		logger:  logger,
		handler: sessions.Middleware(r),
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeoutDuration())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func errorHandler(logger *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("page request failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
