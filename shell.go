package pageroute

import (
	"cmp"
	"fmt"
	"log/slog"
	"net/http"
)

// MiddlewareFunc wraps the handler serving route.
type MiddlewareFunc func(next http.Handler, route Route) http.Handler

// Observer is told about every navigation the shell handles.
type Observer interface {
	Navigated(path string, res Resolution, d Decision)
}

// Shell serves a Table over HTTP. Matched routes render their component,
// unmatched paths are redirected to the wildcard target.
type Shell struct {
	table       *Table
	guard       *AuthGuard
	logger      *slog.Logger
	observer    Observer
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc

	handlers []http.Handler
	fallback http.Handler
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithGuard installs an auth guard consulted before rendering routes that
// require authentication. Without it every route renders.
func WithGuard(g *AuthGuard) ShellOption {
	return func(s *Shell) {
		s.guard = g
	}
}

func WithLogger(logger *slog.Logger) ShellOption {
	return func(s *Shell) {
		s.logger = logger
	}
}

func WithObserver(o Observer) ShellOption {
	return func(s *Shell) {
		s.observer = o
	}
}

// WithErrorHandler sets the handler for render and redirect failures.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) ShellOption {
	return func(s *Shell) {
		s.onError = onError
	}
}

// WithMiddlewares wraps every route handler, the wildcard included. The first
// middleware given is the outermost.
func WithMiddlewares(middlewares ...MiddlewareFunc) ShellOption {
	return func(s *Shell) {
		s.middlewares = append(s.middlewares, middlewares...)
	}
}

// NewShell builds the handlers for every route in t.
func NewShell(t *Table, options ...ShellOption) *Shell {
	s := &Shell{table: t}
	for _, opt := range options {
		opt(s)
	}
	s.logger = cmp.Or(s.logger, slog.Default())
	if s.onError == nil {
		s.onError = func(w http.ResponseWriter, r *http.Request, err error) {
			s.logger.Error("page request failed", "path", r.URL.Path, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}

	s.handlers = make([]http.Handler, len(t.routes))
	for i, route := range t.routes {
		s.handlers[i] = s.wrap(s.pageHandler(route), route)
	}
	s.fallback = s.wrap(s.redirectHandler(t.fallback), t.fallback)
	return s
}

// Table returns the table the shell serves.
func (s *Shell) Table() *Table {
	return s.table
}

// ServeHTTP resolves r.URL.Path and serves the result. Only GET and HEAD are
// accepted.
func (s *Shell) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if i := s.table.match(r.URL.Path); i >= 0 {
		s.handlers[i].ServeHTTP(w, r)
		return
	}
	s.fallback.ServeHTTP(w, r)
}

func (s *Shell) wrap(h http.Handler, route Route) http.Handler {
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		h = s.middlewares[i](h, route)
	}
	return h
}

func (s *Shell) pageHandler(route Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := Proceed()
		if s.guard != nil {
			d = s.guard.Check(r, route)
		}
		s.navigated(r, Resolution{Route: route}, d)
		if !d.IsProceed() {
			s.redirect(w, r, d.Target())
			return
		}
		s.render(w, r, route)
	})
}

func (s *Shell) redirectHandler(route Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.navigated(r, Resolution{Route: route, RedirectTo: route.Redirect}, Proceed())
		s.redirect(w, r, route.Redirect)
	})
}

func (s *Shell) navigated(r *http.Request, res Resolution, d Decision) {
	s.logger.Debug("navigation", "path", r.URL.Path, "resolution", res.String(), "decision", d.String())
	if s.observer != nil {
		s.observer.Navigated(r.URL.Path, res, d)
	}
}

func (s *Shell) redirect(w http.ResponseWriter, r *http.Request, target string) {
	if err := redirect(w, r, target); err != nil {
		s.onError(w, r, fmt.Errorf("redirect to %s: %w", target, err))
	}
}

func (s *Shell) render(w http.ResponseWriter, r *http.Request, route Route) {
	ctx := WithTable(r.Context(), s.table)
	bw := newBuffered(w)
	if err := route.Component.Render(ctx, bw); err != nil {
		bw.discard()
		s.onError(w, r, fmt.Errorf("render %s: %w", route.Name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := retargetBody(w, r); err != nil {
		bw.discard()
		s.logger.Error("writing htmx headers failed", "path", r.URL.Path, "error", err)
		return
	}
	if err := bw.close(); err != nil {
		s.logger.Error("writing page failed", "path", r.URL.Path, "error", err)
	}
}
