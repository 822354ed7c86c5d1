package pageroute

import (
	"cmp"
	"log/slog"
	"net/http"
)

// DefaultLoginPath is where AuthGuard sends visitors who are not logged in.
const DefaultLoginPath = "/login"

// Decision is the result of a navigation guard: proceed, or redirect to
// another path. The zero value proceeds.
type Decision struct {
	redirect string
}

// Proceed lets navigation continue to the requested route.
func Proceed() Decision { return Decision{} }

// RedirectTo replaces the requested route with path.
func RedirectTo(path string) Decision { return Decision{redirect: path} }

// IsProceed reports whether navigation continues unchanged.
func (d Decision) IsProceed() bool { return d.redirect == "" }

// Target returns the redirect path, or "" when d proceeds.
func (d Decision) Target() string { return d.redirect }

func (d Decision) String() string {
	if d.IsProceed() {
		return "proceed"
	}
	return "redirect " + d.redirect
}

// Guard decides a navigation from the target route's metadata and whether
// the visitor is logged in.
func Guard(meta Meta, loggedIn bool) Decision {
	return guard(meta, loggedIn, DefaultLoginPath)
}

func guard(meta Meta, loggedIn bool, loginPath string) Decision {
	if meta.RequiresAuth() && !loggedIn {
		return RedirectTo(loginPath)
	}
	return Proceed()
}

// AuthState reports whether the visitor making r is logged in.
type AuthState interface {
	LoggedIn(r *http.Request) (bool, error)
}

// AuthStateFunc adapts a function to AuthState.
type AuthStateFunc func(r *http.Request) (bool, error)

func (f AuthStateFunc) LoggedIn(r *http.Request) (bool, error) {
	return f(r)
}

// AuthGuard applies Guard using an AuthState. It always yields a decision:
// a missing state or a failing lookup counts as logged out.
type AuthGuard struct {
	state     AuthState
	loginPath string
	logger    *slog.Logger
}

// NewAuthGuard returns a guard that redirects to loginPath, or to
// DefaultLoginPath when loginPath is empty.
func NewAuthGuard(state AuthState, loginPath string, logger *slog.Logger) *AuthGuard {
	return &AuthGuard{
		state:     state,
		loginPath: cmp.Or(loginPath, DefaultLoginPath),
		logger:    cmp.Or(logger, slog.Default()),
	}
}

// LoginPath returns the redirect target for logged out visitors.
func (g *AuthGuard) LoginPath() string {
	return g.loginPath
}

// Check decides whether r may render route.
func (g *AuthGuard) Check(r *http.Request, route Route) Decision {
	if !route.Meta.RequiresAuth() {
		return Proceed()
	}
	return guard(route.Meta, g.loggedIn(r), g.loginPath)
}

func (g *AuthGuard) loggedIn(r *http.Request) bool {
	if g.state == nil {
		g.logger.Warn("auth guard has no auth state, treating visitor as logged out", "path", r.URL.Path)
		return false
	}
	ok, err := g.state.LoggedIn(r)
	if err != nil {
		g.logger.Error("auth state lookup failed, treating visitor as logged out", "path", r.URL.Path, "error", err)
		return false
	}
	return ok
}
