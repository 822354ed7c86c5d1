// Package auth keeps the logged in state of asocialoud members in a session
// cookie.
//
// Logging in trusts the submitted member name: there is no password check.
// Credentials are verified by the members service, so do not put this
// package in front of anything that needs real protection until that check
// is wired in.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/go-chi/chi/v5"
	"github.com/jackielii/ctxkey"
	"github.com/yardimci/pageroute"
	"github.com/yardimci/pageroute/internal/config"
)

const memberKey = "member"

// ErrNoSession is returned when a request did not pass through
// Sessions.Middleware.
var ErrNoSession = errors.New("session not loaded")

// Sessions tracks which member, if any, a visitor is logged in as.
type Sessions struct {
	manager *scs.SessionManager
	logger  *slog.Logger
	home    string
	login   string
}

var _ pageroute.AuthState = (*Sessions)(nil)

// loadedCtx marks requests whose session was loaded by Sessions.Middleware.
var loadedCtx = ctxkey.New[*Sessions]("auth.sessions", nil)

// New creates an in-memory session store. After logging in the visitor is
// sent to home, after a failed login or a logout to login.
func New(cfg *config.SessionConfig, home, login string, logger *slog.Logger) *Sessions {
	manager := scs.New()
	manager.Store = memstore.New()
	manager.Lifetime = cfg.LifetimeDuration()
	manager.Cookie.Name = cfg.CookieName
	manager.Cookie.HttpOnly = true
	manager.Cookie.Persist = true
	manager.Cookie.SameSite = http.SameSiteLaxMode
	manager.Cookie.Secure = cfg.Secure
	return &Sessions{manager: manager, logger: logger, home: home, login: login}
}

// Middleware loads and saves the session around next.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return s.manager.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(loadedCtx.WithValue(r.Context(), s)))
	}))
}

// LoggedIn reports whether the visitor is logged in. It returns ErrNoSession
// for requests that did not pass through this Sessions' Middleware.
func (s *Sessions) LoggedIn(r *http.Request) (bool, error) {
	if loadedCtx.Value(r.Context()) != s {
		return false, ErrNoSession
	}
	return s.manager.Exists(r.Context(), memberKey), nil
}

// Member returns the logged in member name, or "".
func (s *Sessions) Member(ctx context.Context) string {
	return s.manager.GetString(ctx, memberKey)
}

// LogIn records member as logged in, issuing a fresh session token.
func (s *Sessions) LogIn(ctx context.Context, member string) error {
	if err := s.manager.RenewToken(ctx); err != nil {
		return fmt.Errorf("renew session token: %w", err)
	}
	s.manager.Put(ctx, memberKey, member)
	return nil
}

// LogOut ends the session.
func (s *Sessions) LogOut(ctx context.Context) error {
	if err := s.manager.Destroy(ctx); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// Routes registers POST path (log in) and POST path/delete (log out). The
// router must be wrapped in Middleware. Credentials are checked by the
// members service, not here.
func (s *Sessions) Routes(r chi.Router, path string) {
	r.Route(path, func(r chi.Router) {
		r.Post("/", s.create)
		r.Post("/delete", s.destroy)
	})
}

func (s *Sessions) create(w http.ResponseWriter, r *http.Request) {
	member := strings.TrimSpace(r.PostFormValue("member"))
	if member == "" {
		http.Redirect(w, r, s.login, http.StatusSeeOther)
		return
	}
	if err := s.LogIn(r.Context(), member); err != nil {
		s.logger.Error("log in failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	s.logger.Info("member logged in", "member", member)
	http.Redirect(w, r, s.home, http.StatusSeeOther)
}

func (s *Sessions) destroy(w http.ResponseWriter, r *http.Request) {
	if err := s.LogOut(r.Context()); err != nil {
		s.logger.Error("log out failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, s.login, http.StatusSeeOther)
}
