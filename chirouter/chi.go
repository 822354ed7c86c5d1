// Package chirouter mounts pageroute shells on a chi router.
package chirouter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yardimci/pageroute"
)

type chiRouter struct {
	router chi.Router
}

func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

func (r *chiRouter) HandleMethod(method, path string, handler http.Handler) {
	if method == "" {
		r.router.Handle(path, handler)
	} else {
		r.router.Method(method, path, handler)
	}
}

// HandleFallback routes both unknown paths and unsupported methods to handler.
func (r *chiRouter) HandleFallback(handler http.Handler) {
	r.router.NotFound(handler.ServeHTTP)
	r.router.MethodNotAllowed(handler.ServeHTTP)
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

var _ pageroute.Router = (*chiRouter)(nil)
