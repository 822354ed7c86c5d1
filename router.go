package pageroute

import (
	"net/http"
)

// Router is the surface Mount registers routes on.
type Router interface {
	HandleMethod(method, path string, handler http.Handler)
	// HandleFallback registers the handler for paths no route matched.
	HandleFallback(handler http.Handler)
}

type stdRouter struct {
	router *http.ServeMux
}

// NewRouter creates a new router that wraps http.ServeMux.
// If router is nil, it uses http.DefaultServeMux.
//
// Example:
//
//	mux := http.NewServeMux()
//	pageroute.Mount(pageroute.NewRouter(mux), shell)
func NewRouter(router *http.ServeMux) *stdRouter {
	if router == nil {
		router = http.DefaultServeMux
	}
	return &stdRouter{router: router}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if pattern == "/" {
		pattern = "/{$}"
	}
	if method != "" {
		pattern = method + " " + pattern
	}
	r.router.Handle(pattern, handler)
}

func (r *stdRouter) HandleFallback(handler http.Handler) {
	r.router.Handle("/", handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// Mount registers every route of the shell's table as a GET handler on
// router. The shell itself becomes the fallback, so paths the router cannot
// match exactly still go through resolution and end at the wildcard redirect.
//
// Routers may rewrite the path before resolution. http.ServeMux answers
// unclean paths such as "//feed" or "/x/../feed" with a 301 to the cleaned
// path, and the guard then runs on that request. chi does not clean paths,
// so the same requests reach the wildcard redirect.
func Mount(router Router, s *Shell) {
	for i, route := range s.table.routes {
		router.HandleMethod(http.MethodGet, route.Path, s.handlers[i])
	}
	router.HandleFallback(s)
}
