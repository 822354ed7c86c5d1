package pageroute

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrInvalidRoute is wrapped by every error NewTable returns.
var ErrInvalidRoute = errors.New("invalid route")

// Table is an ordered, immutable route list. Build it with NewTable.
type Table struct {
	routes   []Route
	fallback Route
	lenient  bool
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithLenientMatching makes matching case-insensitive and lets a trailing
// slash match the same route ("/Login/" resolves like "/login").
func WithLenientMatching() TableOption {
	return func(t *Table) {
		t.lenient = true
	}
}

// NewTable validates routes and returns the table built from them.
//
// Non-wildcard paths must start with "/", be unique and have a component.
// Exactly one wildcard route with a redirect target must be declared, and it
// must be the last entry.
func NewTable(routes []Route, opts ...TableOption) (*Table, error) {
	t := &Table{}
	for _, opt := range opts {
		opt(t)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("%w: empty route table", ErrInvalidRoute)
	}
	seen := make(map[string]int, len(routes))
	for i, r := range routes {
		if r.IsWildcard() {
			if i != len(routes)-1 {
				return nil, fmt.Errorf("%w: wildcard route at position %d must be declared last", ErrInvalidRoute, i)
			}
			if !strings.HasPrefix(r.Redirect, "/") {
				return nil, fmt.Errorf("%w: wildcard route needs an absolute redirect, got %q", ErrInvalidRoute, r.Redirect)
			}
			continue
		}
		if !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, r.Path)
		}
		if r.Redirect != "" {
			return nil, fmt.Errorf("%w: only the wildcard route may redirect, %s redirects to %q", ErrInvalidRoute, r.Path, r.Redirect)
		}
		if r.Component == nil {
			return nil, fmt.Errorf("%w: route %s has no component", ErrInvalidRoute, r.Path)
		}
		key := t.key(r.Path)
		if j, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: path %q at position %d duplicates position %d", ErrInvalidRoute, r.Path, i, j)
		}
		seen[key] = i
	}
	last := routes[len(routes)-1]
	if !last.IsWildcard() {
		return nil, fmt.Errorf("%w: no wildcard route declared", ErrInvalidRoute)
	}

	t.routes = make([]Route, 0, len(routes)-1)
	for _, r := range routes[:len(routes)-1] {
		r.Meta = maps.Clone(r.Meta)
		t.routes = append(t.routes, r)
	}
	last.Meta = maps.Clone(last.Meta)
	t.fallback = last
	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(routes []Route, opts ...TableOption) *Table {
	t, err := NewTable(routes, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Routes returns a copy of the table entries in declaration order, wildcard
// last.
func (t *Table) Routes() []Route {
	out := make([]Route, 0, len(t.routes)+1)
	for _, r := range t.routes {
		r.Meta = maps.Clone(r.Meta)
		out = append(out, r)
	}
	fb := t.fallback
	fb.Meta = maps.Clone(fb.Meta)
	return append(out, fb)
}

// Fallback returns the wildcard route.
func (t *Table) Fallback() Route {
	fb := t.fallback
	fb.Meta = maps.Clone(fb.Meta)
	return fb
}

// Lookup finds a non-wildcard route by component name.
func (t *Table) Lookup(name string) (Route, bool) {
	i := slices.IndexFunc(t.routes, func(r Route) bool { return r.Name == name })
	if i < 0 {
		return Route{}, false
	}
	r := t.routes[i]
	r.Meta = maps.Clone(r.Meta)
	return r, true
}

func (t *Table) key(path string) string {
	if !t.lenient {
		return path
	}
	path = strings.ToLower(path)
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		path = "/"
	}
	return path
}
