package pageroute

import "maps"

// Resolution is the outcome of resolving a path: either a matched route to
// render, or a redirect target.
type Resolution struct {
	Route      Route
	RedirectTo string
}

// IsRedirect reports whether the resolution asks for a redirect instead of a
// render.
func (r Resolution) IsRedirect() bool {
	return r.RedirectTo != ""
}

func (r Resolution) String() string {
	if r.IsRedirect() {
		return "redirect " + r.RedirectTo
	}
	return "render " + r.Route.Name
}

// Resolve returns the first route whose path equals path. When nothing
// matches it returns the wildcard redirect. It never fails and has no side
// effects.
func (t *Table) Resolve(path string) Resolution {
	if i := t.match(path); i >= 0 {
		r := t.routes[i]
		r.Meta = maps.Clone(r.Meta)
		return Resolution{Route: r}
	}
	return Resolution{Route: t.Fallback(), RedirectTo: t.fallback.Redirect}
}

// match returns the index of the first route matching path, or -1.
func (t *Table) match(path string) int {
	key := t.key(path)
	for i, r := range t.routes {
		if t.key(r.Path) == key {
			return i
		}
	}
	return -1
}
