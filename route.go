package pageroute

import (
	"strings"

	"github.com/a-h/templ"
)

// Wildcard is the path of the catch-all route.
const Wildcard = "*"

// MetaRequiresAuth is the meta key that marks a route as members only.
const MetaRequiresAuth = "requiresAuth"

// Meta holds arbitrary per-route metadata.
type Meta map[string]any

// RequiresAuth reports whether the requiresAuth flag is set to true.
func (m Meta) RequiresAuth() bool {
	v, ok := m[MetaRequiresAuth].(bool)
	return ok && v
}

// Route maps a path to the page component rendered for it.
//
// The wildcard route has Path [Wildcard] and a Redirect target instead of a
// component.
type Route struct {
	Path      string
	Name      string
	Component templ.Component
	Redirect  string
	Meta      Meta
}

// IsWildcard reports whether r is the catch-all route.
func (r Route) IsWildcard() bool {
	return r.Path == Wildcard
}

func (r Route) String() string {
	var sb strings.Builder
	sb.WriteString(r.Path)
	if r.IsWildcard() {
		sb.WriteString(" -> redirect " + r.Redirect)
		return sb.String()
	}
	sb.WriteString(" -> " + r.Name)
	if r.Meta.RequiresAuth() {
		sb.WriteString(" (requiresAuth)")
	}
	return sb.String()
}
