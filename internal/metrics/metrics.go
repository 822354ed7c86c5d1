// Package metrics exports navigation counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yardimci/pageroute"
)

// Outcome label values.
const (
	OutcomeRender        = "render"
	OutcomeRedirect      = "redirect"
	OutcomeGuardRedirect = "guard_redirect"
)

// Navigations counts navigations by route path and outcome.
type Navigations struct {
	total *prometheus.CounterVec
}

var _ pageroute.Observer = (*Navigations)(nil)

// New registers the navigation counter with reg.
func New(reg prometheus.Registerer) *Navigations {
	n := &Navigations{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asocialoud_navigations_total",
				Help: "Total number of page navigations by route and outcome",
			},
			[]string{"route", "outcome"},
		),
	}
	reg.MustRegister(n.total)
	return n
}

// Navigated implements pageroute.Observer. The route label is the matched
// route pattern, so unknown paths all count under "*".
func (n *Navigations) Navigated(_ string, res pageroute.Resolution, d pageroute.Decision) {
	outcome := OutcomeRender
	switch {
	case res.IsRedirect():
		outcome = OutcomeRedirect
	case !d.IsProceed():
		outcome = OutcomeGuardRedirect
	}
	n.total.WithLabelValues(res.Route.Path, outcome).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
