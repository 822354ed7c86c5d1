package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/yardimci/pageroute"
)

func TestNavigations(t *testing.T) {
	reg := prometheus.NewRegistry()
	n := New(reg)

	feed := pageroute.Route{Path: "/feed", Name: "MemberArea"}
	wildcard := pageroute.Route{Path: pageroute.Wildcard, Redirect: "/"}

	n.Navigated("/feed", pageroute.Resolution{Route: feed}, pageroute.Proceed())
	n.Navigated("/feed", pageroute.Resolution{Route: feed}, pageroute.RedirectTo("/login"))
	n.Navigated("/a", pageroute.Resolution{Route: wildcard, RedirectTo: "/"}, pageroute.Proceed())
	n.Navigated("/b", pageroute.Resolution{Route: wildcard, RedirectTo: "/"}, pageroute.Proceed())

	assert.Equal(t, 1.0, testutil.ToFloat64(n.total.WithLabelValues("/feed", OutcomeRender)))
	assert.Equal(t, 1.0, testutil.ToFloat64(n.total.WithLabelValues("/feed", OutcomeGuardRedirect)))
	assert.Equal(t, 2.0, testutil.ToFloat64(n.total.WithLabelValues("*", OutcomeRedirect)))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	n := New(reg)
	n.Navigated("/", pageroute.Resolution{Route: pageroute.Route{Path: "/"}}, pageroute.Proceed())

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `asocialoud_navigations_total{outcome="render",route="/"} 1`), rec.Body.String())
}
