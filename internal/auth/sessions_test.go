package auth

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yardimci/pageroute/internal/config"
)

func newSessions(t *testing.T) *Sessions {
	t.Helper()
	cfg := &config.SessionConfig{}
	require.NoError(t, cfg.Finalize())
	return New(cfg, "/feed", "/login", slog.New(slog.DiscardHandler))
}

func newTestServer(t *testing.T, s *Sessions) (*httptest.Server, *http.Client) {
	t.Helper()
	r := chi.NewRouter()
	s.Routes(r, "/session")
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		ok, err := s.LoggedIn(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "%t %s", ok, s.Member(r.Context()))
	})
	srv := httptest.NewServer(s.Middleware(r))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return srv, client
}

func whoami(t *testing.T, client *http.Client, srv *httptest.Server) string {
	t.Helper()
	resp, err := client.Get(srv.URL + "/whoami")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestSessions_LogInAndOut(t *testing.T) {
	srv, client := newTestServer(t, newSessions(t))

	assert.Equal(t, "false ", whoami(t, client, srv))

	resp, err := client.PostForm(srv.URL+"/session", url.Values{"member": {" alice "}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/feed", resp.Header.Get("Location"))

	assert.Equal(t, "true alice", whoami(t, client, srv))

	resp, err = client.PostForm(srv.URL+"/session/delete", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	assert.Equal(t, "false ", whoami(t, client, srv))
}

func TestSessions_EmptyMember(t *testing.T) {
	srv, client := newTestServer(t, newSessions(t))

	resp, err := client.PostForm(srv.URL+"/session", url.Values{"member": {"  "}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Equal(t, "false ", whoami(t, client, srv))
}

func TestSessions_NotLoaded(t *testing.T) {
	s := newSessions(t)
	ok, err := s.LoggedIn(httptest.NewRequest(http.MethodGet, "/feed", http.NoBody))
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessions_OtherMiddleware(t *testing.T) {
	s, other := newSessions(t), newSessions(t)
	var (
		ok  bool
		err error
	)
	h := other.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, err = s.LoggedIn(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/feed", http.NoBody))

	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNoSession)
}
