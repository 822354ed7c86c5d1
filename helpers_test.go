package pageroute

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

type testComponent struct {
	content string
}

func (t testComponent) Render(ctx context.Context, w io.Writer) error {
	_, err := w.Write([]byte(t.content))
	return err
}

type errorComponent struct{}

func (errorComponent) Render(ctx context.Context, w io.Writer) error {
	_, _ = w.Write([]byte("partial output"))
	return errors.New("render error")
}

var discardLogger = slog.New(slog.DiscardHandler)

// testRoutes mirrors the asocialoud table with plain components.
func testRoutes() []Route {
	return []Route{
		{Path: "/", Name: "Welcome", Component: testComponent{"welcome"}},
		{Path: "/register", Name: "Register", Component: testComponent{"register"}},
		{Path: "/login", Name: "Login", Component: testComponent{"login"}},
		{Path: "/feed", Name: "MemberArea", Component: testComponent{"feed"}, Meta: Meta{MetaRequiresAuth: true}},
		{Path: Wildcard, Redirect: "/"},
	}
}
