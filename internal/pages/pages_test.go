package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yardimci/pageroute"
)

func testContext() context.Context {
	table := pageroute.MustTable([]pageroute.Route{
		{Path: "/", Name: NameWelcome, Component: Welcome()},
		{Path: "/register", Name: NameRegister, Component: Register()},
		{Path: "/login", Name: NameLogin, Component: Login()},
		{Path: "/feed", Name: NameMemberArea, Component: MemberArea()},
		{Path: pageroute.Wildcard, Redirect: "/"},
	})
	return pageroute.WithTable(context.Background(), table)
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(testContext(), &buf))
	return buf.String()
}

func TestWelcome(t *testing.T) {
	html := render(t, Welcome())
	assert.Contains(t, html, "<title>Welcome to asocialoud</title>")
	assert.Contains(t, html, `<a href="/register">Register</a>`)
	assert.Contains(t, html, `<a href="/login">Login</a>`)
}

func TestRegister(t *testing.T) {
	html := render(t, Register())
	assert.Contains(t, html, "<h1>Join asocialoud</h1>")
	assert.Contains(t, html, `<a href="/login">Login</a>`)
}

func TestLogin(t *testing.T) {
	html := render(t, Login())
	assert.Contains(t, html, `<form method="post" action="/session">`)
	assert.Contains(t, html, `name="member"`)
}

func TestMemberArea(t *testing.T) {
	html := render(t, MemberArea())
	assert.Contains(t, html, "<h1>Your feed</h1>")
	assert.Contains(t, html, `action="/session/delete"`)
}

func TestPages_NeedTable(t *testing.T) {
	var buf bytes.Buffer
	err := Welcome().Render(context.Background(), &buf)
	assert.EqualError(t, err, "urlfor: route table not found in context")
}
