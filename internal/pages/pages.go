// Package pages holds the asocialoud page components.
package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/yardimci/pageroute"
)

// Page names, used as route names and for pageroute.URLFor.
const (
	NameWelcome    = "Welcome"
	NameRegister   = "Register"
	NameLogin      = "Login"
	NameMemberArea = "MemberArea"
)

// SessionPath is where the login form posts.
const SessionPath = "/session"

// Welcome is the landing page.
func Welcome() templ.Component {
	return layout("Welcome to asocialoud", func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<p>A quiet place to share what matters.</p>"); err != nil {
			return err
		}
		return nav(ctx, w, NameRegister, NameLogin)
	})
}

// Register is the sign-up page. Accounts are created by the members service.
func Register() templ.Component {
	return layout("Join asocialoud", func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<p>Pick a member name and create your account.</p>`); err != nil {
			return err
		}
		return nav(ctx, w, NameLogin, NameWelcome)
	})
}

// Login is the sign-in page.
func Login() templ.Component {
	return layout("Log in", func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form method="post" action="%s">`+
			`<label>Member <input name="member" required></label>`+
			`<button type="submit">Log in</button></form>`, templ.EscapeString(SessionPath))
		if err != nil {
			return err
		}
		return nav(ctx, w, NameRegister, NameWelcome)
	})
}

// MemberArea is the members-only feed.
func MemberArea() templ.Component {
	return layout("Your feed", func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p>Nothing new yet.</p>`+
			`<form method="post" action="%s"><button type="submit">Log out</button></form>`,
			templ.EscapeString(SessionPath+"/delete"))
		return err
	})
}

func layout(title string, body templ.ComponentFunc) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := templ.EscapeString(title)
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<title>%s</title></head><body><h1>%s</h1>`, t, t); err != nil {
			return err
		}
		if err := body(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func nav(ctx context.Context, w io.Writer, names ...string) error {
	if _, err := io.WriteString(w, "<nav>"); err != nil {
		return err
	}
	for _, name := range names {
		href, err := pageroute.URLFor(ctx, name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<a href="%s">%s</a> `, templ.EscapeString(href), templ.EscapeString(name)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</nav>")
	return err
}
