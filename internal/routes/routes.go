// Package routes declares the asocialoud route table.
package routes

import (
	"github.com/yardimci/pageroute"
	"github.com/yardimci/pageroute/internal/pages"
)

// New builds the route table. Call it once at startup and share the result.
func New(opts ...pageroute.TableOption) *pageroute.Table {
	return pageroute.MustTable([]pageroute.Route{
		{Path: "/", Name: pages.NameWelcome, Component: pages.Welcome()},
		{Path: "/register", Name: pages.NameRegister, Component: pages.Register()},
		{Path: "/login", Name: pages.NameLogin, Component: pages.Login()},
		{Path: "/feed", Name: pages.NameMemberArea, Component: pages.MemberArea(),
			Meta: pageroute.Meta{pageroute.MetaRequiresAuth: true}},

		// otherwise redirect to home
		{Path: pageroute.Wildcard, Redirect: "/"},
	}, opts...)
}
