// Package pageroute maps request paths to page components.
//
// A [Table] is an ordered, immutable list of [Route] entries built once at
// process start. [Table.Resolve] returns the first route whose path equals the
// requested path, or the redirect of the trailing wildcard route when nothing
// matches, so every path resolves to something.
//
// A [Shell] serves a table over HTTP: matched routes render their templ
// component, the wildcard answers with a redirect, and an optional
// [AuthGuard] sends visitors of routes marked requiresAuth to the login page.
//
//	table := pageroute.MustTable([]pageroute.Route{
//	    {Path: "/", Name: "Welcome", Component: welcome},
//	    {Path: "/feed", Name: "MemberArea", Component: feed, Meta: pageroute.Meta{"requiresAuth": true}},
//	    {Path: "*", Redirect: "/"},
//	})
//	shell := pageroute.NewShell(table)
//	http.ListenAndServe(":8080", shell)
package pageroute
