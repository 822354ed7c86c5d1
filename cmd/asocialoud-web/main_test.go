package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	root := &cobra.Command{Use: "asocialoud-web"}
	root.PersistentFlags().StringP("config", "c", "config.toml", "")
	root.PersistentFlags().Bool("lenient", false, "")
	root.AddCommand(cmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestResolveCmd(t *testing.T) {
	out := execute(t, resolveCmd(), "resolve", "/", "/feed", "/nonexistent")
	assert.Equal(t, "/\trender Welcome\tguard: proceed\n"+
		"/feed\trender MemberArea\tguard: redirect /login\n"+
		"/nonexistent\tredirect /\n", out)
}

func TestResolveCmd_LoggedIn(t *testing.T) {
	out := execute(t, resolveCmd(), "resolve", "--logged-in", "/feed")
	assert.Equal(t, "/feed\trender MemberArea\tguard: proceed\n", out)
}

func TestResolveCmd_Lenient(t *testing.T) {
	out := execute(t, resolveCmd(), "--lenient", "resolve", "/Login/")
	assert.Equal(t, "/Login/\trender Login\tguard: proceed\n", out)
}

func TestRoutesCmd(t *testing.T) {
	out := execute(t, routesCmd(), "routes")
	assert.Contains(t, out, "/feed      MemberArea  true")
	assert.Contains(t, out, "*          redirect /  -")
}
