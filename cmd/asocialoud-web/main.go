package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "asocialoud-web",
		Short: "The asocialoud front-end page server",
		Long: `asocialoud-web serves the asocialoud pages.

Requests for /, /register, /login and /feed render their page; any
other path is redirected to /. With guard.enabled set, /feed requires
a logged in member and sends everyone else to the login page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.toml", "path to the TOML configuration file")
	rootCmd.PersistentFlags().Bool("lenient", false, "match paths case-insensitively and ignore trailing slashes")

	rootCmd.AddCommand(
		serveCmd(),
		routesCmd(),
		resolveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
