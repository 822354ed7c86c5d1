package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yardimci/pageroute"
	"github.com/yardimci/pageroute/internal/routes"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), pageroute.PrintRoutes(routes.New(tableOptions(cmd)...)))
			return nil
		},
	}
}

func resolveCmd() *cobra.Command {
	var loggedIn bool
	cmd := &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Show what each path resolves to",
		Long: `Resolve each path against the route table and print the result.

The guard decision is shown as if the guard were enabled, using
--logged-in as the visitor's login state.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := routes.New(tableOptions(cmd)...)
			for _, path := range args {
				res := table.Resolve(path)
				if res.IsRedirect() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, res)
					continue
				}
				d := pageroute.Guard(res.Route.Meta, loggedIn)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tguard: %s\n", path, res, d)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&loggedIn, "logged-in", false, "evaluate the guard for a logged in visitor")
	return cmd
}
