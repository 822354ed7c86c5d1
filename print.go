package pageroute

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PrintRoutes renders t as an aligned, human readable listing in declaration
// order.
func PrintRoutes(t *Table) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tPAGE\tREQUIRES AUTH")
	for _, r := range t.Routes() {
		if r.IsWildcard() {
			fmt.Fprintf(tw, "%s\tredirect %s\t-\n", r.Path, r.Redirect)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%t\n", r.Path, r.Name, r.Meta.RequiresAuth())
	}
	tw.Flush()
	return sb.String()
}
