package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uchygiene/pkg/hygiene"
)

func newChecksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List the registered hygiene checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs := hygiene.RegisteredChecks()

			if opts.output == "json" {
				type checkInfo struct {
					Name        string `json:"name"`
					Description string `json:"description"`
					Default     bool   `json:"default"`
				}
				out := make([]checkInfo, 0, len(defs))
				for _, def := range defs {
					out = append(out, checkInfo{def.Name, def.Description, def.Default})
				}
				return PrintJSON(os.Stdout, out)
			}

			for _, def := range defs {
				marker := " "
				if def.Default {
					marker = "*"
				}
				fmt.Fprintf(os.Stdout, "%s %-16s %s\n", marker, def.Name, def.Description)
			}
			fmt.Fprintln(os.Stdout, "\n* included in the default scan")
			return nil
		},
	}
}
