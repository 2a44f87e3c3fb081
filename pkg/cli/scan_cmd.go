package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"uchygiene/pkg/hygiene"
	"uchygiene/pkg/report"
)

// bindScopeFlags registers the shared --catalog/--schema scope flags.
func bindScopeFlags(fs *pflag.FlagSet, scope *hygiene.Scope) {
	fs.StringVar(&scope.Catalog, "catalog", "", "Limit the scan to one catalog")
	fs.StringVar(&scope.Schema, "schema", "", "Limit the scan to one schema (requires --catalog)")
}

func newScanCmd(opts *rootOptions) *cobra.Command {
	var (
		scope    hygiene.Scope
		checks   []string
		severity string
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run hygiene checks against the workspace",
		Long: `Runs the documentation and ownership checks over the scoped catalog
objects and reports every issue found. Exit code is 1 when any warning-level
issue is reported, 0 when the scan is clean.`,
		Example: `  # Scan the whole workspace
  uchygiene scan

  # Scan one catalog, machine-readable
  uchygiene scan --catalog prod --output json

  # Only table-level checks, warnings and up
  uchygiene scan --check table_comment --check table_owner --severity warning`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if severity != "" {
				switch hygiene.Severity(severity) {
				case hygiene.SeverityInfo, hygiene.SeverityWarning, hygiene.SeverityError:
				default:
					return fmt.Errorf("unknown severity %q (use: info, warning, error)", severity)
				}
			}

			client, err := opts.newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var issues []hygiene.Issue
			if len(checks) == 0 {
				issues, err = hygiene.RunAllChecks(ctx, client, scope)
				if err != nil {
					return err
				}
			} else {
				for _, name := range checks {
					def, ok := hygiene.LookupCheck(name)
					if !ok {
						return fmt.Errorf("unknown check %q (run 'uchygiene checks' to list them)", name)
					}
					found, err := def.Run(ctx, client, scope)
					if err != nil {
						return err
					}
					issues = append(issues, found...)
				}
			}

			if severity != "" {
				issues = hygiene.Filter(issues, hygiene.Severity(severity))
			}

			if opts.output == "json" {
				out, err := report.JSONReporter{Indent: 2}.Render(issues)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, out)
			} else {
				if err := report.NewConsoleReporter(os.Stdout).Report(issues); err != nil {
					return err
				}
			}

			if hygiene.HasWarnings(issues) {
				return errIssuesFound
			}
			return nil
		},
	}

	bindScopeFlags(cmd.Flags(), &scope)
	cmd.Flags().StringArrayVar(&checks, "check", nil,
		"Run only the named check (repeatable); default runs "+strings.Join(defaultCheckNames(), ", "))
	cmd.Flags().StringVar(&severity, "severity", "", "Minimum severity to report: info, warning, error")

	return cmd
}

func defaultCheckNames() []string {
	var names []string
	for _, def := range hygiene.RegisteredChecks() {
		if def.Default {
			names = append(names, def.Name)
		}
	}
	return names
}
