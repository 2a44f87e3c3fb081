package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uchygiene/pkg/hygiene"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var scope hygiene.Scope

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show documentation coverage for the scoped tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}

			stats, err := hygiene.TableStatistics(cmd.Context(), client, scope)
			if err != nil {
				return err
			}

			if opts.output == "json" {
				return PrintJSON(os.Stdout, map[string]interface{}{
					"catalog_filter":     stats.CatalogFilter,
					"schema_filter":      stats.SchemaFilter,
					"table_count":        stats.TableCount,
					"column_count":       stats.ColumnCount,
					"documented_tables":  stats.DocumentedTables,
					"documented_columns": stats.DocumentedColumns,
					"tables_with_owner":  stats.TablesWithOwner,
				})
			}

			scopeLabel := "workspace"
			if stats.CatalogFilter != "" {
				scopeLabel = stats.CatalogFilter
				if stats.SchemaFilter != "" {
					scopeLabel += "." + stats.SchemaFilter
				}
			}
			fmt.Fprintf(os.Stdout, "Scope: %s\n", scopeLabel)
			fmt.Fprintf(os.Stdout, "Tables: %d (%d documented, %d with owner)\n",
				stats.TableCount, stats.DocumentedTables, stats.TablesWithOwner)
			fmt.Fprintf(os.Stdout, "Columns: %d (%d documented)\n",
				stats.ColumnCount, stats.DocumentedColumns)
			return nil
		},
	}

	bindScopeFlags(cmd.Flags(), &scope)

	return cmd
}
