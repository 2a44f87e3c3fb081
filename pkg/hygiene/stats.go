package hygiene

import (
	"context"

	"uchygiene/internal/domain"
)

// TableStatistics summarises documentation coverage for the scoped tables:
// how many tables and columns exist, and how many of each carry a description
// or an owner. It walks the same listing order as the checks.
func TableStatistics(ctx context.Context, client domain.MetadataReader, scope Scope) (domain.TableStats, error) {
	stats := domain.TableStats{
		CatalogFilter: scope.Catalog,
		SchemaFilter:  scope.Schema,
	}
	if err := scope.Validate(); err != nil {
		return stats, err
	}

	err := forEachTable(ctx, client, scope, func(t domain.TableInfo) error {
		detail, err := client.GetTable(ctx, t.FullName())
		if err != nil {
			return err
		}
		stats.TableCount++
		if detail.Comment != "" {
			stats.DocumentedTables++
		}
		if detail.Owner != "" {
			stats.TablesWithOwner++
		}
		for _, col := range detail.Columns {
			stats.ColumnCount++
			if col.Comment != "" {
				stats.DocumentedColumns++
			}
		}
		return nil
	})
	if err != nil {
		return domain.TableStats{CatalogFilter: scope.Catalog, SchemaFilter: scope.Schema}, err
	}
	return stats, nil
}
