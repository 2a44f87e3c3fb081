package hygiene

import (
	"context"
	"strings"

	"uchygiene/internal/domain"
)

// Scope narrows which objects a check visits. Zero value means the whole
// workspace. A schema filter is only meaningful inside one catalog, so
// Schema without Catalog is rejected rather than silently ignored.
type Scope struct {
	Catalog string
	Schema  string
}

// Validate rejects ambiguous scopes before any remote call is made.
func (s Scope) Validate() error {
	if s.Schema != "" && s.Catalog == "" {
		return domain.ErrValidation("schema filter %q requires a catalog filter", s.Schema)
	}
	return nil
}

// catalogsInScope lists catalogs, restricted to the scoped one if set.
// A named catalog that does not exist is a NotFoundError.
func catalogsInScope(ctx context.Context, client domain.MetadataReader, scope Scope) ([]domain.CatalogInfo, error) {
	catalogs, err := client.ListCatalogs(ctx)
	if err != nil {
		return nil, err
	}
	if scope.Catalog == "" {
		return catalogs, nil
	}
	for _, c := range catalogs {
		if c.Name == scope.Catalog {
			return []domain.CatalogInfo{c}, nil
		}
	}
	return nil, domain.ErrNotFound("catalog %q not found", scope.Catalog)
}

// schemasInScope lists schemas across the scoped catalogs, restricted to the
// scoped schema if set. A named schema that does not exist is a NotFoundError.
func schemasInScope(ctx context.Context, client domain.MetadataReader, scope Scope) ([]domain.SchemaInfo, error) {
	catalogs, err := catalogsInScope(ctx, client, scope)
	if err != nil {
		return nil, err
	}

	var out []domain.SchemaInfo
	for _, c := range catalogs {
		schemas, err := client.ListSchemas(ctx, c.Name)
		if err != nil {
			return nil, err
		}
		for _, s := range schemas {
			if scope.Schema != "" && s.Name != scope.Schema {
				continue
			}
			out = append(out, s)
		}
	}
	if scope.Schema != "" && len(out) == 0 {
		return nil, domain.ErrNotFound("schema %q not found in catalog %q", scope.Schema, scope.Catalog)
	}
	return out, nil
}

// forEachTable visits every table in scope, in listing order.
func forEachTable(ctx context.Context, client domain.MetadataReader, scope Scope, fn func(domain.TableInfo) error) error {
	schemas, err := schemasInScope(ctx, client, scope)
	if err != nil {
		return err
	}
	for _, s := range schemas {
		tables, err := client.ListTables(ctx, s.CatalogName, s.Name)
		if err != nil {
			return err
		}
		for _, t := range tables {
			if err := fn(t); err != nil {
				return err
			}
		}
	}
	return nil
}

// isSystemSchema reports whether a schema is workspace-managed and therefore
// exempt from the empty-schema check.
func isSystemSchema(name string) bool {
	return strings.HasPrefix(name, "information_schema")
}
