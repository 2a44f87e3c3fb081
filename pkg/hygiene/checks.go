package hygiene

import (
	"context"
	"strings"

	"uchygiene/internal/domain"
)

// CheckCatalogComments flags catalogs whose description is empty or absent.
func CheckCatalogComments(ctx context.Context, client domain.MetadataReader, scope Scope) ([]Issue, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	catalogs, err := catalogsInScope(ctx, client, scope)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, c := range catalogs {
		if c.Comment == "" {
			issues = append(issues, Issue{
				ObjectType: ObjectCatalog,
				ObjectPath: c.Name,
				Kind:       KindMissingDescription,
				Severity:   SeverityWarning,
			})
		}
	}
	return issues, nil
}

// CheckSchemaComments flags schemas whose description is empty or absent.
func CheckSchemaComments(ctx context.Context, client domain.MetadataReader, scope Scope) ([]Issue, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	schemas, err := schemasInScope(ctx, client, scope)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, s := range schemas {
		if s.Comment == "" {
			issues = append(issues, Issue{
				ObjectType: ObjectSchema,
				ObjectPath: s.FullName(),
				Kind:       KindMissingDescription,
				Severity:   SeverityWarning,
			})
		}
	}
	return issues, nil
}

// CheckTableComments flags tables whose description is empty or absent.
func CheckTableComments(ctx context.Context, client domain.MetadataReader, scope Scope) ([]Issue, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	var issues []Issue
	err := forEachTable(ctx, client, scope, func(t domain.TableInfo) error {
		if t.Comment == "" {
			issues = append(issues, Issue{
				ObjectType: ObjectTable,
				ObjectPath: t.FullName(),
				Kind:       KindMissingDescription,
				Severity:   SeverityWarning,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// CheckColumnComments flags tables containing undocumented columns. One issue
// is emitted per table, not per column, with the undocumented column names in
// the detail field; this keeps wide tables from flooding the output.
func CheckColumnComments(ctx context.Context, client domain.MetadataReader, scope Scope) ([]Issue, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	var issues []Issue
	err := forEachTable(ctx, client, scope, func(t domain.TableInfo) error {
		detail, err := client.GetTable(ctx, t.FullName())
		if err != nil {
			return err
		}
		var undocumented []string
		for _, col := range detail.Columns {
			if col.Comment == "" {
				undocumented = append(undocumented, col.Name)
			}
		}
		if len(undocumented) > 0 {
			issues = append(issues, Issue{
				ObjectType: ObjectTable,
				ObjectPath: t.FullName(),
				Kind:       KindMissingDescription,
				Severity:   SeverityInfo,
				Detail:     "undocumented columns: " + strings.Join(undocumented, ", "),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// CheckTableOwners flags tables with no owner assigned.
func CheckTableOwners(ctx context.Context, client domain.MetadataReader, scope Scope) ([]Issue, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	var issues []Issue
	err := forEachTable(ctx, client, scope, func(t domain.TableInfo) error {
		if t.Owner == "" {
			issues = append(issues, Issue{
				ObjectType: ObjectTable,
				ObjectPath: t.FullName(),
				Kind:       KindMissingOwner,
				Severity:   SeverityWarning,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// CheckEmptySchemas flags schemas that contain no tables. Workspace-managed
// information_schema entries are skipped.
func CheckEmptySchemas(ctx context.Context, client domain.MetadataReader, scope Scope) ([]Issue, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	schemas, err := schemasInScope(ctx, client, scope)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, s := range schemas {
		if isSystemSchema(s.Name) {
			continue
		}
		tables, err := client.ListTables(ctx, s.CatalogName, s.Name)
		if err != nil {
			return nil, err
		}
		if len(tables) == 0 {
			issues = append(issues, Issue{
				ObjectType: ObjectSchema,
				ObjectPath: s.FullName(),
				Kind:       KindEmptySchema,
				Severity:   SeverityInfo,
			})
		}
	}
	return issues, nil
}
