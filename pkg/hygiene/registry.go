package hygiene

import (
	"context"

	"uchygiene/internal/domain"
)

// CheckFunc is the shape every hygiene check implements.
type CheckFunc func(ctx context.Context, client domain.MetadataReader, scope Scope) ([]Issue, error)

// CheckDef describes a registered check for introspection and selection.
type CheckDef struct {
	Name        string
	Description string
	Default     bool // part of RunAllChecks
	Run         CheckFunc
}

// registry holds all checks in their fixed execution order.
var registry = []CheckDef{
	{
		Name:        "catalog_comment",
		Description: "Catalogs must have a description",
		Default:     true,
		Run:         CheckCatalogComments,
	},
	{
		Name:        "schema_comment",
		Description: "Schemas must have a description",
		Default:     true,
		Run:         CheckSchemaComments,
	},
	{
		Name:        "table_comment",
		Description: "Tables must have a description",
		Default:     true,
		Run:         CheckTableComments,
	},
	{
		Name:        "column_comment",
		Description: "Table columns should have descriptions (one issue per table)",
		Default:     true,
		Run:         CheckColumnComments,
	},
	{
		Name:        "table_owner",
		Description: "Tables must have an owner assigned",
		Default:     true,
		Run:         CheckTableOwners,
	},
	{
		Name:        "empty_schema",
		Description: "Schemas should contain at least one table",
		Default:     true,
		Run:         CheckEmptySchemas,
	},
	{
		Name:        "void_column",
		Description: "Tables should not carry VOID-typed columns",
		Default:     false,
		Run:         CheckVoidColumns,
	},
}

// RegisteredChecks returns a copy of the registry for introspection.
func RegisteredChecks() []CheckDef {
	out := make([]CheckDef, len(registry))
	copy(out, registry)
	return out
}

// LookupCheck returns the check with the given name.
func LookupCheck(name string) (CheckDef, bool) {
	for _, def := range registry {
		if def.Name == name {
			return def, true
		}
	}
	return CheckDef{}, false
}

// RunAllChecks runs the default checks in their fixed order against the same
// client and scope, concatenating results in discovery order. The first check
// failure aborts the whole aggregation; there is no partial-result suppression.
func RunAllChecks(ctx context.Context, client domain.MetadataReader, scope Scope) ([]Issue, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	var all []Issue
	for _, def := range registry {
		if !def.Default {
			continue
		}
		issues, err := def.Run(ctx, client, scope)
		if err != nil {
			return nil, err
		}
		all = append(all, issues...)
	}
	return all, nil
}
