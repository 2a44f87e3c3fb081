package domain

import "context"

// MetadataReader is the read-only port onto the workspace metadata API.
// All hygiene checks consume this interface rather than a concrete client,
// so tests can substitute an in-memory workspace.
//
// Implementations must not cache: every call reflects current remote state.
type MetadataReader interface {
	// ListCatalogs returns all catalogs the caller can see, in API order.
	ListCatalogs(ctx context.Context) ([]CatalogInfo, error)

	// ListSchemas returns the schemas of a catalog. A catalog that does not
	// exist yields a NotFoundError.
	ListSchemas(ctx context.Context, catalogName string) ([]SchemaInfo, error)

	// ListTables returns the tables of a schema, including column metadata
	// when the API provides it. A missing catalog or schema yields a
	// NotFoundError.
	ListTables(ctx context.Context, catalogName, schemaName string) ([]TableInfo, error)

	// GetTable returns full detail, including columns, for a three-part name.
	GetTable(ctx context.Context, fullName string) (*TableInfo, error)
}
