package domain

import "time"

// CatalogInfo represents a Unity Catalog catalog.
type CatalogInfo struct {
	Name      string
	Comment   string
	Owner     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SchemaInfo represents a schema within a catalog.
type SchemaInfo struct {
	Name        string
	CatalogName string
	Comment     string
	Owner       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns the two-part name "catalog.schema".
func (s SchemaInfo) FullName() string {
	return s.CatalogName + "." + s.Name
}

// TableInfo represents a table with its column metadata.
type TableInfo struct {
	Name        string
	SchemaName  string
	CatalogName string
	TableType   string // "MANAGED", "EXTERNAL", "VIEW", ...
	Columns     []ColumnInfo
	Comment     string
	Owner       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns the three-part name "catalog.schema.table".
func (t TableInfo) FullName() string {
	return t.CatalogName + "." + t.SchemaName + "." + t.Name
}

// ColumnInfo represents a column with full metadata.
type ColumnInfo struct {
	Name     string
	TypeName string
	Position int
	Comment  string
}

// TableStats summarises documentation coverage for a scan scope.
type TableStats struct {
	CatalogFilter     string
	SchemaFilter      string
	TableCount        int
	ColumnCount       int
	DocumentedTables  int
	DocumentedColumns int
	TablesWithOwner   int
}
