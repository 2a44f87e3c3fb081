package hygiene

import (
	"context"
	"strings"

	"uchygiene/internal/domain"
)

// CheckVoidColumns flags tables containing VOID-typed columns. A VOID column
// is produced by writing an all-null column without an explicit cast and is
// unusable by most readers. One issue is emitted per affected table with the
// column names in the detail field.
func CheckVoidColumns(ctx context.Context, client domain.MetadataReader, scope Scope) ([]Issue, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	var issues []Issue
	err := forEachTable(ctx, client, scope, func(t domain.TableInfo) error {
		detail, err := client.GetTable(ctx, t.FullName())
		if err != nil {
			return err
		}
		var void []string
		for _, col := range detail.Columns {
			if strings.EqualFold(col.TypeName, "VOID") {
				void = append(void, col.Name)
			}
		}
		if len(void) > 0 {
			issues = append(issues, Issue{
				ObjectType: ObjectTable,
				ObjectPath: t.FullName(),
				Kind:       KindVoidColumn,
				Severity:   SeverityWarning,
				Detail:     "void columns: " + strings.Join(void, ", "),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}
