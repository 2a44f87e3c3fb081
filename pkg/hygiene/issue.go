// Package hygiene implements documentation and ownership checks over Unity
// Catalog metadata. Each check is an independent, read-only scan over the
// injected metadata client; checks never cache, retry, or suppress errors.
package hygiene

import "fmt"

// Severity levels for hygiene issues.
type Severity string

// Severity constants. Checks emit only info and warning; error exists so
// reporters can group and count all three levels.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// sevRank maps severity to a numeric rank for comparison.
var sevRank = map[Severity]int{SeverityInfo: 0, SeverityWarning: 1, SeverityError: 2}

// ObjectType identifies the kind of catalog object an issue refers to.
type ObjectType string

// Object type constants.
const (
	ObjectCatalog ObjectType = "catalog"
	ObjectSchema  ObjectType = "schema"
	ObjectTable   ObjectType = "table"
	ObjectColumn  ObjectType = "column"
)

// IssueKind classifies what is wrong with the object.
type IssueKind string

// Issue kind constants.
const (
	KindMissingDescription IssueKind = "missing_description"
	KindMissingOwner       IssueKind = "missing_owner"
	KindEmptySchema        IssueKind = "empty_schema"
	KindVoidColumn         IssueKind = "void_column"
)

// Issue is a single detected hygiene problem on one object. Immutable once
// created; Detail is optional free text (e.g. the undocumented column names).
type Issue struct {
	ObjectType ObjectType
	ObjectPath string // fully qualified name
	Kind       IssueKind
	Severity   Severity
	Detail     string
}

// Message renders a human-readable description of the issue.
func (i Issue) Message() string {
	switch i.Kind {
	case KindMissingDescription:
		if i.Detail != "" {
			return fmt.Sprintf("%s '%s' has undocumented columns", capitalize(string(i.ObjectType)), i.ObjectPath)
		}
		return fmt.Sprintf("%s '%s' has no description", capitalize(string(i.ObjectType)), i.ObjectPath)
	case KindMissingOwner:
		return fmt.Sprintf("%s '%s' has no owner assigned", capitalize(string(i.ObjectType)), i.ObjectPath)
	case KindEmptySchema:
		return fmt.Sprintf("Schema '%s' contains no tables", i.ObjectPath)
	case KindVoidColumn:
		return fmt.Sprintf("Table '%s' has VOID-typed columns", i.ObjectPath)
	default:
		return fmt.Sprintf("%s '%s': %s", capitalize(string(i.ObjectType)), i.ObjectPath, i.Kind)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// Filter returns issues at or above the given severity, preserving order.
func Filter(issues []Issue, minSev Severity) []Issue {
	minRank := sevRank[minSev]
	var out []Issue
	for _, i := range issues {
		if sevRank[i.Severity] >= minRank {
			out = append(out, i)
		}
	}
	return out
}

// HasWarnings returns true if any issue is warning severity or above.
func HasWarnings(issues []Issue) bool {
	for _, i := range issues {
		if sevRank[i.Severity] >= sevRank[SeverityWarning] {
			return true
		}
	}
	return false
}
