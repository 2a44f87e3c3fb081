package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uchygiene/pkg/hygiene"
)

func sampleIssues() []hygiene.Issue {
	return []hygiene.Issue{
		{
			ObjectType: hygiene.ObjectCatalog,
			ObjectPath: "raw",
			Kind:       hygiene.KindMissingDescription,
			Severity:   hygiene.SeverityWarning,
		},
		{
			ObjectType: hygiene.ObjectTable,
			ObjectPath: "prod.sales.orders",
			Kind:       hygiene.KindMissingDescription,
			Severity:   hygiene.SeverityInfo,
			Detail:     "undocumented columns: amount, placed_at",
		},
		{
			ObjectType: hygiene.ObjectSchema,
			ObjectPath: "prod.scratch",
			Kind:       hygiene.KindEmptySchema,
			Severity:   hygiene.SeverityInfo,
		},
	}
}

// === JSONReporter ===

func TestJSONReporter_ToReportSummary(t *testing.T) {
	rep := JSONReporter{}.ToReport(sampleIssues())

	assert.Equal(t, 3, rep.Summary.Total)
	assert.Equal(t, 0, rep.Summary.Errors)
	assert.Equal(t, 1, rep.Summary.Warnings)
	assert.Equal(t, 2, rep.Summary.Info)
	require.Len(t, rep.Issues, 3)

	// Discovery order preserved.
	assert.Equal(t, "raw", rep.Issues[0].ObjectPath)
	assert.Equal(t, "prod.sales.orders", rep.Issues[1].ObjectPath)
	assert.Equal(t, "prod.scratch", rep.Issues[2].ObjectPath)
}

func TestJSONReporter_Deterministic(t *testing.T) {
	issues := sampleIssues()
	r := JSONReporter{Indent: 2}

	first, err := r.Render(issues)
	require.NoError(t, err)
	second, err := r.Render(issues)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJSONReporter_RoundTrip(t *testing.T) {
	issues := sampleIssues()
	out, err := JSONReporter{Indent: 2}.Render(issues)
	require.NoError(t, err)

	var parsed Report
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))

	assert.Equal(t, len(issues), parsed.Summary.Total)
	assert.Equal(t, len(issues), len(parsed.Issues))
	assert.Equal(t, 1, parsed.Summary.Warnings)
	assert.Equal(t, 2, parsed.Summary.Info)
	assert.Equal(t, "missing_description", parsed.Issues[0].IssueKind)
	assert.Equal(t, "warning", parsed.Issues[0].Severity)
}

func TestJSONReporter_FieldNames(t *testing.T) {
	out, err := JSONReporter{}.Render(sampleIssues())
	require.NoError(t, err)

	for _, field := range []string{`"summary"`, `"issues"`, `"object_type"`, `"object_path"`, `"issue_kind"`, `"severity"`} {
		assert.Contains(t, out, field)
	}
}

func TestJSONReporter_DetailOmittedWhenEmpty(t *testing.T) {
	out, err := JSONReporter{}.Render([]hygiene.Issue{{
		ObjectType: hygiene.ObjectCatalog,
		ObjectPath: "raw",
		Kind:       hygiene.KindMissingDescription,
		Severity:   hygiene.SeverityWarning,
	}})
	require.NoError(t, err)
	assert.NotContains(t, out, `"detail"`)
}

func TestJSONReporter_EmptyResult(t *testing.T) {
	out, err := JSONReporter{}.Render(nil)
	require.NoError(t, err)

	var parsed Report
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, 0, parsed.Summary.Total)
	assert.Empty(t, parsed.Issues)
}

// === ConsoleReporter ===

func TestConsoleReporter_CleanRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewConsoleReporter(&buf).Report(nil))

	out := buf.String()
	assert.Contains(t, out, "UNITY CATALOG HYGIENE CHECK")
	assert.Contains(t, out, "All checks passed")
}

func TestConsoleReporter_GroupsBySeverity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewConsoleReporter(&buf).Report(sampleIssues()))

	out := buf.String()
	assert.Contains(t, out, "WARNING (1)")
	assert.Contains(t, out, "INFO (2)")
	assert.Contains(t, out, "[catalog] raw")
	assert.Contains(t, out, "[table] prod.sales.orders")
	assert.Contains(t, out, "undocumented columns: amount, placed_at")
	assert.Contains(t, out, "SUMMARY: 0 errors, 1 warnings, 2 info")

	// Warnings are printed before info.
	assert.Less(t, strings.Index(out, "WARNING (1)"), strings.Index(out, "INFO (2)"))
}

func TestConsoleReporter_ASCIIFallback(t *testing.T) {
	var buf bytes.Buffer
	r := &ConsoleReporter{Out: &buf, Unicode: false}
	require.NoError(t, r.Report(sampleIssues()))

	out := buf.String()
	assert.NotContains(t, out, "⚠")
	assert.Contains(t, out, "! [catalog] raw")
}
