// Package report renders hygiene scan results for humans (console) and
// machines (JSON).
package report

import (
	"encoding/json"
	"strings"

	"uchygiene/pkg/hygiene"
)

// Summary holds per-severity counts for a scan.
type Summary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// IssueRecord is the wire form of a single issue.
type IssueRecord struct {
	ObjectType string `json:"object_type"`
	ObjectPath string `json:"object_path"`
	IssueKind  string `json:"issue_kind"`
	Severity   string `json:"severity"`
	Detail     string `json:"detail,omitempty"`
}

// Report is the machine-readable form of a scan result.
type Report struct {
	Summary Summary       `json:"summary"`
	Issues  []IssueRecord `json:"issues"`
}

// JSONReporter serialises scan results to JSON.
type JSONReporter struct {
	// Indent is the number of spaces per indentation level. Zero means
	// compact output.
	Indent int
}

// ToReport converts issues into the structured report form. The output is
// deterministic for a given input: issues keep their discovery order and the
// summary is derived purely from the issue list.
func (r JSONReporter) ToReport(issues []hygiene.Issue) Report {
	rep := Report{Issues: make([]IssueRecord, 0, len(issues))}
	for _, i := range issues {
		rep.Issues = append(rep.Issues, IssueRecord{
			ObjectType: string(i.ObjectType),
			ObjectPath: i.ObjectPath,
			IssueKind:  string(i.Kind),
			Severity:   string(i.Severity),
			Detail:     i.Detail,
		})
		switch i.Severity {
		case hygiene.SeverityError:
			rep.Summary.Errors++
		case hygiene.SeverityWarning:
			rep.Summary.Warnings++
		case hygiene.SeverityInfo:
			rep.Summary.Info++
		}
		rep.Summary.Total++
	}
	return rep
}

// Render serialises the issues as a JSON document.
func (r JSONReporter) Render(issues []hygiene.Issue) (string, error) {
	rep := r.ToReport(issues)
	var (
		data []byte
		err  error
	)
	if r.Indent > 0 {
		data, err = json.MarshalIndent(rep, "", strings.Repeat(" ", r.Indent))
	} else {
		data, err = json.Marshal(rep)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
