package report

import (
	"fmt"
	"io"
	"strings"

	"uchygiene/pkg/hygiene"
)

// severity symbols used in console output.
var symbols = map[hygiene.Severity]string{
	hygiene.SeverityInfo:    "ℹ",
	hygiene.SeverityWarning: "⚠",
	hygiene.SeverityError:   "✗",
}

// asciiSymbols replace the unicode markers when writing to non-terminal sinks.
var asciiSymbols = map[hygiene.Severity]string{
	hygiene.SeverityInfo:    "i",
	hygiene.SeverityWarning: "!",
	hygiene.SeverityError:   "x",
}

// ConsoleReporter writes a human-readable report grouped by severity.
type ConsoleReporter struct {
	Out     io.Writer
	Unicode bool // use unicode severity markers
}

// NewConsoleReporter returns a reporter writing unicode output to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{Out: out, Unicode: true}
}

func (r *ConsoleReporter) symbol(sev hygiene.Severity) string {
	if r.Unicode {
		return symbols[sev]
	}
	return asciiSymbols[sev]
}

// Report writes the issues grouped error → warning → info, followed by a
// summary line. Within each group, discovery order is preserved.
func (r *ConsoleReporter) Report(issues []hygiene.Issue) error {
	w := r.Out

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "UNITY CATALOG HYGIENE CHECK")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	if len(issues) == 0 {
		ok := "✓"
		if !r.Unicode {
			ok = "OK:"
		}
		fmt.Fprintf(w, "\n%s All checks passed - no issues found!\n\n", ok)
		return nil
	}

	order := []hygiene.Severity{hygiene.SeverityError, hygiene.SeverityWarning, hygiene.SeverityInfo}
	bySeverity := map[hygiene.Severity][]hygiene.Issue{}
	for _, i := range issues {
		bySeverity[i.Severity] = append(bySeverity[i.Severity], i)
	}

	for _, sev := range order {
		group := bySeverity[sev]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s (%d)\n", strings.ToUpper(string(sev)), len(group))
		fmt.Fprintln(w, strings.Repeat("-", 40))
		for _, i := range group {
			fmt.Fprintf(w, "\n%s [%s] %s\n", r.symbol(sev), i.ObjectType, i.ObjectPath)
			fmt.Fprintf(w, "  %s\n", i.Message())
			if i.Detail != "" {
				fmt.Fprintf(w, "  %s\n", i.Detail)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "SUMMARY: %d errors, %d warnings, %d info\n",
		len(bySeverity[hygiene.SeverityError]),
		len(bySeverity[hygiene.SeverityWarning]),
		len(bySeverity[hygiene.SeverityInfo]))
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)
	return nil
}
