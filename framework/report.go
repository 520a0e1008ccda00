package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrintResults writes a table with one row per test case execution, followed by a totals row.
func PrintResults(w io.Writer, result *Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Test", "Status", "Message"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Test", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Message", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
	})

	for i, tr := range result.Tests() {
		t.AppendRow(table.Row{
			i + 1,
			tr.TestID.String(),
			strings.ToUpper(tr.Outcome.Kind.String()),
			shortMessage(tr.Outcome.Message),
		})
	}

	t.AppendFooter(table.Row{"", "TOTAL", "", result.Summary()})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// shortMessage picks the line of a failure message worth showing in a table: the "Error:"
// line of a testify report, or else the first non-empty line.
func shortMessage(message string) string {
	var first string
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "Error:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Error:"))
		}
		if first == "" {
			first = line
		}
	}
	return first
}

// PrintFailures lists the IDs of failed and errored tests, if any.
func PrintFailures(w io.Writer, result *Result) {
	for _, id := range result.Failures() {
		fmt.Fprintf(w, "FAILED: %s\n", id)
	}
	for _, id := range result.Errors() {
		fmt.Fprintf(w, "ERROR: %s\n", id)
	}
}
