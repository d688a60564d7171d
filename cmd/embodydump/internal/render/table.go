// Package render prints embodycodec registry and decode output as
// human-readable tables, the CLI's one and only ambient logging/display
// surface (the core package itself never prints anything, per the
// error handling design).
package render

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table renders headers and rows to w, the same minimal, border-free
// style marmos91-dittofs's internal/cli/output.PrintTable uses for its
// adapter/store/share listings, adapted here for registry and frame rows
// instead of filesystem adapters.
func Table(w io.Writer, headers []string, rows [][]string) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(headers)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(true)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetCenterSeparator("")
	t.SetColumnSeparator("")
	t.SetRowSeparator("")
	t.SetHeaderLine(false)
	t.SetBorder(false)
	t.SetTablePadding("  ")
	t.SetNoWhiteSpace(true)

	for _, row := range rows {
		t.Append(row)
	}

	t.Render()
}

// KeyValue renders a simple two-column key:value table, the shape
// dfsctl's output.SimpleTable uses for single-record detail views —
// here, one decoded frame's fields.
func KeyValue(w io.Writer, pairs [][2]string) {
	t := tablewriter.NewWriter(w)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetCenterSeparator("")
	t.SetColumnSeparator(":")
	t.SetRowSeparator("")
	t.SetHeaderLine(false)
	t.SetBorder(false)
	t.SetTablePadding("  ")
	t.SetNoWhiteSpace(true)

	for _, p := range pairs {
		t.Append([]string{p[0], p[1]})
	}

	t.Render()
}
