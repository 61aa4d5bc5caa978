package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/bbref"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Output formats accepted by the --format flag.
const (
	FormatTable    = "table"
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// writeTable renders t to w in the given format.
func writeTable(w io.Writer, t *bbref.Table, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, t)
	case FormatCSV:
		return writeCSV(w, t)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	header := make(table.Row, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	tw.AppendHeader(header)

	for _, row := range t.Rows {
		r := make(table.Row, len(t.Columns))
		for i := range t.Columns {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	switch format {
	case FormatMarkdown:
		tw.RenderMarkdown()
	case FormatTable, "":
		tw.SetStyle(table.StyleRounded)
		tw.Render()
	default:
		return bbref.Errorf(bbref.EINVALID, "unknown output format %q", format)
	}
	return nil
}

// writeCSV writes the header and rows as RFC 4180 records. Level lists
// such as "AAA,MAJ" come out quoted.
func writeCSV(w io.Writer, t *bbref.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// writeJSON writes the table as {"columns": [...], "rows": [[...]]},
// keeping the column order of the page.
func writeJSON(w io.Writer, t *bbref.Table) error {
	out := *t
	if out.Columns == nil {
		out.Columns = []string{}
	}
	if out.Rows == nil {
		out.Rows = [][]string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}
	return nil
}
