package format

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rowset/rowset/core"
)

var _ core.RecordWriter = (*Table)(nil)

// Table renders records as an aligned console table. Rows are buffered until
// Flush, so it is meant for previews, not for full exports.
type Table struct {
	w      io.Writer
	header core.Header
	rows   []table.Row
}

func NewTable(w io.Writer) *Table {
	return &Table{
		w: w,
	}
}

func (tw *Table) WriteHeader(header core.Header) error {
	tw.header = header
	return nil
}

func (tw *Table) WriteRow(row core.Row) error {
	cells := make([]any, len(row))
	for i, val := range row {
		cells[i] = renderCell(val)
	}
	tw.rows = append(tw.rows, table.Row(cells))
	return nil
}

func (tw *Table) Flush() error {
	tableHeaders := make([]any, len(tw.header))
	for i, name := range tw.header {
		tableHeaders[i] = name
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row(tableHeaders))
	t.AppendRows(tw.rows)
	t.AppendSeparator()
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false
	t.SuppressTrailingSpaces()

	_, err := io.WriteString(tw.w, t.Render()+"\n")
	return err
}
