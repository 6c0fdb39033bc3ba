package format

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/rowset/rowset/core"
)

var _ core.RecordWriter = (*CSV)(nil)

// CSV writes records as RFC 4180 delimited text: one record per line, fields
// separated by commas, fields containing the delimiter, a quote or a line
// break wrapped in double quotes with embedded quotes doubled.
type CSV struct {
	w *csv.Writer
}

func NewCSV(w io.Writer) *CSV {
	return &CSV{
		w: csv.NewWriter(w),
	}
}

func (cw *CSV) WriteHeader(header core.Header) error {
	return cw.w.Write(header)
}

func (cw *CSV) WriteRow(row core.Row) error {
	record := make([]string, len(row))
	for i, val := range row {
		record[i] = renderCell(val)
	}

	return cw.w.Write(record)
}

func (cw *CSV) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

// renderCell converts a single value to its canonical text form.
// Nulls render as an empty field.
func renderCell(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
