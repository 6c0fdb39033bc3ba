package format

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rowset/rowset/core"
)

const xlsxSheet = "Sheet1"

var _ core.RecordWriter = (*XLSX)(nil)

// XLSX writes records to the first sheet of an xlsx workbook using the
// excelize stream writer, so rows don't accumulate in memory.
type XLSX struct {
	w    io.Writer
	file *excelize.File
	sw   *excelize.StreamWriter
	// next is the 1-based index of the next worksheet row
	next int
}

func NewXLSX(w io.Writer) *XLSX {
	return &XLSX{
		w: w,
	}
}

func (xw *XLSX) WriteHeader(header core.Header) error {
	file := excelize.NewFile()
	sw, err := file.NewStreamWriter(xlsxSheet)
	if err != nil {
		return fmt.Errorf("file.NewStreamWriter: %w", err)
	}

	xw.file = file
	xw.sw = sw
	xw.next = 1

	cells := make([]any, len(header))
	for i, name := range header {
		cells[i] = name
	}

	return xw.setRow(cells)
}

func (xw *XLSX) WriteRow(row core.Row) error {
	cells := make([]any, len(row))
	for i, val := range row {
		if b, ok := val.([]byte); ok {
			val = string(b)
		}
		cells[i] = val
	}

	return xw.setRow(cells)
}

func (xw *XLSX) setRow(cells []any) error {
	anchor, err := excelize.CoordinatesToCellName(1, xw.next)
	if err != nil {
		return fmt.Errorf("excelize.CoordinatesToCellName: %w", err)
	}
	xw.next++

	return xw.sw.SetRow(anchor, cells)
}

func (xw *XLSX) Flush() error {
	if xw.file == nil {
		return nil
	}
	defer xw.file.Close()

	if err := xw.sw.Flush(); err != nil {
		return fmt.Errorf("sw.Flush: %w", err)
	}

	if _, err := xw.file.WriteTo(xw.w); err != nil {
		return fmt.Errorf("file.WriteTo: %w", err)
	}

	return nil
}
