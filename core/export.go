package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	errNoTable = errors.New("no table provided")

	ErrTableNotFound = func(table string) error {
		return fmt.Errorf("table %q not found in source schema", table)
	}
	ErrFieldNotFound = func(field, table string) error {
		return fmt.Errorf("field %q does not exist in table %q", field, table)
	}
)

// ExportOptions parametrize a single export run.
type ExportOptions struct {
	// Table to read from.
	Table string
	// Schema qualifies Table when the source distinguishes schemas.
	Schema string
	// Fields to emit, in order. Empty means all schema columns in declared order.
	Fields []string
	// Where is an optional predicate in the source's own query dialect,
	// passed through verbatim - filtering is never re-implemented here.
	Where string
	// Limit caps the number of emitted rows. Zero means no cap.
	Limit int
}

// Export streams the contents of a single table to out and returns the number
// of data rows written (header excluded).
//
// The effective column set is resolved exactly once, before the first record
// is written, and stays fixed for the whole run. Rows are written as they are
// read, so memory use stays bounded regardless of table size. Zero rows is a
// valid result, not an error.
func Export(ctx context.Context, driver Driver, opts *ExportOptions, out RecordWriter) (int, error) {
	if opts == nil || opts.Table == "" {
		return 0, errNoTable
	}

	columns, err := driver.Columns(&TableOptions{Table: opts.Table, Schema: opts.Schema})
	if err != nil {
		return 0, fmt.Errorf("driver.Columns: %w", err)
	}
	if len(columns) < 1 {
		return 0, ErrTableNotFound(opts.Table)
	}

	fields, err := resolveFields(columns, opts)
	if err != nil {
		return 0, err
	}

	stream, err := driver.Query(ctx, buildSelect(driver, opts, fields))
	if err != nil {
		return 0, fmt.Errorf("driver.Query: %w", err)
	}
	defer stream.Close()

	if err := out.WriteHeader(Header(fields)); err != nil {
		return 0, fmt.Errorf("out.WriteHeader: %w", err)
	}

	count := 0
	for stream.HasNext() {
		row, err := stream.Next()
		if err != nil {
			return count, fmt.Errorf("stream.Next: %w", err)
		}

		if err := out.WriteRow(row); err != nil {
			return count, fmt.Errorf("out.WriteRow: %w", err)
		}
		count++
	}

	if err := out.Flush(); err != nil {
		return count, fmt.Errorf("out.Flush: %w", err)
	}

	return count, nil
}

// ExportFile runs Export against a freshly created (or truncated) file on
// path. The file handle is closed on every exit path; a partially written
// file may remain on disk when the run fails mid-write.
func ExportFile(ctx context.Context, driver Driver, opts *ExportOptions, path string, newWriter func(io.Writer) RecordWriter) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("os.Create: %w", err)
	}

	count, err := Export(ctx, driver, opts, newWriter(file))

	if cerr := file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("file.Close: %w", cerr)
	}
	if err != nil {
		return 0, err
	}

	return count, nil
}

// resolveFields returns the effective column list: the requested fields if
// provided (each validated against the schema), the full schema otherwise.
func resolveFields(columns []*Column, opts *ExportOptions) ([]string, error) {
	if len(opts.Fields) < 1 {
		names := make([]string, len(columns))
		for i, col := range columns {
			names[i] = col.Name
		}
		return names, nil
	}

	known := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		known[col.Name] = struct{}{}
	}

	for _, field := range opts.Fields {
		if _, ok := known[field]; !ok {
			return nil, ErrFieldNotFound(field, opts.Table)
		}
	}

	return opts.Fields, nil
}

func buildSelect(driver Driver, opts *ExportOptions, fields []string) string {
	quote := quoteDoubled
	if q, ok := driver.(IdentifierQuoter); ok {
		quote = q.QuoteIdentifier
	}

	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = quote(field)
	}

	table := quote(opts.Table)
	if opts.Schema != "" {
		table = quote(opts.Schema) + "." + table
	}

	var query strings.Builder
	fmt.Fprintf(&query, "SELECT %s FROM %s", strings.Join(quoted, ", "), table)
	if opts.Where != "" {
		fmt.Fprintf(&query, " WHERE %s", opts.Where)
	}
	if opts.Limit > 0 {
		fmt.Fprintf(&query, " LIMIT %d", opts.Limit)
	}

	return query.String()
}

func quoteDoubled(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
