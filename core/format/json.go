package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rowset/rowset/core"
)

var _ core.RecordWriter = (*JSON)(nil)

// JSON writes records as an array of header-keyed objects.
type JSON struct {
	w       io.Writer
	header  core.Header
	started bool
}

func NewJSON(w io.Writer) *JSON {
	return &JSON{
		w: w,
	}
}

func (jw *JSON) WriteHeader(header core.Header) error {
	jw.header = header
	return nil
}

func (jw *JSON) WriteRow(row core.Row) error {
	record := make(map[string]any, len(row))
	for i, val := range row {
		var key string
		if i < len(jw.header) {
			key = jw.header[i]
		} else {
			key = fmt.Sprintf("<unknown-field-%d>", i)
		}
		if b, ok := val.([]byte); ok {
			val = string(b)
		}
		record[key] = val
	}

	out, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	separator := "[\n  "
	if jw.started {
		separator = ",\n  "
	}
	jw.started = true

	if _, err := io.WriteString(jw.w, separator); err != nil {
		return err
	}
	_, err = jw.w.Write(out)
	return err
}

func (jw *JSON) Flush() error {
	if !jw.started {
		_, err := io.WriteString(jw.w, "[]\n")
		return err
	}

	_, err := io.WriteString(jw.w, "\n]\n")
	return err
}
