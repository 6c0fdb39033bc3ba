package format

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowset/rowset/core"
)

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSV(&buf)

	require.NoError(t, w.WriteHeader(core.Header{"id", "note"}))
	require.NoError(t, w.WriteRow(core.Row{1, `say "hi"`}))
	require.NoError(t, w.WriteRow(core.Row{2, "line\nbreak"}))
	require.NoError(t, w.WriteRow(core.Row{3, nil}))
	require.NoError(t, w.Flush())

	expected := "id,note\n" +
		"1,\"say \"\"hi\"\"\"\n" +
		"2,\"line\nbreak\"\n" +
		"3,\n"
	assert.Equal(t, expected, buf.String())
}

func TestRenderCell(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: ""},
		{name: "string", value: "plain", expected: "plain"},
		{name: "bytes", value: []byte("raw"), expected: "raw"},
		{name: "int", value: 42, expected: "42"},
		{name: "float", value: 1.5, expected: "1.5"},
		{name: "bool", value: true, expected: "true"},
		{
			name:     "time",
			value:    time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
			expected: "2024-03-01T12:30:00Z",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, renderCell(tc.value))
		})
	}
}
