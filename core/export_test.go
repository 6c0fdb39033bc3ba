package core_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowset/rowset/core"
	"github.com/rowset/rowset/core/format"
	"github.com/rowset/rowset/core/mock"
)

// recorder captures everything a RecordWriter receives.
type recorder struct {
	header  core.Header
	rows    []core.Row
	flushed bool
}

func (r *recorder) WriteHeader(header core.Header) error {
	r.header = header
	return nil
}

func (r *recorder) WriteRow(row core.Row) error {
	r.rows = append(r.rows, row)
	return nil
}

func (r *recorder) Flush() error {
	r.flushed = true
	return nil
}

var siteColumns = []*core.Column{
	{Name: "SiteId", Type: "INTEGER"},
	{Name: "SiteLocation", Type: "TEXT"},
	{Name: "Region", Type: "TEXT"},
}

func connectMock(t *testing.T, data []core.Row, opts ...mock.AdapterOption) core.Driver {
	t.Helper()

	opts = append(opts, mock.AdapterWithTableDefinition("MonitoringSites", siteColumns))

	driver, err := mock.NewAdapter(data, opts...).Connect("")
	require.NoError(t, err)
	return driver
}

func TestExport_AllFields(t *testing.T) {
	r := require.New(t)

	queried := false
	driver := connectMock(t, mock.NewRows(0, 3),
		mock.AdapterWithQuerySideEffect(
			`SELECT "SiteId", "SiteLocation", "Region" FROM "MonitoringSites"`,
			func(context.Context) error {
				queried = true
				return nil
			}),
	)

	out := new(recorder)
	count, err := core.Export(context.Background(), driver, &core.ExportOptions{
		Table: "MonitoringSites",
	}, out)
	r.NoError(err)

	// empty field list falls back to the full schema, in declared order
	assert.True(t, queried, "composed query didn't match the expected select")
	assert.Equal(t, core.Header{"SiteId", "SiteLocation", "Region"}, out.header)
	assert.Equal(t, 3, count)
	assert.Len(t, out.rows, 3)
	assert.True(t, out.flushed)
}

func TestExport_FieldSubset(t *testing.T) {
	r := require.New(t)

	queried := false
	driver := connectMock(t, mock.NewRows(0, 2),
		mock.AdapterWithQuerySideEffect(
			`SELECT "SiteLocation", "SiteId" FROM "MonitoringSites"`,
			func(context.Context) error {
				queried = true
				return nil
			}),
	)

	out := new(recorder)
	count, err := core.Export(context.Background(), driver, &core.ExportOptions{
		Table:  "MonitoringSites",
		Fields: []string{"SiteLocation", "SiteId"},
	}, out)
	r.NoError(err)

	// requested order wins over schema order
	assert.True(t, queried)
	assert.Equal(t, core.Header{"SiteLocation", "SiteId"}, out.header)
	assert.Equal(t, 2, count)
}

func TestExport_WhereAndLimit(t *testing.T) {
	r := require.New(t)

	queried := false
	driver := connectMock(t, mock.NewRows(0, 1),
		mock.AdapterWithQuerySideEffect(
			`SELECT "SiteId" FROM "public"."MonitoringSites" WHERE Region = 'North' LIMIT 5`,
			func(context.Context) error {
				queried = true
				return nil
			}),
	)

	_, err := core.Export(context.Background(), driver, &core.ExportOptions{
		Table:  "MonitoringSites",
		Schema: "public",
		Fields: []string{"SiteId"},
		Where:  "Region = 'North'",
		Limit:  5,
	}, new(recorder))
	r.NoError(err)

	// the predicate goes into the query untouched
	assert.True(t, queried)
}

func TestExport_EmptyResult(t *testing.T) {
	r := require.New(t)

	driver := connectMock(t, nil)

	out := new(recorder)
	count, err := core.Export(context.Background(), driver, &core.ExportOptions{
		Table: "MonitoringSites",
	}, out)
	r.NoError(err)

	// zero rows is a valid outcome: header written, no records
	assert.Equal(t, 0, count)
	assert.Equal(t, core.Header{"SiteId", "SiteLocation", "Region"}, out.header)
	assert.Empty(t, out.rows)
	assert.True(t, out.flushed)
}

func TestExport_UnknownField(t *testing.T) {
	driver := connectMock(t, mock.NewRows(0, 3))

	out := new(recorder)
	count, err := core.Export(context.Background(), driver, &core.ExportOptions{
		Table:  "MonitoringSites",
		Fields: []string{"SiteId", "Sitelocation"},
	}, out)

	// field names are matched case sensitively
	assert.ErrorContains(t, err, `field "Sitelocation" does not exist`)
	assert.Equal(t, 0, count)
	assert.Nil(t, out.header, "nothing should be written on a failed run")
}

func TestExport_UnknownTable(t *testing.T) {
	driver := connectMock(t, nil,
		mock.AdapterWithTableDefinition("Empty", []*core.Column{}))

	_, err := core.Export(context.Background(), driver, &core.ExportOptions{
		Table: "Empty",
	}, new(recorder))
	assert.ErrorContains(t, err, "not found in source schema")

	_, err = core.Export(context.Background(), driver, &core.ExportOptions{
		Table: "Nonexistent",
	}, new(recorder))
	assert.Error(t, err)
}

func TestExport_NoTable(t *testing.T) {
	driver := connectMock(t, nil)

	_, err := core.Export(context.Background(), driver, &core.ExportOptions{}, new(recorder))
	assert.Error(t, err)

	_, err = core.Export(context.Background(), driver, nil, new(recorder))
	assert.Error(t, err)
}

func TestExport_QueryError(t *testing.T) {
	wantErr := errors.New("syntax error in filter")

	driver := connectMock(t, nil,
		mock.AdapterWithQuerySideEffect(
			`SELECT "SiteId" FROM "MonitoringSites" WHERE bogus ===`,
			func(context.Context) error { return wantErr }),
	)

	out := new(recorder)
	_, err := core.Export(context.Background(), driver, &core.ExportOptions{
		Table:  "MonitoringSites",
		Fields: []string{"SiteId"},
		Where:  "bogus ===",
	}, out)

	// source errors surface as-is, with no output written
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, out.header)
}

func TestExport_CSV(t *testing.T) {
	r := require.New(t)

	driver := connectMock(t, []core.Row{
		{1, "Lake, North"},
		{2, nil},
	})

	var buf bytes.Buffer
	count, err := core.Export(context.Background(), driver, &core.ExportOptions{
		Table:  "MonitoringSites",
		Fields: []string{"SiteId", "SiteLocation"},
	}, format.NewCSV(&buf))
	r.NoError(err)

	assert.Equal(t, 2, count)
	assert.Equal(t, "SiteId,SiteLocation\n1,\"Lake, North\"\n2,\n", buf.String())

	// the output must parse back with a conforming reader
	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	r.NoError(err)
	assert.Equal(t, [][]string{
		{"SiteId", "SiteLocation"},
		{"1", "Lake, North"},
		{"2", ""},
	}, records)
}

func TestExportFile_Overwrite(t *testing.T) {
	r := require.New(t)

	driver := connectMock(t, []core.Row{{1, "a"}})

	path := filepath.Join(t.TempDir(), "sites.csv")
	stale := bytes.Repeat([]byte("stale content, much longer than the export\n"), 100)
	r.NoError(os.WriteFile(path, stale, 0o644))

	count, err := core.ExportFile(context.Background(), driver, &core.ExportOptions{
		Table:  "MonitoringSites",
		Fields: []string{"SiteId", "SiteLocation"},
	}, path, func(w io.Writer) core.RecordWriter { return format.NewCSV(w) })
	r.NoError(err)
	assert.Equal(t, 1, count)

	// previous contents are gone, no stale tail
	got, err := os.ReadFile(path)
	r.NoError(err)
	assert.Equal(t, "SiteId,SiteLocation\n1,a\n", string(got))
}
