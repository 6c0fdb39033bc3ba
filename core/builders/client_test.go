package builders

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/rowset/rowset/core"
)

func TestClient_Query(t *testing.T) {
	r := require.New(t)

	db, dbmock, err := sqlmock.New()
	r.NoError(err)

	dbmock.ExpectQuery("SELECT id, note FROM observations").
		WillReturnRows(sqlmock.NewRows([]string{"id", "note"}).
			AddRow(int64(1), "first").
			AddRow(int64(2), []byte("second")))

	client := NewClient(db)
	defer client.Close()

	rows, err := client.Query(context.Background(), "SELECT id, note FROM observations")
	r.NoError(err)
	defer rows.Close()

	r.Equal(core.Header{"id", "note"}, rows.Header())

	var got []core.Row
	for rows.HasNext() {
		row, err := rows.Next()
		r.NoError(err)
		got = append(got, row)
	}

	// byte slices are converted to strings by the default type processor
	r.Equal([]core.Row{
		{int64(1), "first"},
		{int64(2), "second"},
	}, got)

	r.NoError(dbmock.ExpectationsWereMet())
}

func TestClient_QueryError(t *testing.T) {
	r := require.New(t)

	db, dbmock, err := sqlmock.New()
	r.NoError(err)

	dbmock.ExpectQuery("SELECT broken FROM nowhere").
		WillReturnError(context.DeadlineExceeded)

	client := NewClient(db)
	defer client.Close()

	_, err = client.Query(context.Background(), "SELECT broken FROM nowhere")
	r.Error(err)
}

func TestClient_ColumnsFromQuery(t *testing.T) {
	r := require.New(t)

	db, dbmock, err := sqlmock.New()
	r.NoError(err)

	dbmock.ExpectQuery("SELECT name, type FROM pragma_table_info").
		WillReturnRows(sqlmock.NewRows([]string{"name", "type"}).
			AddRow("site_id", "INTEGER").
			AddRow("site_location", "TEXT"))

	client := NewClient(db)
	defer client.Close()

	columns, err := client.ColumnsFromQuery("SELECT name, type FROM pragma_table_info('%s')", "sites")
	r.NoError(err)

	r.Equal([]*core.Column{
		{Name: "site_id", Type: "INTEGER"},
		{Name: "site_location", Type: "TEXT"},
	}, columns)
}
