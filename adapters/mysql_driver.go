package adapters

import (
	"context"
	"strings"

	"github.com/rowset/rowset/core"
	"github.com/rowset/rowset/core/builders"
)

var (
	_ core.Driver           = (*mySQLDriver)(nil)
	_ core.IdentifierQuoter = (*mySQLDriver)(nil)
)

type mySQLDriver struct {
	c *builders.Client
}

func (d *mySQLDriver) Query(ctx context.Context, query string) (core.ResultStream, error) {
	return d.c.Query(ctx, query)
}

func (d *mySQLDriver) Columns(opts *core.TableOptions) ([]*core.Column, error) {
	return d.c.ColumnsFromQuery(`
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE
			table_schema = COALESCE(NULLIF('%s', ''), DATABASE()) AND
			table_name = '%s'
		ORDER BY ordinal_position
		`, opts.Schema, opts.Table)
}

func (d *mySQLDriver) Structure() ([]*core.Structure, error) {
	query := `SELECT table_schema, table_name, table_type FROM information_schema.tables`

	rows, err := d.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}

	decodeStructureType := func(typ string) core.StructureType {
		switch typ {
		case "BASE TABLE", "SYSTEM TABLE":
			return core.StructureTypeTable
		case "VIEW", "SYSTEM VIEW":
			return core.StructureTypeView
		default:
			return core.StructureTypeNone
		}
	}
	return core.GetGenericStructure(rows, decodeStructureType)
}

// QuoteIdentifier quotes with backticks - mysql doesn't accept
// double-quoted identifiers in its default sql mode.
func (d *mySQLDriver) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *mySQLDriver) Close() {
	d.c.Close()
}
