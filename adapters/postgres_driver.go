package adapters

import (
	"context"

	"github.com/rowset/rowset/core"
	"github.com/rowset/rowset/core/builders"
)

var _ core.Driver = (*postgresDriver)(nil)

type postgresDriver struct {
	c *builders.Client
}

func (d *postgresDriver) Query(ctx context.Context, query string) (core.ResultStream, error) {
	return d.c.Query(ctx, query)
}

func (d *postgresDriver) Columns(opts *core.TableOptions) ([]*core.Column, error) {
	schema := opts.Schema
	if schema == "" {
		schema = "public"
	}

	return d.c.ColumnsFromQuery(`
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE
			table_schema='%s' AND
			table_name='%s'
		ORDER BY ordinal_position
		`, schema, opts.Table)
}

func (d *postgresDriver) Structure() ([]*core.Structure, error) {
	query := `
		SELECT table_schema, table_name, table_type FROM information_schema.tables
	`

	rows, err := d.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}

	return core.GetGenericStructure(rows, getPGStructureType)
}

func (d *postgresDriver) Close() {
	d.c.Close()
}

// getPGStructureType returns the structure type based on the provided string.
func getPGStructureType(typ string) core.StructureType {
	switch typ {
	case "TABLE", "BASE TABLE", "FOREIGN", "FOREIGN TABLE", "SYSTEM TABLE":
		return core.StructureTypeTable
	case "VIEW", "SYSTEM VIEW", "MATERIALIZED VIEW":
		return core.StructureTypeView
	default:
		return core.StructureTypeNone
	}
}
