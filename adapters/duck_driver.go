//go:build cgo && ((darwin && (amd64 || arm64)) || (linux && (amd64 || arm64 || riscv64)))

package adapters

import (
	"context"

	"github.com/rowset/rowset/core"
	"github.com/rowset/rowset/core/builders"
)

var _ core.Driver = (*duckDriver)(nil)

type duckDriver struct {
	c *builders.Client
}

func (d *duckDriver) Query(ctx context.Context, query string) (core.ResultStream, error) {
	return d.c.Query(ctx, query)
}

func (d *duckDriver) Columns(opts *core.TableOptions) ([]*core.Column, error) {
	return d.c.ColumnsFromQuery("SELECT name, type FROM pragma_table_info('%s')", opts.Table)
}

func (d *duckDriver) Structure() ([]*core.Structure, error) {
	query := `SELECT table_schema, table_name, table_type FROM information_schema.tables`

	rows, err := d.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}

	decodeStructureType := func(typ string) core.StructureType {
		switch typ {
		case "BASE TABLE":
			return core.StructureTypeTable
		case "VIEW":
			return core.StructureTypeView
		default:
			return core.StructureTypeNone
		}
	}
	return core.GetGenericStructure(rows, decodeStructureType)
}

func (d *duckDriver) Close() {
	d.c.Close()
}
