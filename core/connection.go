package core

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

type ConnectionID string

type ConnectionParams struct {
	ID   ConnectionID
	Name string
	Type string
	URL  string
}

// Expand returns a copy of the original parameters with expanded fields
func (p *ConnectionParams) Expand() *ConnectionParams {
	return &ConnectionParams{
		ID:   ConnectionID(expandOrDefault(string(p.ID))),
		Name: expandOrDefault(p.Name),
		Type: expandOrDefault(p.Type),
		URL:  expandOrDefault(p.URL),
	}
}

// Connection ties a set of connection parameters to a live driver.
type Connection struct {
	params           *ConnectionParams
	unexpandedParams *ConnectionParams

	driver Driver
}

func NewConnection(params *ConnectionParams, adapter Adapter) (*Connection, error) {
	expanded := params.Expand()

	if expanded.ID == "" {
		expanded.ID = ConnectionID(uuid.New().String())
	}

	driver, err := adapter.Connect(expanded.URL)
	if err != nil {
		return nil, fmt.Errorf("adapter.Connect: %w", err)
	}

	c := &Connection{
		params:           expanded,
		unexpandedParams: params,

		driver: driver,
	}

	return c, nil
}

func (c *Connection) GetID() ConnectionID {
	return c.params.ID
}

func (c *Connection) GetName() string {
	return c.params.Name
}

func (c *Connection) GetType() string {
	return c.params.Type
}

func (c *Connection) GetURL() string {
	return c.params.URL
}

// GetParams returns the original source for this connection
func (c *Connection) GetParams() *ConnectionParams {
	return c.unexpandedParams
}

// Export runs a single export over this connection (see Export).
func (c *Connection) Export(ctx context.Context, opts *ExportOptions, out RecordWriter) (int, error) {
	return Export(ctx, c.driver, opts, out)
}

// ExportFile runs a single export over this connection into a file on path
// (see ExportFile).
func (c *Connection) ExportFile(ctx context.Context, opts *ExportOptions, path string, newWriter func(io.Writer) RecordWriter) (int, error) {
	return ExportFile(ctx, c.driver, opts, path, newWriter)
}

func (c *Connection) GetStructure() ([]*Structure, error) {
	structure, err := c.driver.Structure()
	if err != nil {
		return nil, err
	}

	// fallback to not confuse users
	if len(structure) < 1 {
		structure = []*Structure{
			{
				Name: "no schema to show",
				Type: StructureTypeNone,
			},
		}
	}
	return structure, nil
}

func (c *Connection) Close() {
	c.driver.Close()
}
