package core

import "context"

type (
	// Row and Header are attributes of the ResultStream iterator
	Row    []any
	Header []string

	// ResultStream is a forward-only, read-only iterator over the rows a
	// source delivers for one query.
	ResultStream interface {
		Header() Header
		Next() (Row, error)
		HasNext() bool
		Close()
	}
)

type (
	// RecordWriter consumes a header and a stream of rows, one record at a
	// time. Implementations decide how a record is rendered (see core/format).
	RecordWriter interface {
		WriteHeader(Header) error
		WriteRow(Row) error
		Flush() error
	}
)

// Column describes a single field of a table.
type Column struct {
	Name string
	Type string
}

// TableOptions select a single table of a connected source.
type TableOptions struct {
	Table  string
	Schema string
}

type (
	// Adapter is an object which allows to connect to a data source via url
	Adapter interface {
		Connect(url string) (Driver, error)
	}

	// Driver is an interface to a specific data source
	Driver interface {
		Query(context.Context, string) (ResultStream, error)
		Columns(opts *TableOptions) ([]*Column, error)
		Structure() ([]*Structure, error)
		Close()
	}

	// IdentifierQuoter is an optional interface for drivers whose dialect
	// doesn't quote identifiers with double quotes.
	IdentifierQuoter interface {
		QuoteIdentifier(name string) string
	}
)

type StructureType int

const (
	StructureTypeNone StructureType = iota
	StructureTypeTable
	StructureTypeView
)

func (s StructureType) String() string {
	switch s {
	case StructureTypeTable:
		return "table"
	case StructureTypeView:
		return "view"
	default:
		return ""
	}
}

// Structure represents the structure of a single database
type Structure struct {
	// Name to be displayed
	Name   string
	Schema string
	Type   StructureType
	// Children layout nodes
	Children []*Structure
}
