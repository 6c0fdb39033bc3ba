package core

import (
	"errors"
	"fmt"
	"sort"
)

// GetGenericStructure converts a result stream to a structure tree.
// The stream should return rows that are at least 3 columns wide with
// the following structure:
//
//	1st elem: schema name - string
//	2nd elem: table name - string
//	3rd elem: type - string (passed to decodeType)
func GetGenericStructure(rows ResultStream, decodeType func(string) StructureType) ([]*Structure, error) {
	defer rows.Close()

	children := make(map[string][]*Structure)

	for rows.HasNext() {
		row, err := rows.Next()
		if err != nil {
			return nil, fmt.Errorf("rows.Next: %w", err)
		}

		if len(row) < 3 {
			return nil, errors.New("could not retrieve structure: insufficient data")
		}

		schema, ok1 := row[0].(string)
		table, ok2 := row[1].(string)
		typ, ok3 := row[2].(string)
		if !ok1 || !ok2 || !ok3 {
			return nil, errors.New("could not retrieve structure: values not strings")
		}

		children[schema] = append(children[schema], &Structure{
			Name:   table,
			Schema: schema,
			Type:   decodeType(typ),
		})
	}

	schemas := make([]string, 0, len(children))
	for schema := range children {
		schemas = append(schemas, schema)
	}
	sort.Strings(schemas)

	var structure []*Structure
	for _, schema := range schemas {
		structure = append(structure, &Structure{
			Name:     schema,
			Schema:   schema,
			Type:     StructureTypeNone,
			Children: children[schema],
		})
	}

	return structure, nil
}
