// Package params translates host-formatted input into plain values, so the
// export and archive operations never see raw UI strings.
package params

import (
	"os"
	"path/filepath"
	"strings"
)

// ParseFieldList parses the host UI's field selection string: tokens
// separated by semicolons, each of form "name flags". Only the text up to
// the first whitespace of a token is the field name, the rest is widget
// state and gets discarded.
func ParseFieldList(raw string) []string {
	var fields []string

	for _, token := range strings.Split(raw, ";") {
		parts := strings.Fields(token)
		if len(parts) < 1 {
			continue
		}
		fields = append(fields, parts[0])
	}

	return fields
}

// DefaultOutputPath derives an output file path from a table's display name,
// placed in the scratch directory. An empty scratchDir falls back to the
// system temp directory.
func DefaultOutputPath(scratchDir, displayName, extension string) string {
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}

	return filepath.Join(scratchDir, sanitizeFileName(displayName)+"."+extension)
}

// sanitizeFileName keeps letters, digits and a few safe punctuation
// characters, replacing everything else with underscores.
func sanitizeFileName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)

	if mapped == "" {
		return "export"
	}
	return mapped
}
