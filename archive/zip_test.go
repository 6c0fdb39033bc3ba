package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuild(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	r.NoError(os.Mkdir(nested, 0o755))

	inputs := []string{
		writeFile(t, dir, "x.txt", "first file"),
		writeFile(t, nested, "y.txt", "second file"),
	}
	dest := filepath.Join(dir, "bundle.zip")

	type event struct {
		index, total int
		name         string
	}
	var events []event

	err := Build(inputs, dest, func(index, total int, name string) {
		events = append(events, event{index, total, name})
	})
	r.NoError(err)

	// one notification per file, in input order
	assert.Equal(t, []event{
		{1, 2, "x.txt"},
		{2, 2, "y.txt"},
	}, events)

	reader, err := zip.OpenReader(dest)
	r.NoError(err)
	defer reader.Close()

	r.Len(reader.File, 2)

	// entries keep input order and are stored under their base name
	assert.Equal(t, "x.txt", reader.File[0].Name)
	assert.Equal(t, "y.txt", reader.File[1].Name)

	entry, err := reader.File[1].Open()
	r.NoError(err)
	defer entry.Close()

	content, err := io.ReadAll(entry)
	r.NoError(err)
	assert.Equal(t, "second file", string(content))
}

func TestBuild_MissingInput(t *testing.T) {
	dir := t.TempDir()

	inputs := []string{
		writeFile(t, dir, "ok.txt", "fine"),
		filepath.Join(dir, "missing.txt"),
	}

	err := Build(inputs, filepath.Join(dir, "bundle.zip"), nil)
	assert.ErrorContains(t, err, "missing.txt")
}

func TestBuild_BadDestination(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "ok.txt", "fine")

	err := Build([]string{input}, filepath.Join(dir, "no-such-dir", "bundle.zip"), nil)
	assert.Error(t, err)
}
