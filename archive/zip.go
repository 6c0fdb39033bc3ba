// Package archive bundles a list of files into a single zip archive.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ProgressFunc receives one notification per archived file, after the file
// has been written to the archive. index is 1-based.
type ProgressFunc func(index, total int, name string)

// Build writes each input file into a zip archive on dest, in the given
// order, stored under its base name (directory path stripped). A missing
// input or an unwritable destination aborts the run; a partial archive may
// remain on disk.
func Build(inputs []string, dest string, progress ProgressFunc) (err error) {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("out.Close: %w", cerr)
		}
	}()

	zw := zip.NewWriter(out)

	for i, input := range inputs {
		if err := appendFile(zw, input); err != nil {
			return fmt.Errorf("could not archive %q: %w", input, err)
		}

		if progress != nil {
			progress(i+1, len(inputs), filepath.Base(input))
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("zw.Close: %w", err)
	}

	return nil
}

func appendFile(zw *zip.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.Base(path)
	header.Method = zip.Deflate

	entry, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(entry, file)
	return err
}
