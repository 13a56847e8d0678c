package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteTo writes the package to w.
//
// An unedited document is written back byte for byte. Otherwise every part
// except word/document.xml is copied without recompression, and the document
// part is re-serialized from the tree.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if !d.dirty {
		n, err := w.Write(d.raw)
		return int64(n), err
	}

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	for _, f := range d.files {
		if f.Name != documentPart {
			if err := zw.Copy(f); err != nil {
				return cw.n, fmt.Errorf("copying %s: %w", f.Name, err)
			}
			continue
		}

		data, err := d.tree.WriteToBytes()
		if err != nil {
			return cw.n, fmt.Errorf("serializing document.xml: %w", err)
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: f.Modified,
		})
		if err != nil {
			return cw.n, fmt.Errorf("creating %s: %w", f.Name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return cw.n, fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}

	if d.comment != "" {
		if err := zw.SetComment(d.comment); err != nil {
			return cw.n, err
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("closing ZIP archive: %w", err)
	}
	return cw.n, nil
}

// Bytes returns the serialized package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the package to filename. The content is written to a temporary
// file in the same directory and renamed into place, so a failed save never
// leaves a truncated file behind.
func (d *Document) Save(filename string) error {
	mode := os.FileMode(0644)
	if fi, err := os.Stat(filename); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".minutes-*.docx")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := d.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s: %w", tmpName, err)
	}

	d.name = filename
	return nil
}

// countingWriter counts the bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
