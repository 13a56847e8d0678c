// Package format tells report files apart from the other documents a user
// may point the tools at.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Word (.docx) document, the only format reports are
	// read from and written to.
	DOCX
	// DOC indicates a legacy binary Word (.doc) document.
	DOC
	// ODT indicates an OpenDocument Text (.odt) document.
	ODT
	// PDF indicates a PDF document, typically an exported report.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case DOC:
		return "DOC"
	case ODT:
		return "ODT"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case DOC:
		return ".doc"
	case ODT:
		return ".odt"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension. Macro-enabled
// documents and templates count as DOCX.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx", ".docm", ".dotx":
		return DOCX
	case ".doc":
		return DOC
	case ".odt":
		return ODT
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	pdfMagic = []byte("%PDF")
)

// DetectFromMagic checks file magic bytes to determine format.
// ZIP archives return Unknown: DetectFromReader looks inside them.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return PDF
	case bytes.HasPrefix(data, oleMagic):
		return DOC
	default:
		return Unknown
	}
}

// DetectFromReader inspects the content to determine format. This is more
// reliable than the extension: a renamed file is still recognized.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 8)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(magic), nil
}

// detectZIPFormat inspects a ZIP archive for the parts of a Word or an
// OpenDocument package.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		switch {
		case f.Name == "word/document.xml":
			return DOCX, nil
		case f.Name == "mimetype":
			rc, err := f.Open()
			if err != nil {
				continue
			}
			data := make([]byte, 64)
			n, _ := io.ReadFull(rc, data)
			rc.Close()
			if strings.HasPrefix(string(data[:n]), "application/vnd.oasis.opendocument.text") {
				return ODT, nil
			}
		}
	}
	return Unknown, nil
}
