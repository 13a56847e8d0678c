// Package docxtest builds small DOCX packages for tests.
//
// Body content is written as WordprocessingML fragments with the helpers
// below, then wrapped into a complete package by Build or Write.
package docxtest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

const rels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

const styles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style></w:styles>`

const coreProps = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"><dc:title>Site meeting minutes</dc:title><dc:creator>Site Office</dc:creator><cp:lastModifiedBy>J. Smith</cp:lastModifiedBy><dcterms:modified>2026-02-11T10:00:00Z</dcterms:modified></cp:coreProperties>`

// DocumentXML wraps body content into a complete word/document.xml part.
func DocumentXML(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>` +
		body + `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr></w:body></w:document>`
}

// Build returns a DOCX package whose body is the given content.
func Build(body string) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct{ name, data string }{
		{"[Content_Types].xml", contentTypes},
		{"_rels/.rels", rels},
		{"word/document.xml", DocumentXML(body)},
		{"word/styles.xml", styles},
		{"docProps/core.xml", coreProps},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Write builds a package from body and writes it to a file in a temporary
// directory. It returns the file path.
func Write(t testing.TB, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "report.docx")
	if err := os.WriteFile(path, Build(body), 0644); err != nil {
		t.Fatalf("failed to write test DOCX: %v", err)
	}
	return path
}

// DocumentPart returns the word/document.xml part of a DOCX package.
func DocumentPart(t testing.TB, data []byte) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		return string(b)
	}
	t.Fatal("package has no word/document.xml")
	return ""
}

// Table returns a table without a declared grid.
func Table(rows ...string) string {
	return `<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/></w:tblPr>` + strings.Join(rows, "") + `</w:tbl>`
}

// TableGrid returns a table declaring cols grid columns.
func TableGrid(cols int, rows ...string) string {
	var grid strings.Builder
	grid.WriteString("<w:tblGrid>")
	for i := 0; i < cols; i++ {
		grid.WriteString(`<w:gridCol w:w="1800"/>`)
	}
	grid.WriteString("</w:tblGrid>")
	return `<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/></w:tblPr>` + grid.String() + strings.Join(rows, "") + `</w:tbl>`
}

// Row returns a table row.
func Row(cells ...string) string {
	return "<w:tr>" + strings.Join(cells, "") + "</w:tr>"
}

// HeaderRow returns a row flagged as a repeating header row.
func HeaderRow(cells ...string) string {
	return "<w:tr><w:trPr><w:tblHeader/></w:trPr>" + strings.Join(cells, "") + "</w:tr>"
}

// Cell returns a cell holding the given paragraphs. A cell with no
// paragraph gets an empty one.
func Cell(paras ...string) string {
	if len(paras) == 0 {
		paras = []string{P()}
	}
	return `<w:tc><w:tcPr><w:tcW w:w="1800" w:type="dxa"/></w:tcPr>` + strings.Join(paras, "") + "</w:tc>"
}

// Lines returns a cell with one plain paragraph per line.
func Lines(lines ...string) string {
	var paras []string
	for _, l := range lines {
		paras = append(paras, Para(l))
	}
	return Cell(paras...)
}

// SpanCell returns a cell spanning span grid columns.
func SpanCell(span int, paras ...string) string {
	if len(paras) == 0 {
		paras = []string{P()}
	}
	return fmt.Sprintf(`<w:tc><w:tcPr><w:gridSpan w:val="%d"/></w:tcPr>`, span) + strings.Join(paras, "") + "</w:tc>"
}

// ShadedCell returns a cell with a background fill.
func ShadedCell(fill string, paras ...string) string {
	if len(paras) == 0 {
		paras = []string{P()}
	}
	return fmt.Sprintf(`<w:tc><w:tcPr><w:shd w:val="clear" w:color="auto" w:fill="%s"/></w:tcPr>`, fill) + strings.Join(paras, "") + "</w:tc>"
}

// MergedCell returns a cell taking part in a vertical merge. val is
// "restart" or "" for a continuation.
func MergedCell(val string, paras ...string) string {
	if len(paras) == 0 {
		paras = []string{P()}
	}
	vm := "<w:vMerge/>"
	if val != "" {
		vm = fmt.Sprintf(`<w:vMerge w:val="%s"/>`, val)
	}
	return "<w:tc><w:tcPr>" + vm + "</w:tcPr>" + strings.Join(paras, "") + "</w:tc>"
}

// P returns a paragraph made of the given runs.
func P(runs ...string) string {
	return `<w:p><w:pPr><w:spacing w:after="0"/></w:pPr>` + strings.Join(runs, "") + "</w:p>"
}

// Para returns a paragraph with a single plain run, or an empty paragraph
// when text is empty.
func Para(text string) string {
	if text == "" {
		return P()
	}
	return P(R(text))
}

// R returns a plain run.
func R(text string) string {
	return `<w:r><w:rPr><w:rFonts w:ascii="Arial" w:hAnsi="Arial"/><w:sz w:val="18"/></w:rPr>` + t(text) + "</w:r>"
}

// B returns a bold run.
func B(text string) string {
	return `<w:r><w:rPr><w:rFonts w:ascii="Arial" w:hAnsi="Arial"/><w:b/><w:sz w:val="18"/></w:rPr>` + t(text) + "</w:r>"
}

// NB returns a run explicitly switched to non-bold.
func NB(text string) string {
	return `<w:r><w:rPr><w:rFonts w:ascii="Arial" w:hAnsi="Arial"/><w:b w:val="0"/><w:sz w:val="18"/></w:rPr>` + t(text) + "</w:r>"
}

func t(text string) string {
	return `<w:t xml:space="preserve">` + escaper.Replace(text) + "</w:t>"
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
