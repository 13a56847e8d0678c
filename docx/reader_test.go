package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/minutes/internal/docxtest"
)

// readBody builds a package around body and reads it.
func readBody(t *testing.T, body string) *Document {
	t.Helper()

	d, err := Read(docxtest.Build(body))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return d
}

// zipEntries returns the uncompressed content of every entry of a package.
func zipEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	entries := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		entries[f.Name] = b
	}
	return entries
}

func TestOpen(t *testing.T) {
	path := docxtest.Write(t, docxtest.SampleReport())

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if d.Name() != path {
		t.Errorf("Name() = %q, want %q", d.Name(), path)
	}
	if got := len(d.Tables()); got != 5 {
		t.Errorf("len(Tables()) = %d, want 5", got)
	}
	if d.Modified() {
		t.Error("freshly opened document should not be modified")
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.docx")
	if err == nil {
		t.Error("Open() should return error for nonexistent file")
	}
}

func TestOpen_InvalidZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.docx")
	if err := os.WriteFile(path, []byte("not a zip file"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if err == nil {
		t.Error("Open() should return error for invalid ZIP")
	}
}

func TestRead_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(`<?xml version="1.0"?><Types/>`))
	zw.Close()

	_, err := Read(buf.Bytes())
	if err == nil {
		t.Error("Read() should return error for missing document.xml")
	}
}

func TestRead_MalformedDocument(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"syntax error", `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`},
		{"wrong root", `<root/>`},
		{"no body", `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			zw := zip.NewWriter(&buf)
			w, _ := zw.Create("[Content_Types].xml")
			w.Write([]byte(`<?xml version="1.0"?><Types/>`))
			w, _ = zw.Create("word/document.xml")
			w.Write([]byte(tt.xml))
			zw.Close()

			if _, err := Read(buf.Bytes()); err == nil {
				t.Error("Read() should return error")
			}
		})
	}
}

func TestDocument_Properties(t *testing.T) {
	d := readBody(t, docxtest.Para("x"))

	props := d.Properties()
	if props.Title != "Site meeting minutes" {
		t.Errorf("Title = %q, want %q", props.Title, "Site meeting minutes")
	}
	if props.Creator != "Site Office" {
		t.Errorf("Creator = %q, want %q", props.Creator, "Site Office")
	}
	if props.LastModifiedBy != "J. Smith" {
		t.Errorf("LastModifiedBy = %q, want %q", props.LastModifiedBy, "J. Smith")
	}
}

func TestDocument_Paragraphs(t *testing.T) {
	body := docxtest.Para("Next meeting:") +
		docxtest.Table(docxtest.Row(docxtest.Lines("inside a table"))) +
		docxtest.P(docxtest.R("25/02/2026 "), docxtest.B("at 11:00"))
	d := readBody(t, body)

	paras := d.Paragraphs()
	if len(paras) != 2 {
		t.Fatalf("len(Paragraphs()) = %d, want 2", len(paras))
	}
	if got := paras[1].Text(); got != "25/02/2026 at 11:00" {
		t.Errorf("Text() = %q, want %q", got, "25/02/2026 at 11:00")
	}
}

func TestWriteTo_Unmodified(t *testing.T) {
	data := docxtest.Build(docxtest.SampleReport())
	d, err := Read(data)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	out, err := d.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("unmodified document should be written back byte for byte")
	}
}

func TestSave_KeepsUntouchedContent(t *testing.T) {
	src := docxtest.Build(docxtest.SampleReport())
	d, err := Read(src)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	tables := d.Tables()
	before := make(map[int]string)
	for i, tbl := range tables {
		before[i] = tbl.Row(0).xml()
	}
	untouched := tables[4].Row(2).Cell(2).xml()

	// Edit one cell of the planning table only.
	tables[2].Row(2).Cell(0).Paragraphs()[0].ReplaceText("Phase 2 tender awarded")
	if !d.Modified() {
		t.Fatal("document should be modified after an edit")
	}

	path := filepath.Join(t.TempDir(), "out.docx")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	srcParts := zipEntries(t, src)
	outParts := zipEntries(t, out)
	for name, data := range srcParts {
		if name == documentPart {
			continue
		}
		if !bytes.Equal(outParts[name], data) {
			t.Errorf("part %s changed on save", name)
		}
	}

	reread, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	for i, tbl := range reread.Tables() {
		if got := tbl.Row(0).xml(); got != before[i] {
			t.Errorf("table %d header changed:\n got %s\nwant %s", i, got, before[i])
		}
	}
	if got := reread.Tables()[4].Row(2).Cell(2).xml(); got != untouched {
		t.Errorf("untouched cell changed:\n got %s\nwant %s", got, untouched)
	}
	if got := reread.Tables()[2].Row(2).Cell(0).Text(); got != "Phase 2 tender awarded" {
		t.Errorf("edited cell = %q, want %q", got, "Phase 2 tender awarded")
	}
}

func TestSave_KeepsFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")
	if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}

	d := readBody(t, docxtest.Para("hello"))
	if err := d.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", fi.Mode().Perm())
	}
	if d.Name() != path {
		t.Errorf("Name() = %q, want %q", d.Name(), path)
	}
}

func BenchmarkRead(b *testing.B) {
	data := docxtest.Build(docxtest.SampleReport())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Read(data); err != nil {
			b.Fatal(err)
		}
	}
}
