// Package docx provides in-place access to the tables and paragraphs of a
// DOCX (Office Open XML) document.
//
// The main document part is held as an editable XML tree, so anything this
// package does not touch is written back exactly as it was read.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

// documentPart is the name of the main document part inside the package.
const documentPart = "word/document.xml"

// Document is an opened DOCX package.
type Document struct {
	name    string
	raw     []byte
	files   []*zip.File
	comment string
	tree    *etree.Document
	body    *etree.Element
	core    *corePropertiesXML
	dirty   bool
}

// Properties holds the Dublin Core properties of a document.
type Properties struct {
	Title          string
	Subject        string
	Creator        string
	LastModifiedBy string
	Created        string
	Modified       string
}

// corePropertiesXML represents docProps/core.xml (Dublin Core metadata)
type corePropertiesXML struct {
	XMLName        xml.Name `xml:"coreProperties"`
	Title          string   `xml:"title"`
	Subject        string   `xml:"subject"`
	Creator        string   `xml:"creator"`
	LastModifiedBy string   `xml:"lastModifiedBy"`
	Created        string   `xml:"created"`
	Modified       string   `xml:"modified"`
}

// Open opens a DOCX file. The archive is read into memory, so the file is
// not held open after Open returns.
func Open(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	d, err := Read(data)
	if err != nil {
		return nil, err
	}
	d.name = filename
	return d, nil
}

// Read parses a DOCX package held in memory.
func Read(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	d := &Document{
		raw:     data,
		files:   zr.File,
		comment: zr.Comment,
	}

	// Validate required files exist
	if err := d.validate(); err != nil {
		return nil, err
	}

	if err := d.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// Metadata is optional
	d.parseCoreProperties()

	return d, nil
}

// Name returns the file name the document was opened from, if any.
func (d *Document) Name() string {
	return d.name
}

// Modified reports whether the document tree has been edited since it was read.
func (d *Document) Modified() bool {
	return d.dirty
}

// Properties returns the document's core properties.
func (d *Document) Properties() Properties {
	if d.core == nil {
		return Properties{}
	}
	return Properties{
		Title:          d.core.Title,
		Subject:        d.core.Subject,
		Creator:        d.core.Creator,
		LastModifiedBy: d.core.LastModifiedBy,
		Created:        d.core.Created,
		Modified:       d.core.Modified,
	}
}

// Tables returns the tables that are direct children of the document body,
// in document order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, el := range children(d.body, "tbl") {
		tables = append(tables, &Table{doc: d, el: el})
	}
	return tables
}

// Paragraphs returns the paragraphs that are direct children of the document
// body. Paragraphs inside tables are not included.
func (d *Document) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range children(d.body, "p") {
		paras = append(paras, &Paragraph{doc: d, el: el})
	}
	return paras
}

// touch marks the document tree as edited.
func (d *Document) touch() {
	d.dirty = true
}

// validate checks that required DOCX files exist.
func (d *Document) validate() error {
	required := []string{
		"[Content_Types].xml",
		documentPart,
	}

	fileMap := make(map[string]bool)
	for _, f := range d.files {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (d *Document) getFileContent(name string) ([]byte, error) {
	for _, f := range d.files {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseDocument parses the main document content into an editable tree.
func (d *Document) parseDocument() error {
	data, err := d.getFileContent(documentPart)
	if err != nil {
		return err
	}

	tree := etree.NewDocument()
	tree.ReadSettings.PreserveCData = true
	if err := tree.ReadFromBytes(data); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}

	// Word escapes only what it must; keep re-serialized text close to that.
	tree.WriteSettings.CanonicalText = true
	tree.WriteSettings.CanonicalAttrVal = true

	root := tree.Root()
	if root == nil || !isW(root, "document") {
		return fmt.Errorf("document.xml has no w:document root")
	}
	body := child(root, "body")
	if body == nil {
		return fmt.Errorf("document.xml has no w:body")
	}

	d.tree = tree
	d.body = body
	return nil
}

// parseCoreProperties parses Dublin Core metadata.
func (d *Document) parseCoreProperties() {
	data, err := d.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	core := &corePropertiesXML{}
	if err := xml.Unmarshal(data, core); err != nil {
		return
	}
	d.core = core
}
