// Package minutes reads construction-site meeting-minutes reports stored as
// DOCX files and produces the report of the next meeting from the previous
// one.
//
// Reading a report:
//
//	report, warnings, err := minutes.Open("PENTA_MoM-PV N12 20260211.docx").Report()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", minutes.FormatWarnings(warnings))
//	}
//
// Generating the next one:
//
//	res, warnings, err := minutes.Open("PENTA_MoM-PV N12 20260211.docx").
//	    WithLogger(logger).
//	    Generate("", updates)
//
// Generation copies the source report and edits the copy: the previous
// meeting's bold content is demoted, the metadata and next meeting are
// patched in place, point updates and new points are written in bold, and
// the information exchange and planning tables are rewritten when the
// updates carry rows for them.
//
// The lower-level docx, tables, parser and generator packages are available
// for finer control.
package minutes

import (
	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
)

// Warning is a non-fatal problem met while reading or generating a report.
type Warning = model.Warning

// Open returns an Extractor for the report at filename. The file is read
// on the first terminal operation.
//
// Example:
//
//	report, warnings, err := minutes.Open("report.docx").Report()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument returns an Extractor over an already opened document. The
// caller keeps ownership of doc; Generate never edits it.
func FromDocument(doc *docx.Document) *Extractor {
	return &Extractor{
		filename:  doc.Name(),
		doc:       doc,
		docOpened: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
//
// Example:
//
//	lang := minutes.Must(minutes.Open("report.docx").Language())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustReport wraps a call to Report or Generate, discards the warnings and
// panics if the error is non-nil. It is meant for scripts and tests.
//
// Example:
//
//	report := minutes.MustReport(minutes.Open("report.docx").Report())
func MustReport[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// FormatWarnings returns the warnings one per line.
func FormatWarnings(warnings []Warning) string {
	return model.FormatWarnings(warnings)
}
