package minutes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/format"
	"github.com/tsawler/minutes/generator"
	"github.com/tsawler/minutes/model"
	"github.com/tsawler/minutes/parser"
	"github.com/tsawler/minutes/tables"
)

// Extractor provides a fluent interface over a report. Each configuration
// method returns a new Extractor, so a configured Extractor can be reused
// and chained safely.
type Extractor struct {
	// Source
	filename string
	format   format.Format

	// Lifecycle
	doc       *docx.Document
	ownsDoc   bool // true if we opened the document and should release it
	docOpened bool

	options options

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with copied options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		format:    e.format,
		doc:       e.doc,
		ownsDoc:   e.ownsDoc,
		docOpened: e.docOpened,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// detectFormat checks that the source is a DOCX package, by extension
// first and by content when the extension says otherwise.
func (e *Extractor) detectFormat() error {
	if e.filename == "" {
		return errors.New("no filename specified")
	}
	e.format = format.Detect(e.filename)
	if e.format == format.DOCX {
		return nil
	}

	f, err := os.Open(e.filename)
	if err != nil {
		return fmt.Errorf("opening report: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("opening report: %w", err)
	}
	if e.format, err = format.DetectFromReader(f, info.Size()); err != nil {
		return fmt.Errorf("detecting format: %w", err)
	}
	if e.format != format.DOCX {
		return fmt.Errorf("unsupported file format: %s", e.format)
	}
	return nil
}

// ensureDocument opens the document if not already open.
func (e *Extractor) ensureDocument() error {
	if e.docOpened {
		return nil
	}
	if err := e.detectFormat(); err != nil {
		return err
	}
	doc, err := docx.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open DOCX: %w", err)
	}
	e.doc = doc
	e.ownsDoc = true
	e.docOpened = true
	return nil
}

// Close releases the document held by the Extractor. It is safe to call
// Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsDoc {
		e.doc = nil
		e.ownsDoc = false
		e.docOpened = false
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithRules sets the dialect rules used to recognise tables and fields.
//
// Example:
//
//	rules, _ := dialect.Load("rules.yaml")
//	report, _, err := minutes.Open("report.docx").WithRules(rules).Report()
func (e *Extractor) WithRules(rules *dialect.Rules) *Extractor {
	newExt := e.clone()
	if rules != nil {
		newExt.options.rules = rules
	}
	return newExt
}

// WithRulesFile loads the dialect rules from a YAML file. A load error is
// returned by the next terminal operation.
func (e *Extractor) WithRulesFile(path string) *Extractor {
	newExt := e.clone()
	rules, err := dialect.Load(path)
	if err != nil {
		if newExt.err == nil {
			newExt.err = err
		}
		return newExt
	}
	newExt.options.rules = rules
	return newExt
}

// WithLogger sets the logger that receives the classification, point and
// warning messages of extraction and generation.
func (e *Extractor) WithLogger(logger *zap.Logger) *Extractor {
	newExt := e.clone()
	if logger != nil {
		newExt.options.logger = logger
	}
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Report extracts the content of the report: metadata, attendance, next
// meeting, information exchange, planning and the points of every section.
// This is a terminal operation that releases the document.
//
// Warnings report tables, rows or patterns that could not be found; the
// affected fields are left empty.
//
// Example:
//
//	report, warnings, err := minutes.Open("report.docx").Report()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", minutes.FormatWarnings(warnings))
//	}
func (e *Extractor) Report() (*model.Report, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureDocument(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	report, warnings := parser.Parse(e.doc, e.options.parserConfig())
	return report, warnings, nil
}

// Language returns the detected language code of the report.
func (e *Extractor) Language() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if err := e.ensureDocument(); err != nil {
		return "", err
	}
	defer e.Close()

	return parser.DetectLanguage(e.doc, e.options.rules), nil
}

// TableInfo describes a body table and the role it was classified as.
type TableInfo struct {
	Index   int
	Role    string
	Rows    int
	Section string // subject tables only
}

// Tables classifies the body tables of the report.
func (e *Extractor) Tables() ([]TableInfo, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureDocument(); err != nil {
		return nil, err
	}
	defer e.Close()

	rules := e.options.rules
	classified := tables.Classify(e.doc.Tables(), rules)
	infos := make([]TableInfo, 0, len(classified))
	for _, c := range classified {
		info := TableInfo{Index: c.Index, Role: c.Role.String(), Rows: c.Table.RowCount()}
		if c.Role == tables.RoleSubject {
			info.Section = tables.DetectLayout(c.Table, rules).Section
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Generate writes the report that follows this one to out. An empty out
// writes next to the source, under the source name with the meeting number
// and date of u (see generator.OutputName). The source is never modified.
//
// Example:
//
//	res, warnings, err := minutes.Open("PENTA_MoM-PV N12 20260211.docx").Generate("", updates)
//	// res.Output == "PENTA_MoM-PV N13 20260225.docx"
func (e *Extractor) Generate(out string, u *model.Updates) (generator.Result, []Warning, error) {
	if e.err != nil {
		return generator.Result{}, nil, e.err
	}
	if u == nil {
		return generator.Result{}, nil, errors.New("no updates specified")
	}
	if out == "" {
		if e.filename == "" {
			return generator.Result{}, nil, errors.New("no output filename specified")
		}
		out = filepath.Join(filepath.Dir(e.filename), generator.OutputName(e.filename, u.MeetingNumber, u.Date))
	}

	cfg := e.options.generatorConfig()

	// A document handed in by the caller is edited through a copy.
	if e.docOpened && !e.ownsDoc {
		return generateFrom(e.doc, out, u, cfg)
	}
	if err := e.detectFormat(); err != nil {
		return generator.Result{}, nil, err
	}
	return generator.Generate(e.filename, out, u, cfg)
}

func generateFrom(doc *docx.Document, out string, u *model.Updates, cfg generator.Config) (generator.Result, []Warning, error) {
	if err := u.Validate(); err != nil {
		return generator.Result{}, nil, fmt.Errorf("generating report: %w", err)
	}
	data, err := doc.Bytes()
	if err != nil {
		return generator.Result{}, nil, fmt.Errorf("generating report: %w", err)
	}
	next, err := docx.Read(data)
	if err != nil {
		return generator.Result{}, nil, fmt.Errorf("generating report: %w", err)
	}

	res, warnings := generator.Apply(next, u, cfg)
	res.Output = out
	if err := next.Save(out); err != nil {
		return res, warnings, fmt.Errorf("generating report: %w", err)
	}
	return res, warnings, nil
}
