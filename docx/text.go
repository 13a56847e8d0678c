package docx

import (
	"strings"

	"github.com/beevik/etree"
)

// Paragraph is a paragraph (<w:p>).
type Paragraph struct {
	doc *Document
	el  *etree.Element
}

// Run is a text run (<w:r>) with uniform formatting.
type Run struct {
	doc *Document
	el  *etree.Element
}

// Runs returns the runs of the paragraph in document order, including runs
// nested in hyperlinks, insertions, smart tags and simple fields.
func (p *Paragraph) Runs() []*Run {
	return collectRuns(p.doc, p.el)
}

// collectRuns returns every <w:r> below el without descending into runs.
func collectRuns(doc *Document, el *etree.Element) []*Run {
	var runs []*Run
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, c := range e.ChildElements() {
			if isW(c, "r") {
				runs = append(runs, &Run{doc: doc, el: c})
				continue
			}
			walk(c)
		}
	}
	if el != nil {
		walk(el)
	}
	return runs
}

// Text returns the concatenated text of the paragraph's runs.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.Text())
	}
	return sb.String()
}

// HasBold reports whether any text-bearing run of the paragraph is bold.
func (p *Paragraph) HasBold() bool {
	for _, r := range p.Runs() {
		if r.Bold() && strings.TrimSpace(r.Text()) != "" {
			return true
		}
	}
	return false
}

// AddRun appends a run holding text to the paragraph. The run inherits the
// character formatting of the paragraph's last run, with bold set as given.
func (p *Paragraph) AddRun(text string, bold bool) *Run {
	return p.appendRun(p.runTemplate(), text, bold)
}

// SetText replaces the whole content of the paragraph with a single run.
// Paragraph properties are kept.
func (p *Paragraph) SetText(text string, bold bool) {
	tmpl := p.runTemplate()
	voidParagraph(p.el)
	p.doc.touch()
	if text != "" {
		p.appendRun(tmpl, text, bold)
	}
}

// runTemplate returns a copy of the run properties new runs should start
// from, with bold cleared, or nil if there is nothing to inherit.
func (p *Paragraph) runTemplate() *etree.Element {
	var src *etree.Element
	if runs := p.Runs(); len(runs) > 0 {
		src = child(runs[len(runs)-1].el, "rPr")
	}
	if src == nil {
		src = child(child(p.el, "pPr"), "rPr")
	}
	if src == nil {
		return nil
	}

	rPr := src.Copy()
	// Paragraph mark properties may carry revision marks that do not belong on a run.
	removeChildren(rPr, "b", "bCs", "ins", "del", "moveFrom", "moveTo", "rPrChange")
	return rPr
}

func (p *Paragraph) appendRun(tmpl *etree.Element, text string, bold bool) *Run {
	r := newElement(p.el, "r")
	if tmpl != nil && len(tmpl.ChildElements()) > 0 {
		r.AddChild(tmpl.Copy())
	}
	p.el.AddChild(r)

	run := &Run{doc: p.doc, el: r}
	if bold {
		run.SetBold(true)
	}
	run.SetText(text)
	p.doc.touch()
	return run
}

// voidParagraph removes everything from a paragraph except its properties.
func voidParagraph(p *etree.Element) {
	for _, c := range p.ChildElements() {
		if !isW(c, "pPr") {
			p.RemoveChild(c)
		}
	}
}

// Text returns the text of the run. Tabs and breaks are rendered as "\t"
// and "\n".
func (r *Run) Text() string {
	var sb strings.Builder
	for _, c := range r.el.ChildElements() {
		switch {
		case isW(c, "t"):
			sb.WriteString(c.Text())
		case isW(c, "tab"):
			sb.WriteString("\t")
		case isW(c, "br"), isW(c, "cr"):
			sb.WriteString("\n")
		case isW(c, "noBreakHyphen"):
			sb.WriteString("-")
		}
	}
	return sb.String()
}

// SetText replaces the content of the run, keeping its properties.
func (r *Run) SetText(text string) {
	for _, c := range r.el.ChildElements() {
		if !isW(c, "rPr") {
			r.el.RemoveChild(c)
		}
	}

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			r.el.AddChild(newElement(r.el, "br"))
		}
		for j, seg := range strings.Split(line, "\t") {
			if j > 0 {
				r.el.AddChild(newElement(r.el, "tab"))
			}
			if seg == "" {
				continue
			}
			t := newElement(r.el, "t")
			if strings.TrimSpace(seg) != seg {
				t.CreateAttr("xml:space", "preserve")
			}
			t.SetText(seg)
			r.el.AddChild(t)
		}
	}
	r.doc.touch()
}

// Bold reports whether the run carries direct bold formatting that is not
// switched off.
func (r *Run) Bold() bool {
	b := child(child(r.el, "rPr"), "b")
	if b == nil {
		return false
	}
	val, _ := attrVal(b, "val")
	return !isOff(val)
}

// SetBold sets or clears direct bold formatting. Clearing writes an explicit
// <w:b w:val="0"/> so that bold inherited from a style is overridden too.
func (r *Run) SetBold(bold bool) {
	rPr := child(r.el, "rPr")
	if rPr == nil {
		if !bold {
			return
		}
		rPr = newElement(r.el, "rPr")
		r.el.InsertChildAt(0, rPr)
	}

	b := child(rPr, "b")
	if b == nil {
		b = newElement(rPr, "b")
		rPr.InsertChildAt(boldIndex(rPr), b)
	}
	if bold {
		removeAttr(b, "val")
	} else {
		setAttr(b, "val", "0")
	}
	if bCs := child(rPr, "bCs"); bCs != nil {
		if bold {
			removeAttr(bCs, "val")
		} else {
			setAttr(bCs, "val", "0")
		}
	}
	r.doc.touch()
}

// boldIndex returns the child index <w:b> takes in rPr: right after the
// style and font references.
func boldIndex(rPr *etree.Element) int {
	idx := 0
	for _, c := range rPr.ChildElements() {
		if isW(c, "rStyle") || isW(c, "rFonts") {
			idx = c.Index() + 1
		}
	}
	return idx
}
