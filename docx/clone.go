package docx

import (
	"strings"

	"github.com/beevik/etree"
)

// CloneRow appends a copy of src after the last row of the table and voids
// it: every paragraph loses its runs, hyperlinks, bookmarks and fields but
// keeps its properties, and every cell keeps its properties (span, shading,
// widths) except vertical merging. The new row is returned.
func (t *Table) CloneRow(src *Row) *Row {
	if src == nil {
		return nil
	}
	el := src.el.Copy()
	voidRow(el)
	t.appendRow(el)
	return &Row{doc: t.doc, el: el}
}

// CloneHeaderRow appends a voided copy of the first row after the last row.
// Unlike CloneRow, cell shading, the repeating-header flag and the header
// emphasis left on the paragraph marks (bold, font color, highlight and
// shading) are stripped, so the new row looks like a data row. Text written
// into the voided cells takes its template from those marks.
func (t *Table) CloneHeaderRow() *Row {
	header := t.Row(0)
	if header == nil {
		return nil
	}
	row := t.CloneRow(header)
	if trPr := child(row.el, "trPr"); trPr != nil {
		removeChildren(trPr, "tblHeader")
	}
	for _, c := range row.Cells() {
		c.ClearShading()
		for _, p := range children(c.el, "p") {
			pPr := child(p, "pPr")
			if pPr == nil {
				continue
			}
			removeChildren(pPr, "shd")
			if rPr := child(pPr, "rPr"); rPr != nil {
				removeChildren(rPr, "b", "bCs", "color", "highlight", "shd")
			}
		}
	}
	return row
}

// DeleteRowsFrom removes every row at index i and after. It returns the
// number of rows removed.
func (t *Table) DeleteRowsFrom(i int) int {
	rows := children(t.el, "tr")
	if i < 0 {
		i = 0
	}
	n := 0
	for ; i < len(rows); i++ {
		t.el.RemoveChild(rows[i])
		n++
	}
	if n > 0 {
		t.doc.touch()
	}
	return n
}

// Demote clears bold from every bold run of the row and returns the number
// of runs changed.
func (r *Row) Demote() int {
	n := 0
	for _, c := range r.Cells() {
		n += c.Demote()
	}
	return n
}

// Demote clears bold from every bold run of the cell, nested content
// included, and returns the number of runs changed.
func (c *Cell) Demote() int {
	n := 0
	for _, run := range collectRuns(c.doc, c.el) {
		if run.Bold() {
			run.SetBold(false)
			n++
		}
	}
	return n
}

func (t *Table) appendRow(el *etree.Element) {
	rows := children(t.el, "tr")
	if len(rows) == 0 {
		t.el.AddChild(el)
	} else {
		insertAfter(rows[len(rows)-1], el)
	}
	t.doc.touch()
}

// voidRow empties the cells of a detached or attached row element.
func voidRow(tr *etree.Element) {
	for _, tc := range children(tr, "tc") {
		if tcPr := child(tc, "tcPr"); tcPr != nil {
			removeChildren(tcPr, "vMerge")
		}
		// Nested tables and content controls go; a cell must keep one paragraph.
		removeChildren(tc, "tbl", "sdt", "customXml", "bookmarkStart", "bookmarkEnd")
		paras := children(tc, "p")
		if len(paras) == 0 {
			tc.AddChild(newElement(tc, "p"))
			continue
		}
		for _, p := range paras {
			voidParagraph(p)
		}
	}
}

// AddParagraph appends an empty paragraph to the cell. It takes the
// paragraph properties of the cell's last paragraph.
func (c *Cell) AddParagraph() *Paragraph {
	p := newElement(c.el, "p")
	paras := children(c.el, "p")
	if len(paras) > 0 {
		last := paras[len(paras)-1]
		if pPr := child(last, "pPr"); pPr != nil {
			p.AddChild(pPr.Copy())
		}
		insertAfter(last, p)
	} else {
		c.el.AddChild(p)
	}
	c.doc.touch()
	return &Paragraph{doc: c.doc, el: p}
}

// SetLines writes one line per paragraph slot, reusing the cell's existing
// paragraphs first and appending new ones when they run out. Slots past the
// last line are left as they are. New runs take the character formatting of
// the slot they land in, else of the cell's last run.
func (c *Cell) SetLines(lines []string, bold bool) {
	c.writeLines(lines, bold, c.runTemplate())
}

// FillFrom writes lines like SetLines, taking the character formatting of
// the last run of src for slots that have none of their own. It is meant
// for cloned rows, whose runs are gone.
func (c *Cell) FillFrom(src *Cell, lines []string, bold bool) {
	var tmpl *etree.Element
	if src != nil {
		tmpl = src.runTemplate()
	}
	if tmpl == nil {
		tmpl = c.runTemplate()
	}
	c.writeLines(lines, bold, tmpl)
}

func (c *Cell) writeLines(lines []string, bold bool, fallback *etree.Element) {
	paras := c.Paragraphs()
	for i, line := range lines {
		var p *Paragraph
		if i < len(paras) {
			p = paras[i]
		} else {
			p = c.AddParagraph()
		}
		tmpl := fallback
		if tmpl == nil || len(p.Runs()) > 0 {
			tmpl = p.runTemplate()
		}
		voidParagraph(p.el)
		c.doc.touch()
		if line != "" {
			p.appendRun(tmpl, line, bold)
		}
	}
}

// SetText writes text into the cell, one paragraph per line.
func (c *Cell) SetText(text string, bold bool) {
	c.SetLines(strings.Split(text, "\n"), bold)
}

// AppendLines adds one new paragraph per line after the existing ones. The
// new runs take the character formatting of the cell's last run.
func (c *Cell) AppendLines(lines []string, bold bool) {
	tmpl := c.runTemplate()
	for _, line := range lines {
		p := c.AddParagraph()
		if line != "" {
			p.appendRun(tmpl, line, bold)
		}
	}
}

// runTemplate returns the run template of the cell's last paragraph that
// has one.
func (c *Cell) runTemplate() *etree.Element {
	paras := c.Paragraphs()
	for i := len(paras) - 1; i >= 0; i-- {
		if len(paras[i].Runs()) == 0 {
			continue
		}
		if tmpl := paras[i].runTemplate(); tmpl != nil {
			return tmpl
		}
	}
	return nil
}

// PadSlots appends empty paragraphs until the cell has at least n paragraph
// slots. It returns the number of paragraphs added.
func (c *Cell) PadSlots(n int) int {
	added := 0
	for c.SlotCount() < n {
		c.AddParagraph()
		added++
	}
	return added
}

// TrimSlots removes trailing paragraphs until the cell has at most n
// paragraph slots, keeping at least one. It returns the number removed.
func (c *Cell) TrimSlots(n int) int {
	if n < 1 {
		n = 1
	}
	paras := children(c.el, "p")
	removed := 0
	for i := len(paras) - 1; i >= n; i-- {
		c.el.RemoveChild(paras[i])
		removed++
	}
	if removed > 0 {
		c.doc.touch()
	}
	return removed
}
