package docx

import (
	"strings"

	"github.com/beevik/etree"
)

// Table is a table (<w:tbl>) of a document.
type Table struct {
	doc *Document
	el  *etree.Element
}

// Row is a table row (<w:tr>).
type Row struct {
	doc *Document
	el  *etree.Element
}

// Cell is a physical table cell (<w:tc>). A cell spanning several grid
// columns is still a single Cell.
type Cell struct {
	doc *Document
	el  *etree.Element
}

// Rows returns the rows of the table in order.
func (t *Table) Rows() []*Row {
	var rows []*Row
	for _, el := range children(t.el, "tr") {
		rows = append(rows, &Row{doc: t.doc, el: el})
	}
	return rows
}

// Row returns the row at index i, or nil if there is none.
func (t *Table) Row(i int) *Row {
	rows := t.Rows()
	if i < 0 || i >= len(rows) {
		return nil
	}
	return rows[i]
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(children(t.el, "tr"))
}

// GridColumns returns the number of grid columns declared by the table's
// <w:tblGrid>. Tables without a grid fall back to the widest row, counting
// spanned columns.
func (t *Table) GridColumns() int {
	if grid := child(t.el, "tblGrid"); grid != nil {
		if n := len(children(grid, "gridCol")); n > 0 {
			return n
		}
	}

	cols := 0
	for _, row := range t.Rows() {
		if n := row.GridWidth(); n > cols {
			cols = n
		}
	}
	return cols
}

// HeaderText returns the text of the first row.
func (t *Table) HeaderText() string {
	if row := t.Row(0); row != nil {
		return row.Text()
	}
	return ""
}

// ToText returns a plain text representation of the table: one line per row,
// cells separated by tabs, newlines within cells replaced by spaces.
func (t *Table) ToText() string {
	var sb strings.Builder
	for i, row := range t.Rows() {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row.Cells() {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(strings.ReplaceAll(cell.Text(), "\n", " "))
		}
	}
	return sb.String()
}

// Cells returns the physical cells of the row.
func (r *Row) Cells() []*Cell {
	var cells []*Cell
	for _, el := range children(r.el, "tc") {
		cells = append(cells, &Cell{doc: r.doc, el: el})
	}
	return cells
}

// Cell returns the physical cell at index i, or nil if there is none.
func (r *Row) Cell(i int) *Cell {
	cells := r.Cells()
	if i < 0 || i >= len(cells) {
		return nil
	}
	return cells[i]
}

// GridWidth returns the number of grid columns covered by the row's cells.
func (r *Row) GridWidth() int {
	n := 0
	for _, c := range r.Cells() {
		n += c.GridSpan()
	}
	return n
}

// Text returns the texts of the row's cells joined by spaces.
func (r *Row) Text() string {
	var parts []string
	for _, c := range r.Cells() {
		parts = append(parts, c.Text())
	}
	return strings.Join(parts, " ")
}

// IsHeader reports whether the row repeats as a header row (<w:tblHeader>).
func (r *Row) IsHeader() bool {
	trPr := child(r.el, "trPr")
	h := child(trPr, "tblHeader")
	if h == nil {
		return false
	}
	val, _ := attrVal(h, "val")
	return !isOff(val)
}

// xml returns the serialized row.
func (r *Row) xml() string {
	return outerXML(r.el)
}

// GridSpan returns the number of grid columns the cell spans (1 if unset).
func (c *Cell) GridSpan() int {
	span := child(child(c.el, "tcPr"), "gridSpan")
	val, _ := attrVal(span, "val")
	return atoiDefault(val, 1)
}

// VMerge returns the cell's vertical merge state: "" when the cell is not
// vertically merged, "restart" when it starts a merge and "continue" when it
// continues the merge of the cell above.
func (c *Cell) VMerge() string {
	vm := child(child(c.el, "tcPr"), "vMerge")
	if vm == nil {
		return ""
	}
	if val, _ := attrVal(vm, "val"); val == "restart" {
		return "restart"
	}
	return "continue"
}

// Shading returns the cell's background fill, or "" if it has none.
func (c *Cell) Shading() string {
	shd := child(child(c.el, "tcPr"), "shd")
	fill, _ := attrVal(shd, "fill")
	if fill == "auto" {
		return ""
	}
	return fill
}

// ClearShading removes the cell's background shading.
func (c *Cell) ClearShading() {
	if tcPr := child(c.el, "tcPr"); tcPr != nil {
		if removeChildren(tcPr, "shd") > 0 {
			c.doc.touch()
		}
	}
}

// Paragraphs returns the paragraphs of the cell in order.
func (c *Cell) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range children(c.el, "p") {
		paras = append(paras, &Paragraph{doc: c.doc, el: el})
	}
	return paras
}

// SlotCount returns the number of paragraph slots in the cell, empty ones
// included.
func (c *Cell) SlotCount() int {
	return len(children(c.el, "p"))
}

// Lines returns the text of each paragraph of the cell.
func (c *Cell) Lines() []string {
	var lines []string
	for _, p := range c.Paragraphs() {
		lines = append(lines, p.Text())
	}
	return lines
}

// Text returns the cell text, paragraphs separated by newlines.
func (c *Cell) Text() string {
	return strings.Join(c.Lines(), "\n")
}

// xml returns the serialized cell.
func (c *Cell) xml() string {
	return outerXML(c.el)
}

// outerXML serializes a detached copy of el.
func outerXML(el *etree.Element) string {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	doc.SetRoot(el.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}
