package parser

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
	"github.com/tsawler/minutes/tables"
)

func (p *parser) section(c tables.Classified) model.Section {
	rules := p.cfg.Rules
	layout := tables.DetectLayout(c.Table, rules)
	header := c.Table.Row(layout.HeaderRow)
	if header == nil {
		p.warn(model.ErrStructureNotFound, c.Index, "section %q has no header row", layout.Section)
	}
	cols := tables.DetectColumns(header, rules)

	s := model.Section{Name: layout.Section, TableIndex: c.Index, Points: []model.Point{}}
	for ri := layout.DataStart; ri < c.Table.RowCount(); ri++ {
		if pt, ok := ParsePoint(c.Table.Row(ri), cols); ok {
			s.Points = append(s.Points, pt)
		}
	}

	p.log.Debug("section extracted",
		zap.String("section", s.Name),
		zap.Int("table", c.Index),
		zap.Bool("titled", layout.Titled),
		zap.Int("points", len(s.Points)),
	)
	return s
}

// ParsePoint reads a point from a subject table row. It returns false for
// rows that hold no point.
func ParsePoint(row *docx.Row, cols tables.ColumnMap) (model.Point, bool) {
	number, ok := cols.PointNumber(row)
	if !ok {
		return model.Point{}, false
	}
	m := cols.Resolve(len(row.Cells()))

	pt := model.Point{
		Number:  number,
		Subject: []model.SubjectParagraph{},
		ForWhom: []string{},
		Due:     []string{},
	}
	if c := row.Cell(m.Title); c != nil {
		pt.Title = strings.TrimSpace(c.Text())
	}
	if c := row.Cell(m.Subject); c != nil {
		for _, para := range c.Paragraphs() {
			pt.Subject = append(pt.Subject, model.SubjectParagraph{Text: para.Text(), HasBold: para.HasBold()})
		}
	}
	if c := row.Cell(m.ForWhom); c != nil {
		pt.ForWhom = append(pt.ForWhom, c.Lines()...)
	}
	if c := row.Cell(m.Due); c != nil {
		pt.Due = append(pt.Due, c.Lines()...)
	}
	return pt, true
}
