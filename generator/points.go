package generator

import (
	"strings"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
	"github.com/tsawler/minutes/tables"
)

// SectionMatch tells how a section name was matched to a table.
type SectionMatch int

const (
	MatchNone     SectionMatch = iota
	MatchName                  // detected section name
	MatchHeader                // header text containing the name
	MatchFallback              // first subject table
)

// String returns the match kind.
func (m SectionMatch) String() string {
	switch m {
	case MatchName:
		return "name"
	case MatchHeader:
		return "header"
	case MatchFallback:
		return "fallback"
	default:
		return "none"
	}
}

// SectionTable is a subject table with its layout and column map.
type SectionTable struct {
	tables.Classified
	Layout  tables.Layout
	Columns tables.ColumnMap
}

// NewSectionTable detects the layout and columns of a subject table.
func NewSectionTable(c tables.Classified, rules *dialect.Rules) SectionTable {
	layout := tables.DetectLayout(c.Table, rules)
	return SectionTable{
		Classified: c,
		Layout:     layout,
		Columns:    tables.DetectColumns(c.Table.Row(layout.HeaderRow), rules),
	}
}

// FindSectionTable returns the subject table of the named section: the
// table whose detected section name equals name, ignoring case, else the
// first whose header text contains name, else the first subject table for
// reports that keep all points in one table.
func FindSectionTable(classified []tables.Classified, name string, rules *dialect.Rules) (SectionTable, SectionMatch) {
	subjects := tables.Filter(classified, tables.RoleSubject)
	if len(subjects) == 0 {
		return SectionTable{}, MatchNone
	}

	sections := make([]SectionTable, len(subjects))
	for i, c := range subjects {
		sections[i] = NewSectionTable(c, rules)
	}

	want := dialect.Fold(name)
	if want != "" {
		for _, s := range sections {
			if dialect.Fold(s.Layout.Section) == want {
				return s, MatchName
			}
		}
		for _, s := range sections {
			if dialect.ContainsAny(s.Table.HeaderText(), []string{name}) {
				return s, MatchHeader
			}
		}
	}
	return sections[0], MatchFallback
}

// FindPoint returns the row of the point whose number is exactly number,
// or nil.
func (s SectionTable) FindPoint(number string) *docx.Row {
	rows := s.Table.Rows()
	for ri := s.Layout.DataStart; ri < len(rows); ri++ {
		if n, ok := s.Columns.PointNumber(rows[ri]); ok && n == number {
			return rows[ri]
		}
	}
	return nil
}

// UpdatePoint appends a bold label line and the update's lines to the
// subject cell of the point, and the new for-whom and due values, aligned
// with the last subject line. It returns false when the point is absent.
func (s SectionTable) UpdatePoint(pu model.PointUpdate, label string) bool {
	row := s.FindPoint(pu.Number)
	if row == nil {
		return false
	}
	m := s.Columns.Resolve(len(row.Cells()))

	subject := row.Cell(m.Subject)
	if subject == nil {
		return false
	}
	subject.AppendLines(append([]string{label}, pu.SubjectLines...), true)
	count := subject.SlotCount()

	for _, f := range []struct {
		index int
		value string
	}{
		{m.ForWhom, pu.ForWhom},
		{m.Due, pu.Due},
	} {
		if f.value == "" || f.index == m.Subject {
			continue
		}
		if c := row.Cell(f.index); c != nil {
			AlignSlots(c, count)
			c.AppendLines([]string{f.value}, true)
		}
	}
	return true
}

// AddPoint appends a new point row to the table, cloned from the last
// point row, and fills it in bold. It returns nil when the table has no row
// to clone.
func (s SectionTable) AddPoint(np model.NewPoint, label string) *docx.Row {
	tmpl := s.templateRow()
	if tmpl == nil {
		return nil
	}
	row := s.Table.CloneRow(tmpl)
	m := s.Columns.Resolve(len(row.Cells()))
	subjectLines := append([]string{label}, np.SubjectLines...)

	fill := func(i int, lines []string) {
		c := row.Cell(i)
		if c == nil {
			return
		}
		c.FillFrom(tmpl.Cell(i), lines, true)
		c.TrimSlots(len(lines))
	}
	fill(m.Number, []string{np.Number})
	fill(m.Title, strings.Split(np.Title, "\n"))
	fill(m.Subject, subjectLines)
	if m.ForWhom != m.Subject {
		fill(m.ForWhom, alignedLines(len(subjectLines), np.ForWhom))
	}
	if m.Due != m.Subject {
		fill(m.Due, alignedLines(len(subjectLines), np.Due))
	}
	return row
}

// templateRow returns the last point row, else the last data row with at
// least three cells.
func (s SectionTable) templateRow() *docx.Row {
	rows := s.Table.Rows()
	for ri := len(rows) - 1; ri >= s.Layout.DataStart; ri-- {
		if _, ok := s.Columns.PointNumber(rows[ri]); ok {
			return rows[ri]
		}
	}
	for ri := len(rows) - 1; ri >= s.Layout.DataStart; ri-- {
		if len(rows[ri].Cells()) >= 3 {
			return rows[ri]
		}
	}
	return nil
}
