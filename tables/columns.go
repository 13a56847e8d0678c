package tables

import (
	"strings"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
)

// ColumnMap holds the physical cell index of each point field. A negative
// index means the field has no column.
type ColumnMap struct {
	Number  int
	Title   int
	Subject int
	ForWhom int
	Due     int

	// HeaderCells is the physical cell count of the header row.
	HeaderCells int
}

// DefaultColumns returns the positional map of a row with n physical cells:
// number, title and subject first, for-whom and due last.
func DefaultColumns(n int) ColumnMap {
	m := ColumnMap{Number: 0, Title: 1, Subject: 2, ForWhom: n - 2, Due: n - 1, HeaderCells: n}
	if m.ForWhom <= m.Subject {
		m.ForWhom = -1
	}
	if m.Due <= m.Subject {
		m.Due = -1
	}
	return m
}

// DetectColumns maps the cells of a header row to point fields.
func DetectColumns(header *docx.Row, rules *dialect.Rules) ColumnMap {
	if header == nil {
		return DefaultColumns(0)
	}
	cells := header.Cells()
	labels := make([]string, len(cells))
	for i, c := range cells {
		labels[i] = c.Text()
	}
	return DetectColumnsFromLabels(labels, rules)
}

// DetectColumnsFromLabels maps header labels to point fields. Unmatched
// fields keep their positional default.
func DetectColumnsFromLabels(labels []string, rules *dialect.Rules) ColumnMap {
	m := DefaultColumns(len(labels))

	cols := rules.Columns
	seen := map[string]bool{}
	set := func(field string, dst *int, i int) {
		if !seen[field] {
			*dst = i
			seen[field] = true
		}
	}
	for i, label := range labels {
		if strings.TrimSpace(label) == "" {
			continue
		}
		switch {
		case cols.ForWhom.Match(label):
			set("for_whom", &m.ForWhom, i)
		case cols.Due.Match(label):
			set("due", &m.Due, i)
		case cols.Number.Match(label):
			set("number", &m.Number, i)
		case cols.Title.Match(label):
			set("title", &m.Title, i)
		case cols.Subject.Match(label):
			set("subject", &m.Subject, i)
		}
	}
	return m
}

// Resolve returns the map for a row with n physical cells. Rows shaped like
// the header use the detected indices; others fall back to positions.
func (m ColumnMap) Resolve(n int) ColumnMap {
	if n == m.HeaderCells {
		return m
	}
	return DefaultColumns(n)
}

// PointNumber returns the trimmed number of a point row. Rows with fewer
// than three physical cells or an empty number are not points.
func (m ColumnMap) PointNumber(row *docx.Row) (string, bool) {
	cells := row.Cells()
	if len(cells) < 3 {
		return "", false
	}
	rm := m.Resolve(len(cells))
	if rm.Number < 0 || rm.Number >= len(cells) {
		return "", false
	}
	num := strings.TrimSpace(cells[rm.Number].Text())
	return num, num != ""
}
