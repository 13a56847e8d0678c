package tables

import (
	"strings"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
)

// Layout locates the parts of a subject table.
type Layout struct {
	Section   string // section name, the fallback name when none is found
	Titled    bool   // row 0 is a merged section title
	HeaderRow int
	DataStart int // first row that may hold a point
}

// IsTitleRow reports whether row is a merged title: a single physical cell,
// or a first cell spanning four or more grid columns.
func IsTitleRow(row *docx.Row) bool {
	if row == nil {
		return false
	}
	cells := row.Cells()
	switch {
	case len(cells) == 1:
		return true
	case len(cells) > 1:
		return cells[0].GridSpan() >= 4
	}
	return false
}

// DetectLayout returns the layout of a subject table.
func DetectLayout(t *docx.Table, rules *dialect.Rules) Layout {
	row0 := t.Row(0)
	if IsTitleRow(row0) {
		l := Layout{Titled: true, HeaderRow: 1, DataStart: 2}
		l.Section = titleSection(row0, rules)
		return l
	}

	l := Layout{HeaderRow: 0, DataStart: 1, Section: rules.Sections.Fallback}
	if row0 == nil {
		return l
	}
	if name := headerSection(row0, rules); name != "" {
		l.Section = name
	}
	return l
}

func titleSection(row *docx.Row, rules *dialect.Rules) string {
	text := strings.TrimSpace(row.Cells()[0].Text())
	if m := rules.SectionTitle().FindStringSubmatch(text); m != nil {
		if name := cleanName(m[1]); name != "" {
			return name
		}
	}
	if name := cleanName(text); name != "" {
		return name
	}
	return rules.Sections.Fallback
}

func headerSection(row *docx.Row, rules *dialect.Rules) string {
	for _, c := range row.Cells() {
		text := c.Text()
		for _, re := range rules.SectionHeaders() {
			if m := re.FindStringSubmatch(text); m != nil {
				if name := cleanName(m[1]); name != "" {
					return name
				}
			}
		}
	}
	return ""
}

// cleanName joins a multi-line name and collapses white space.
func cleanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
