package parser

import (
	"strconv"
	"strings"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
	"github.com/tsawler/minutes/tables"
)

// Rows of the metadata table.
const (
	RowNumberDate       = 1
	RowLocation         = 2
	RowDistribution     = 3
	RowAttendanceHeader = 4
	RowAttendanceStart  = 5
	RowAttendanceEnd    = 9 // inclusive
)

// metadataFields maps metadata rows to the fields read from them.
var metadataFields = []struct {
	row  int
	name string
	read func(rules *dialect.Rules, row *docx.Row, m *model.Metadata) bool
}{
	{RowNumberDate, "meeting number", readNumber},
	{RowNumberDate, "date", readDate},
	{RowLocation, "location", readLocation},
	{RowDistribution, "distribution date", readDistribution},
}

func (p *parser) metadata(c tables.Classified) model.Metadata {
	var m model.Metadata
	for _, f := range metadataFields {
		row := c.Table.Row(f.row)
		if row == nil {
			p.warn(model.ErrStructureNotFound, c.Index, "%s: no row %d", f.name, f.row)
			continue
		}
		if !f.read(p.cfg.Rules, row, &m) {
			p.warn(model.ErrPatternMismatch, c.Index, "%s not found in row %d", f.name, f.row)
		}
	}
	return m
}

func readNumber(rules *dialect.Rules, row *docx.Row, m *model.Metadata) bool {
	if sm := rules.MeetingNumber().FindStringSubmatch(row.Text()); sm != nil {
		if n, err := strconv.Atoi(sm[1]); err == nil {
			m.MeetingNumber = n
			return true
		}
	}
	if c, n := NumberCell(row, 0); c != nil {
		m.MeetingNumber = n
		return true
	}
	return false
}

func readDate(rules *dialect.Rules, row *docx.Row, m *model.Metadata) bool {
	m.Date = rules.Date().FindString(row.Text())
	return m.Date != ""
}

// readLocation reads the first cell only; merged cells repeat their text.
func readLocation(rules *dialect.Rules, row *docx.Row, m *model.Metadata) bool {
	c := row.Cell(0)
	if c == nil {
		return false
	}
	text := strings.TrimSpace(c.Text())
	if sm := rules.Location().FindStringSubmatch(text); sm != nil {
		text = strings.TrimSpace(sm[1])
	}
	m.Location = text
	return text != ""
}

func readDistribution(rules *dialect.Rules, row *docx.Row, m *model.Metadata) bool {
	if sm := rules.Distribution().FindStringSubmatch(row.Text()); sm != nil {
		m.DistributionDate = sm[1]
		return true
	}
	return false
}

// NumberCell returns the first cell from index from on whose whole text is
// a number, with that number. It returns nil when there is none.
func NumberCell(row *docx.Row, from int) (*docx.Cell, int) {
	cells := row.Cells()
	for i := from; i < len(cells); i++ {
		text := strings.TrimSpace(cells[i].Text())
		if !isDigits(text) {
			continue
		}
		if n, err := strconv.Atoi(text); err == nil {
			return cells[i], n
		}
	}
	return nil, 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
