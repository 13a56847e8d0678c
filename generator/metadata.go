package generator

import (
	"regexp"
	"strconv"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
	"github.com/tsawler/minutes/parser"
)

var (
	trailingNumber = regexp.MustCompile(`(\d+)\s*$`)
	digits         = regexp.MustCompile(`\d+`)
)

// MetadataPatch reports which metadata fields were rewritten.
type MetadataPatch struct {
	Number       bool // labelled or trailing number of the title
	NumberCell   bool // stand-alone number cell
	Date         bool
	Distribution bool
}

// PatchMetadata rewrites the meeting number, the date and, when given, the
// distribution date of the metadata table. Only the matched text changes;
// the runs around it keep their formatting.
//
// The number is looked up the way the parser reads it: a labelled number
// ("n° 12") anywhere in the row first, then a cell holding only a number.
// A number ending the first cell is the last resort.
func PatchMetadata(t *docx.Table, rules *dialect.Rules, u *model.Updates) MetadataPatch {
	var p MetadataPatch
	number := strconv.Itoa(u.MeetingNumber)

	if row := t.Row(parser.RowNumberDate); row != nil {
		for _, c := range row.Cells() {
			if c.PatchSubmatch(rules.MeetingNumber(), 1, number) {
				p.Number = true
				break
			}
		}
		if !p.Number {
			if c, _ := parser.NumberCell(row, 0); c != nil {
				p.NumberCell = c.Patch(digits, number)
			}
		}
		if !p.Number && !p.NumberCell {
			p.Number = patchTrailingNumber(row.Cell(0), number)
		}
		for _, c := range row.Cells() {
			if rules.Date().MatchString(c.Text()) {
				p.Date = c.Patch(rules.Date(), u.Date)
				break
			}
		}
	}

	if u.DistributionDate == "" {
		return p
	}
	if row := t.Row(parser.RowDistribution); row != nil {
		if c := row.Cell(0); c != nil {
			p.Distribution = c.PatchSubmatch(rules.Distribution(), 1, u.DistributionDate) ||
				c.Patch(rules.Date(), u.DistributionDate)
		}
	}
	return p
}

// patchTrailingNumber replaces the number ending the first paragraph of c
// that has one.
func patchTrailingNumber(c *docx.Cell, number string) bool {
	if c == nil {
		return false
	}
	for _, para := range c.Paragraphs() {
		text := para.Text()
		loc := trailingNumber.FindStringSubmatchIndex(text)
		// The year of a trailing date is not a meeting number.
		if loc == nil || (loc[2] > 0 && text[loc[2]-1] == '/') {
			continue
		}
		return para.PatchSpan(loc[2], loc[3], number)
	}
	return false
}
