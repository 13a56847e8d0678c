package parser

import (
	"strings"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
)

// attendanceSides are the physical cells where each half of the attendance
// matrix starts. A side is a name cell followed by one mark cell per status.
var attendanceSides = [...]int{0, 5}

// attendanceStatuses are the statuses of the mark cells, in order.
var attendanceStatuses = [...]model.Status{
	model.StatusPresent,
	model.StatusExcused,
	model.StatusInvited,
	model.StatusDiffusion,
}

// ParseAttendance reads the attendance matrix in rows first to last,
// inclusive. The name cell holds the organization on its first non-empty
// line and one person per following line. In a mark cell, a line holding
// the mark flags the person one line above it: line 0 faces the
// organization. Marks without a matching person are ignored.
func ParseAttendance(t *docx.Table, first, last int, mark string) []model.Attendee {
	var out []model.Attendee
	mark = dialect.Fold(mark)

	for ri := first; ri <= last && ri < t.RowCount(); ri++ {
		cells := t.Row(ri).Cells()
		for _, side := range attendanceSides {
			if side >= len(cells) {
				break
			}
			names := nonEmptyLines(cells[side].Lines())
			if len(names) == 0 {
				continue
			}

			a := model.Attendee{Organization: names[0], People: make([]model.Person, len(names)-1)}
			for i, name := range names[1:] {
				a.People[i] = model.Person{Name: name, Status: []model.Status{}}
			}

			for off := 1; off <= len(attendanceStatuses) && side+off < len(cells); off++ {
				for li, line := range cells[side+off].Lines() {
					pi := li - 1
					if pi < 0 || pi >= len(a.People) || !hasMark(line, mark) {
						continue
					}
					a.People[pi].Status = append(a.People[pi].Status, attendanceStatuses[off-1])
				}
			}
			out = append(out, a)
		}
	}
	return out
}

func hasMark(line, mark string) bool {
	return mark != "" && strings.Contains(dialect.Fold(line), mark)
}

func nonEmptyLines(lines []string) []string {
	var out []string
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
