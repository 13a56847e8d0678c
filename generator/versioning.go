package generator

import (
	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/tables"
)

// Demote clears the bold of every run in the data rows of every subject
// and planning table, and returns the number of runs changed. Header rows,
// including rows flagged to repeat as headers, keep their formatting.
// Demoting twice changes nothing the second time.
func Demote(classified []tables.Classified, rules *dialect.Rules) int {
	n := 0
	for _, c := range classified {
		var start int
		switch c.Role {
		case tables.RoleSubject:
			start = tables.DetectLayout(c.Table, rules).DataStart
		case tables.RolePlanning:
			start = 1
		default:
			continue
		}
		rows := c.Table.Rows()
		for ri := start; ri < len(rows); ri++ {
			if rows[ri].IsHeader() {
				continue
			}
			n += rows[ri].Demote()
		}
	}
	return n
}
