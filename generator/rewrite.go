package generator

import (
	"strings"

	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
)

// RewriteInfoExchange replaces the rows below the header of an information
// exchange table with one row per item, built from the header row without
// its shading. It returns the number of rows written; no items leave the
// table as it is.
func RewriteInfoExchange(t *docx.Table, items []model.InfoExchangeItem) int {
	if len(items) == 0 {
		return 0
	}
	t.DeleteRowsFrom(1)
	for _, it := range items {
		row := t.CloneHeaderRow()
		if row == nil {
			return 0
		}
		for i, v := range []string{it.FromWhom, it.Status, it.Content, it.DueDate} {
			if c := row.Cell(i); c != nil {
				c.SetText(v, false)
			}
		}
	}
	return len(items)
}

// RewritePlanning replaces the rows below the header of a planning table
// with one row per item, one paragraph per line, bold when the item is new.
// It returns the number of rows written; no items leave the table as it is.
func RewritePlanning(t *docx.Table, items []model.PlanningItem) int {
	if len(items) == 0 {
		return 0
	}
	t.DeleteRowsFrom(1)
	for _, it := range items {
		row := t.CloneHeaderRow()
		if row == nil {
			return 0
		}
		c := row.Cell(0)
		if c == nil {
			continue
		}
		lines := strings.Split(it.Content, "\n")
		c.SetLines(lines, it.IsNew)
		c.TrimSlots(len(lines))
	}
	return len(items)
}
