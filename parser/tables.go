package parser

import (
	"strings"

	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
)

// ParseInfoExchange reads the rows below the header of an information
// exchange table. Rows with fewer than four cells are skipped.
func ParseInfoExchange(t *docx.Table) []model.InfoExchangeItem {
	var items []model.InfoExchangeItem
	for ri := 1; ri < t.RowCount(); ri++ {
		cells := t.Row(ri).Cells()
		if len(cells) < 4 {
			continue
		}
		items = append(items, model.InfoExchangeItem{
			FromWhom: strings.TrimSpace(cells[0].Text()),
			Status:   strings.TrimSpace(cells[1].Text()),
			Content:  strings.TrimSpace(cells[2].Text()),
			DueDate:  strings.TrimSpace(cells[3].Text()),
		})
	}
	return items
}

// ParsePlanning reads the rows below the header of a planning table. An
// item is new when any of its text is bold.
func ParsePlanning(t *docx.Table) []model.PlanningItem {
	var items []model.PlanningItem
	for ri := 1; ri < t.RowCount(); ri++ {
		c := t.Row(ri).Cell(0)
		if c == nil {
			continue
		}
		text := strings.TrimSpace(c.Text())
		if text == "" {
			continue
		}
		item := model.PlanningItem{Content: text}
		for _, para := range c.Paragraphs() {
			if para.HasBold() {
				item.IsNew = true
				break
			}
		}
		items = append(items, item)
	}
	return items
}
