package docx

import (
	"strings"
	"testing"

	"github.com/tsawler/minutes/internal/docxtest"
)

func TestTable_CloneRow(t *testing.T) {
	body := docxtest.TableGrid(4,
		docxtest.Row(docxtest.Lines("N°"), docxtest.Lines("Title"), docxtest.Lines("Subject"), docxtest.Lines("Due")),
		docxtest.Row(
			docxtest.MergedCell("restart", docxtest.Para("07.01")),
			docxtest.ShadedCell("FFFF00", docxtest.P(docxtest.B("Facade"))),
			docxtest.SpanCell(2, docxtest.Para("line 1"), `<w:p><w:pPr><w:jc w:val="left"/></w:pPr><w:r><w:t>see </w:t></w:r><w:hyperlink r:id="rId3"><w:r><w:t>link</w:t></w:r></w:hyperlink><w:bookmarkStart w:id="0" w:name="x"/></w:p>`),
		),
	)
	d := readBody(t, body)
	tbl := d.Tables()[0]

	row := tbl.CloneRow(tbl.Row(1))
	if row == nil {
		t.Fatal("CloneRow() returned nil")
	}
	if got := tbl.RowCount(); got != 3 {
		t.Fatalf("RowCount() = %d, want 3", got)
	}
	if tbl.Row(2).xml() != row.xml() {
		t.Error("clone should be the last row")
	}
	if !d.Modified() {
		t.Error("document should be modified")
	}

	cells := row.Cells()
	if len(cells) != 3 {
		t.Fatalf("len(Cells()) = %d, want 3", len(cells))
	}
	for i, c := range cells {
		if got := c.Text(); got != "" && got != "\n" {
			t.Errorf("cell %d text = %q, want empty", i, got)
		}
		if len(collectRuns(d, c.el)) != 0 {
			t.Errorf("cell %d still has runs", i)
		}
	}
	if got := cells[0].VMerge(); got != "" {
		t.Errorf("VMerge() = %q, want empty", got)
	}
	if got := cells[1].Shading(); got != "FFFF00" {
		t.Errorf("Shading() = %q, want FFFF00", got)
	}
	if got := cells[2].GridSpan(); got != 2 {
		t.Errorf("GridSpan() = %d, want 2", got)
	}
	if got := cells[2].SlotCount(); got != 2 {
		t.Errorf("SlotCount() = %d, want 2", got)
	}
	for _, p := range cells[2].Paragraphs() {
		if child(p.el, "pPr") == nil {
			t.Error("paragraph properties should survive voiding")
		}
		if len(p.el.ChildElements()) != 1 {
			t.Errorf("voided paragraph has %d children, want 1", len(p.el.ChildElements()))
		}
	}

	// The template row is untouched.
	if got := tbl.Row(1).Cell(0).Text(); got != "07.01" {
		t.Errorf("template text = %q, want 07.01", got)
	}
	if tbl.CloneRow(nil) != nil {
		t.Error("CloneRow(nil) should return nil")
	}
}

func TestTable_CloneHeaderRow(t *testing.T) {
	d := readBody(t, docxtest.SampleInfoExchange())
	tbl := d.Tables()[0]

	row := tbl.CloneHeaderRow()
	if row == nil {
		t.Fatal("CloneHeaderRow() returned nil")
	}
	if row.IsHeader() {
		t.Error("cloned header should not repeat as a header row")
	}
	for i, c := range row.Cells() {
		if c.Shading() != "" {
			t.Errorf("cell %d keeps shading %q", i, c.Shading())
		}
		if c.Text() != "" {
			t.Errorf("cell %d text = %q, want empty", i, c.Text())
		}
	}

	// The header itself keeps its look.
	if !tbl.Row(0).IsHeader() || tbl.Row(0).Cell(0).Shading() != "D9D9D9" {
		t.Error("header row should be unchanged")
	}

	empty := readBody(t, docxtest.Table())
	if empty.Tables()[0].CloneHeaderRow() != nil {
		t.Error("CloneHeaderRow() on an empty table should return nil")
	}
}

func TestTable_CloneHeaderRow_DropsHeaderEmphasis(t *testing.T) {
	// A dark header with white bold text, set both on the paragraph mark and
	// on the run.
	white := `<w:rPr><w:rFonts w:ascii="Arial" w:hAnsi="Arial"/><w:b/><w:color w:val="FFFFFF"/><w:highlight w:val="black"/><w:sz w:val="18"/></w:rPr>`
	head := func(text string) string {
		return docxtest.ShadedCell("1F3864",
			`<w:p><w:pPr><w:shd w:val="clear" w:color="auto" w:fill="1F3864"/>`+white+`</w:pPr><w:r>`+white+`<w:t>`+text+`</w:t></w:r></w:p>`)
	}
	d := readBody(t, docxtest.Table(
		docxtest.HeaderRow(head("From whom"), head("Status")),
		docxtest.Row(docxtest.Lines("Architect"), docxtest.Lines("Open")),
	))
	tbl := d.Tables()[0]
	tbl.DeleteRowsFrom(1)

	row := tbl.CloneHeaderRow()
	row.Cell(0).SetText("Contractor", false)
	row.Cell(1).SetText("Closed", false)

	xml := row.xml()
	for _, s := range []string{"FFFFFF", "1F3864", "w:highlight", "<w:b/>"} {
		if strings.Contains(xml, s) {
			t.Errorf("cloned row keeps %q: %s", s, xml)
		}
	}
	if strings.Count(xml, `w:val="18"`) < 2 {
		t.Errorf("new runs should keep the header font size: %s", xml)
	}
	if got := row.Text(); got != "Contractor Closed" {
		t.Errorf("Text() = %q, want %q", got, "Contractor Closed")
	}
	for i, c := range row.Cells() {
		for _, p := range c.Paragraphs() {
			if p.HasBold() {
				t.Errorf("cell %d paragraph %q is bold", i, p.Text())
			}
		}
	}

	// The header row keeps its colors.
	if got := strings.Count(tbl.Row(0).xml(), "FFFFFF"); got != 4 {
		t.Errorf("header white color count = %d, want 4", got)
	}
}

func TestTable_DeleteRowsFrom(t *testing.T) {
	d := readBody(t, docxtest.SampleArchitecture())
	tbl := d.Tables()[0]

	if n := tbl.DeleteRowsFrom(1); n != 4 {
		t.Errorf("DeleteRowsFrom(1) = %d, want 4", n)
	}
	if got := tbl.RowCount(); got != 1 {
		t.Errorf("RowCount() = %d, want 1", got)
	}
	if n := tbl.DeleteRowsFrom(1); n != 0 {
		t.Errorf("second DeleteRowsFrom(1) = %d, want 0", n)
	}
}

func TestVoidRow(t *testing.T) {
	d := readBody(t, docxtest.SampleInfoExchange())
	row := d.Tables()[0].Row(1)

	voidRow(row.el)
	if got := row.Text(); got != "   " {
		t.Errorf("Text() = %q, want three separators", got)
	}
}

func TestDemote_Idempotent(t *testing.T) {
	d := readBody(t, docxtest.SampleArchitecture())
	row := d.Tables()[0].Row(2)

	if n := row.Demote(); n != 3 {
		t.Errorf("first Demote() = %d, want 3", n)
	}
	once := row.xml()

	if n := row.Demote(); n != 0 {
		t.Errorf("second Demote() = %d, want 0", n)
	}
	if row.xml() != once {
		t.Error("second demotion changed the row")
	}

	for _, p := range row.Cell(2).Paragraphs() {
		if p.HasBold() {
			t.Errorf("paragraph %q still bold", p.Text())
		}
	}
	if got := row.Cell(2).Text(); got != "Meeting 28/01/2026\nWaterproofing detail pending\nMeeting 11/02/2026\nMembrane delivered" {
		t.Errorf("demotion changed text: %q", got)
	}
}

func TestCell_SetLines(t *testing.T) {
	d := readBody(t, docxtest.SampleArchitecture())
	tbl := d.Tables()[0]
	row := tbl.CloneRow(tbl.Row(1))

	subject := row.Cell(2)
	subject.SetLines([]string{"Meeting 25/02/2026", "first", "second"}, true)
	if got := subject.Lines(); len(got) != 3 || got[0] != "Meeting 25/02/2026" || got[2] != "second" {
		t.Errorf("Lines() = %q", got)
	}
	for _, p := range subject.Paragraphs() {
		if !p.HasBold() {
			t.Errorf("paragraph %q should be bold", p.Text())
		}
	}

	number := row.Cell(0)
	number.SetText("07.03", true)
	if got := number.Text(); got != "07.03" {
		t.Errorf("Text() = %q, want 07.03", got)
	}
}

func TestCell_AppendLinesAndPadSlots(t *testing.T) {
	d := readBody(t, docxtest.SampleArchitecture())
	row := d.Tables()[0].Row(2)

	due := row.Cell(4)
	if got := due.SlotCount(); got != 1 {
		t.Fatalf("SlotCount() = %d, want 1", got)
	}
	if n := due.PadSlots(4); n != 3 {
		t.Errorf("PadSlots(4) = %d, want 3", n)
	}
	if n := due.PadSlots(2); n != 0 {
		t.Errorf("PadSlots(2) = %d, want 0", n)
	}

	due.AppendLines([]string{"ASAP"}, true)
	lines := due.Lines()
	if len(lines) != 5 || lines[4] != "ASAP" {
		t.Errorf("Lines() = %q", lines)
	}
	if !due.Paragraphs()[4].HasBold() {
		t.Error("appended line should be bold")
	}
}

func TestCell_TrimSlots(t *testing.T) {
	d := readBody(t, docxtest.SampleArchitecture())
	subject := d.Tables()[0].Row(2).Cell(2)

	if n := subject.TrimSlots(2); n != 2 {
		t.Errorf("TrimSlots(2) = %d, want 2", n)
	}
	if got := subject.Lines(); len(got) != 2 || got[1] != "Waterproofing detail pending" {
		t.Errorf("Lines() = %q", got)
	}
	if n := subject.TrimSlots(0); n != 1 || subject.SlotCount() != 1 {
		t.Errorf("TrimSlots(0) = %d, SlotCount() = %d, want 1, 1", n, subject.SlotCount())
	}
	if !d.Modified() {
		t.Error("document should be modified")
	}
}

func TestCell_FillFrom(t *testing.T) {
	d := readBody(t, docxtest.SampleArchitecture())
	tbl := d.Tables()[0]
	src := tbl.Row(1)
	row := tbl.CloneRow(src)

	subject := row.Cell(2)
	subject.FillFrom(src.Cell(2), []string{"Meeting 25/02/2026", "Order lift"}, true)

	xml := subject.xml()
	if strings.Count(xml, `w:val="18"`) != 2 {
		t.Errorf("new runs should take the source font size: %s", xml)
	}
	if got := subject.Lines(); len(got) != 2 || got[1] != "Order lift" {
		t.Errorf("Lines() = %q", got)
	}

	// Without runs to copy, the cell falls back to plain runs.
	empty := row.Cell(4)
	empty.FillFrom(nil, []string{"ASAP"}, false)
	if got := empty.Text(); got != "ASAP" {
		t.Errorf("Text() = %q, want ASAP", got)
	}
}
