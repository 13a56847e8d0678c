package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestReadUpdates_JSON(t *testing.T) {
	in := `{
  "meeting_number": 13,
  "date": "25/02/2026",
  "distribution_date": "27/02/2026",
  "next_meeting": "11/03/2026",
  "point_updates": [
    {"section": "Architecture", "number": "07.02", "subject_lines": ["Membrane laid", "  "], "due": "ASAP", "meeting_date": "25/02/2026"}
  ],
  "new_points": [
    {"section": "Architecture", "number": "13.01", "title": "Lift", "subject_lines": ["Order lift"], "for_whom": "MO", "due": "15/03/2026"}
  ],
  "info_exchange": [
    {"from_whom": "MO", "status": "Open", "content": "Plans", "due_date": "01/03/2026"},
    {"from_whom": "", "status": "", "content": "", "due_date": ""}
  ],
  "planning": [{"content": "Phase 2", "is_new": true}]
}`

	u, err := ReadUpdates(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadUpdates() error = %v", err)
	}
	if u.MeetingNumber != 13 || u.Date != "25/02/2026" || u.NextMeeting != "11/03/2026" {
		t.Errorf("header fields = %d %q %q", u.MeetingNumber, u.Date, u.NextMeeting)
	}
	if got := u.PointUpdates[0].SubjectLines; len(got) != 1 || got[0] != "Membrane laid" {
		t.Errorf("SubjectLines = %q, want blank lines dropped", got)
	}
	if len(u.InfoExchange) != 1 {
		t.Errorf("len(InfoExchange) = %d, want 1", len(u.InfoExchange))
	}
	if !u.Planning[0].IsNew {
		t.Error("Planning[0].IsNew should be true")
	}
}

func TestReadUpdates_YAML(t *testing.T) {
	in := `
meeting_number: 13
date: 25/02/2026
point_updates:
  - section: Architecture
    number: "07.02"
    subject_lines:
      - Membrane laid
`
	u, err := ReadUpdates(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadUpdates() error = %v", err)
	}
	if u.PointUpdates[0].Number != "07.02" {
		t.Errorf("Number = %q, want 07.02", u.PointUpdates[0].Number)
	}
}

func TestReadUpdates_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"syntax", `{"meeting_number": `},
		{"no meeting number", `{"date": "25/02/2026"}`},
		{"bad date", `{"meeting_number": 13, "date": "2026-02-25"}`},
		{"bad distribution date", `{"meeting_number": 13, "date": "25/02/2026", "distribution_date": "soon"}`},
		{"point without number", `{"meeting_number": 13, "date": "25/02/2026", "point_updates": [{"number": " "}]}`},
		{"bad meeting date", `{"meeting_number": 13, "date": "25/02/2026", "new_points": [{"number": "13.01", "meeting_date": "31/02/2026"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadUpdates(strings.NewReader(tt.in)); err == nil {
				t.Error("ReadUpdates() should return error")
			}
		})
	}
}

func TestNumberNewPoints(t *testing.T) {
	order := []string{"Architecture", "Technical installations", "Safety"}
	points := []NewPoint{
		{Section: "Safety", Title: "Fire doors"},
		{Section: "Unknown", Title: "Misc"},
		{Section: "architecture", Title: "Lift"},
		{Section: "Technical installations", Title: "Solar panels"},
	}

	got := NumberNewPoints(13, order, points)

	want := []struct{ number, title string }{
		{"13.01", "Lift"},
		{"13.02", "Solar panels"},
		{"13.03", "Fire doors"},
		{"13.04", "Misc"},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Number != w.number || got[i].Title != w.title {
			t.Errorf("point %d = %s %s, want %s %s", i, got[i].Number, got[i].Title, w.number, w.title)
		}
	}
	if points[0].Number != "" {
		t.Error("input slice should not be modified")
	}
}

func TestMeetingLabel(t *testing.T) {
	if got := MeetingLabel("Meeting", "25/02/2026", 13); got != "Meeting 25/02/2026" {
		t.Errorf("MeetingLabel() = %q", got)
	}
	if got := MeetingLabel("Meeting", "", 13); got != "Meeting N13" {
		t.Errorf("MeetingLabel() = %q", got)
	}
}

func TestWarning(t *testing.T) {
	w := Warn(ErrPointNotFound, 3, "point %q", "07.2")

	if !errors.Is(w, ErrPointNotFound) {
		t.Error("errors.Is should match the sentinel")
	}
	if errors.Is(w, ErrSectionNotFound) {
		t.Error("errors.Is should not match another sentinel")
	}
	if got := w.Error(); got != `point not found (table 3): point "07.2"` {
		t.Errorf("Error() = %q", got)
	}

	noTable := Warning{Err: ErrStructureNotFound, Table: -1}
	if got := noTable.Error(); got != "structure not found" {
		t.Errorf("Error() = %q", got)
	}

	ws := []Warning{w, noTable}
	if !HasWarning(ws, ErrStructureNotFound) || HasWarning(ws, ErrPatternMismatch) {
		t.Error("HasWarning() mismatch")
	}
	if got := FormatWarnings(ws); strings.Count(got, "\n") != 1 {
		t.Errorf("FormatWarnings() = %q", got)
	}

	wrapped := fmt.Errorf("step: %w", w)
	if !errors.Is(wrapped, ErrPointNotFound) {
		t.Error("wrapped warning should still match")
	}
}

func TestReport_Lookups(t *testing.T) {
	r := &Report{
		Sections: []Section{
			{Name: "Architecture", Points: []Point{{Number: "07.01"}, {Number: "07.02", Subject: []SubjectParagraph{
				{Text: "Meeting 28/01/2026"}, {Text: "Meeting 11/02/2026", HasBold: true}, {Text: "Membrane delivered", HasBold: true},
			}}}},
			{Name: "Technical installations", Points: []Point{{Number: "08.01"}}},
		},
	}

	if got := r.SectionNames(); len(got) != 2 || got[1] != "Technical installations" {
		t.Errorf("SectionNames() = %q", got)
	}
	if r.Section("architecture") == nil {
		t.Error("Section() should ignore case")
	}
	if r.Section("Safety") != nil {
		t.Error("Section() should return nil for unknown names")
	}

	s, p := r.FindPoint("07.02")
	if s == nil || s.Name != "Architecture" || p == nil {
		t.Fatal("FindPoint(07.02) failed")
	}
	if got := p.Latest(); len(got) != 2 || got[1] != "Membrane delivered" {
		t.Errorf("Latest() = %q", got)
	}
	for _, n := range []string{"07.2", "7.02"} {
		if _, p := r.FindPoint(n); p != nil {
			t.Errorf("FindPoint(%q) should not match", n)
		}
	}
}

func TestReport_JSONKeys(t *testing.T) {
	r := Report{
		Language: LanguageEN,
		Metadata: Metadata{MeetingNumber: 12, Date: "11/02/2026"},
		Sections: []Section{{Name: "General", Points: []Point{{Number: "01.01", Subject: []SubjectParagraph{{Text: "x", HasBold: true}}}}}},
		Planning: []PlanningItem{{Content: "Phase 1", IsNew: true}},
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"meeting_number":12`, `"section_name":"General"`, `"subject_paragraphs"`, `"has_bold":true`, `"is_new":true`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON missing %s: %s", key, data)
		}
	}
	if strings.Contains(string(data), "next_meeting") {
		t.Error("absent next meeting should be omitted")
	}
}
