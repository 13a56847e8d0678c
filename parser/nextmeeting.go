package parser

import (
	"strings"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
)

// NextMeetingLocation is where a document announces its next meeting.
type NextMeetingLocation struct {
	// Label is the paragraph holding the "Next meeting" label.
	Label *docx.Paragraph

	// Details is the paragraph holding the date: Label itself when the
	// date follows the label, else the next non-empty paragraph. It is nil
	// when no paragraph follows the label.
	Details *docx.Paragraph

	// Match holds the submatch indexes of the date and time pattern in the
	// text of Details, or nil when it has no date.
	Match []int
}

// LocateNextMeeting finds the first next meeting label among paras and
// the paragraph holding its details.
func LocateNextMeeting(paras []*docx.Paragraph, rules *dialect.Rules) (NextMeetingLocation, bool) {
	var loc NextMeetingLocation
	for _, p := range paras {
		text := p.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if loc.Label == nil {
			if !rules.NextMeetingLabel().MatchString(text) {
				continue
			}
			loc.Label = p
			if m := rules.NextMeetingDateTime().FindStringSubmatchIndex(text); m != nil {
				loc.Details, loc.Match = p, m
				return loc, true
			}
			continue
		}
		loc.Details = p
		loc.Match = rules.NextMeetingDateTime().FindStringSubmatchIndex(text)
		return loc, true
	}
	return loc, loc.Label != nil
}

// ParseNextMeeting returns the announced next meeting, or nil when the
// document announces none.
func ParseNextMeeting(paras []*docx.Paragraph, rules *dialect.Rules) *model.NextMeeting {
	loc, ok := LocateNextMeeting(paras, rules)
	if !ok || loc.Match == nil {
		return nil
	}
	text := loc.Details.Text()
	m := loc.Match

	nm := &model.NextMeeting{
		Date:     text[m[2]:m[3]],
		FullText: strings.TrimSpace(text),
	}
	if len(m) >= 6 && m[4] >= 0 {
		nm.Time = strings.NewReplacer("\u00a0", "", " ", "").Replace(text[m[4]:m[5]])
	}
	return nm
}
