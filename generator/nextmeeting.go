package generator

import (
	"sort"
	"strings"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
	"github.com/tsawler/minutes/parser"
)

// PatchNextMeeting rewrites the next meeting announcement found the way
// the parser finds it. A bare date replaces only the announced date, and
// the announced time when clock is given, keeping the rest of the wording.
// Any other value replaces the announcement details; a label sharing their
// paragraph is kept.
//
// It returns model.ErrStructureNotFound when there is no announcement and
// model.ErrPatternMismatch when a bare date finds no date to replace.
func PatchNextMeeting(paras []*docx.Paragraph, rules *dialect.Rules, value, clock string) error {
	loc, ok := parser.LocateNextMeeting(paras, rules)
	if !ok || loc.Details == nil {
		return model.ErrStructureNotFound
	}
	value = strings.TrimSpace(value)
	clock = strings.TrimSpace(clock)
	p := loc.Details
	text := p.Text()

	if !rules.IsBareDate(value) {
		if p != loc.Label {
			p.ReplaceText(value)
			return nil
		}
		start := afterLabel(text, rules)
		if start >= len(text) {
			p.AddRun(" "+value, false)
			return nil
		}
		p.PatchSpan(start, len(text), value)
		return nil
	}

	type span struct {
		start, end int
		repl       string
	}
	var spans []span

	dateStart, dateEnd := -1, -1
	if m := loc.Match; m != nil {
		dateStart, dateEnd = m[2], m[3]
		if clock != "" && len(m) >= 6 && m[4] >= 0 {
			spans = append(spans, span{m[4], m[5], clock})
		}
	} else if d := rules.Date().FindStringIndex(text); d != nil {
		dateStart, dateEnd = d[0], d[1]
		if clock != "" {
			if t := rules.NextMeetingTime().FindStringIndex(text[dateEnd:]); t != nil {
				spans = append(spans, span{dateEnd + t[0], dateEnd + t[1], clock})
			}
		}
	}
	if dateStart < 0 {
		return model.ErrPatternMismatch
	}
	spans = append(spans, span{dateStart, dateEnd, value})

	// Later spans first, so earlier offsets stay valid.
	sort.Slice(spans, func(i, j int) bool { return spans[i].start > spans[j].start })
	for _, s := range spans {
		p.PatchSpan(s.start, s.end, s.repl)
	}
	return nil
}

// afterLabel returns the offset of the first byte after the next meeting
// label and the separators that follow it.
func afterLabel(text string, rules *dialect.Rules) int {
	loc := rules.NextMeetingLabel().FindStringIndex(text)
	if loc == nil {
		return 0
	}
	i := loc[1]
	for i < len(text) {
		switch {
		case text[i] == ' ' || text[i] == ':' || text[i] == '\t':
			i++
		case strings.HasPrefix(text[i:], "\u00a0"):
			i += len("\u00a0")
		default:
			return i
		}
	}
	return i
}
