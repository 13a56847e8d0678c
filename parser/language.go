package parser

import (
	"sort"
	"strings"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
)

// DetectLanguage guesses the language of a report from the keywords of its
// body paragraphs and table cells.
func DetectLanguage(doc *docx.Document, rules *dialect.Rules) string {
	var sb strings.Builder
	for _, p := range doc.Paragraphs() {
		sb.WriteString(p.Text())
		sb.WriteByte(' ')
	}
	for _, t := range doc.Tables() {
		sb.WriteString(t.ToText())
		sb.WriteByte(' ')
	}
	return ScoreLanguage(sb.String(), rules)
}

// ScoreLanguage returns the language whose keywords text contains the
// most. Ties go to the default language, then to the first tag in
// alphabetical order.
func ScoreLanguage(text string, rules *dialect.Rules) string {
	best := rules.DefaultLanguage
	bestScore := dialect.CountAny(text, rules.Languages[best])

	tags := make([]string, 0, len(rules.Languages))
	for tag := range rules.Languages {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		if tag == rules.DefaultLanguage {
			continue
		}
		if score := dialect.CountAny(text, rules.Languages[tag]); score > bestScore {
			best, bestScore = tag, score
		}
	}
	return best
}
