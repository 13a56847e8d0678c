package docx

import (
	"regexp"
)

// Patch replaces the first match of re in the paragraph text with repl.
// It reports false, leaving the paragraph unchanged, when re does not match.
func (p *Paragraph) Patch(re *regexp.Regexp, repl string) bool {
	loc := re.FindStringIndex(p.Text())
	if loc == nil {
		return false
	}
	return p.PatchSpan(loc[0], loc[1], repl)
}

// PatchSubmatch replaces the text of capture group n of the first match of
// re with repl.
func (p *Paragraph) PatchSubmatch(re *regexp.Regexp, n int, repl string) bool {
	loc := re.FindStringSubmatchIndex(p.Text())
	if loc == nil || 2*n+1 >= len(loc) || loc[2*n] < 0 {
		return false
	}
	return p.PatchSpan(loc[2*n], loc[2*n+1], repl)
}

// PatchSpan replaces the bytes [start, end) of the paragraph text with repl.
//
// The span may cross run boundaries. The run holding the start of the span
// receives the replacement, the runs after it up to the one holding the end
// of the span give up their covered text, and every other run is left as it
// was. Text before the span in the first run and after the span in the last
// run is kept, so formatting on either side survives.
func (p *Paragraph) PatchSpan(start, end int, repl string) bool {
	runs := p.Runs()
	texts := make([]string, len(runs))
	offsets := make([]int, len(runs)+1)
	for i, r := range runs {
		texts[i] = r.Text()
		offsets[i+1] = offsets[i] + len(texts[i])
	}
	total := offsets[len(runs)]
	if start < 0 || end < start || end > total || total == 0 {
		return false
	}

	first, last := -1, -1
	for i, t := range texts {
		if t == "" {
			continue
		}
		if first < 0 && start < offsets[i+1] {
			first = i
		}
		if first >= 0 && end <= offsets[i+1] {
			last = i
			break
		}
	}
	if first < 0 {
		// Empty match at the very end: append to the last run with text.
		for i := len(texts) - 1; i >= 0; i-- {
			if texts[i] != "" {
				first, last = i, i
				break
			}
		}
	}

	prefix := texts[first][:start-offsets[first]]
	if first == last {
		suffix := texts[first][end-offsets[first]:]
		runs[first].SetText(prefix + repl + suffix)
		return true
	}

	runs[first].SetText(prefix + repl)
	for i := first + 1; i < last; i++ {
		if texts[i] != "" {
			runs[i].SetText("")
		}
	}
	runs[last].SetText(texts[last][end-offsets[last]:])
	return true
}

// ReplaceText replaces the whole paragraph text with text, keeping the
// formatting of the first run.
func (p *Paragraph) ReplaceText(text string) {
	if p.Text() == "" {
		p.AddRun(text, false)
		return
	}
	p.PatchSpan(0, len(p.Text()), text)
}

// Patch replaces the first match of re in the cell with repl. Paragraphs are
// tried in order; the cell is left unchanged when no paragraph matches.
func (c *Cell) Patch(re *regexp.Regexp, repl string) bool {
	for _, p := range c.Paragraphs() {
		if p.Patch(re, repl) {
			return true
		}
	}
	return false
}

// PatchSubmatch replaces capture group n of the first match of re in the
// cell with repl.
func (c *Cell) PatchSubmatch(re *regexp.Regexp, n int, repl string) bool {
	for _, p := range c.Paragraphs() {
		if p.PatchSubmatch(re, n, repl) {
			return true
		}
	}
	return false
}
