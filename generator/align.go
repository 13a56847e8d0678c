package generator

import "github.com/tsawler/minutes/docx"

// AlignSlots pads cell with empty paragraphs so that the next paragraph
// appended to it sits beside the last of subjectCount subject paragraphs.
// It returns the number of paragraphs added.
func AlignSlots(cell *docx.Cell, subjectCount int) int {
	return cell.PadSlots(subjectCount - 1)
}

// alignedLines returns n lines, empty except the last which holds value.
// An empty value gives a single empty line.
func alignedLines(n int, value string) []string {
	if value == "" || n < 1 {
		return []string{value}
	}
	lines := make([]string, n)
	lines[n-1] = value
	return lines
}
