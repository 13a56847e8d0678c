package dialect

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns s in the form labels are compared in: NFC-normalized,
// case-folded, no-break spaces turned into spaces and runs of white space
// collapsed to one, trimmed.
func Fold(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

// EqualsAny reports whether the folded text equals one of the labels.
func EqualsAny(text string, labels []string) bool {
	f := Fold(text)
	for _, l := range labels {
		if f == Fold(l) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the folded text contains one of the labels.
func ContainsAny(text string, labels []string) bool {
	f := Fold(text)
	for _, l := range labels {
		if fl := Fold(l); fl != "" && strings.Contains(f, fl) {
			return true
		}
	}
	return false
}

// CountAny returns how many of the labels the folded text contains.
func CountAny(text string, labels []string) int {
	f := Fold(text)
	n := 0
	for _, l := range labels {
		if fl := Fold(l); fl != "" && strings.Contains(f, fl) {
			n++
		}
	}
	return n
}
