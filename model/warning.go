package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes of a Warning.
var (
	// ErrStructureNotFound: a table, row or column could not be located.
	ErrStructureNotFound = errors.New("structure not found")
	// ErrPatternMismatch: an expected date, number or label did not match.
	ErrPatternMismatch = errors.New("pattern mismatch")
	// ErrPointNotFound: an update names a point number absent from its table.
	ErrPointNotFound = errors.New("point not found")
	// ErrSectionNotFound: no subject table matches a section name.
	ErrSectionNotFound = errors.New("section not found")
)

// Warning is a non-fatal problem met during extraction or generation. The
// affected field is left empty or the affected step skipped.
type Warning struct {
	Err    error
	Table  int // body table index, -1 when not table specific
	Detail string
}

// Warn returns a warning about table with a formatted detail.
func Warn(err error, table int, format string, args ...any) Warning {
	return Warning{Err: err, Table: table, Detail: fmt.Sprintf(format, args...)}
}

// Error implements error.
func (w Warning) Error() string {
	var sb strings.Builder
	if w.Err != nil {
		sb.WriteString(w.Err.Error())
	} else {
		sb.WriteString("warning")
	}
	if w.Table >= 0 {
		fmt.Fprintf(&sb, " (table %d)", w.Table)
	}
	if w.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(w.Detail)
	}
	return sb.String()
}

// Unwrap returns the sentinel cause.
func (w Warning) Unwrap() error {
	return w.Err
}

// FormatWarnings returns the warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.Error()
	}
	return strings.Join(lines, "\n")
}

// HasWarning reports whether any warning wraps target.
func HasWarning(warnings []Warning, target error) bool {
	for _, w := range warnings {
		if errors.Is(w, target) {
			return true
		}
	}
	return false
}
