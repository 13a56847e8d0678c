package tables

import (
	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
)

// Role is the part a table plays in a report.
type Role int

const (
	RoleUnknown Role = iota
	RoleMetadata
	RoleAttendance
	RoleInfoExchange
	RolePlanning
	RoleSubject
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleMetadata:
		return "metadata"
	case RoleAttendance:
		return "attendance"
	case RoleInfoExchange:
		return "info_exchange"
	case RolePlanning:
		return "planning"
	case RoleSubject:
		return "subject"
	default:
		return "unknown"
	}
}

// Classified is a body table with its role.
type Classified struct {
	Index int // position among the body tables
	Role  Role
	Table *docx.Table
}

// Classify assigns a role to every non-empty table, keeping document order.
// Tables without rows are left out.
func Classify(tbls []*docx.Table, rules *dialect.Rules) []Classified {
	out := make([]Classified, 0, len(tbls))
	for i, t := range tbls {
		if t.RowCount() == 0 {
			continue
		}
		out = append(out, Classified{Index: i, Role: ClassifyTable(i, t, rules), Table: t})
	}
	return out
}

// ClassifyTable returns the role of the table at position index.
func ClassifyTable(index int, t *docx.Table, rules *dialect.Rules) Role {
	if index == 0 {
		return RoleMetadata
	}

	header := t.HeaderText()
	cols := t.GridColumns()
	labels := rules.Labels

	if dialect.ContainsAny(header, labels.FromWhom) {
		return RoleInfoExchange
	}
	if isSubjectHeader(header, rules) {
		return RoleSubject
	}
	// A merged title row hides the header cues one row down.
	if cols > 1 && IsTitleRow(t.Row(0)) {
		if r := t.Row(1); r != nil && isSubjectHeader(r.Text(), rules) {
			return RoleSubject
		}
	}
	if cols == 1 && dialect.ContainsAny(header, labels.Planning) {
		return RolePlanning
	}
	if dialect.ContainsAny(header, labels.Present) && dialect.ContainsAny(header, labels.Excused) {
		return RoleAttendance
	}

	switch {
	case cols == 1 && t.RowCount() > 1:
		return RolePlanning
	case cols == 4:
		return RoleInfoExchange
	}
	return RoleUnknown
}

func isSubjectHeader(text string, rules *dialect.Rules) bool {
	if dialect.ContainsAny(text, rules.Labels.PointNumber) || dialect.ContainsAny(text, rules.Labels.Subject) {
		return true
	}
	return rules.SectionDivider().MatchString(text)
}

// Filter returns the tables with the given role.
func Filter(classified []Classified, role Role) []Classified {
	var out []Classified
	for _, c := range classified {
		if c.Role == role {
			out = append(out, c)
		}
	}
	return out
}

// First returns the first table with the given role.
func First(classified []Classified, role Role) (Classified, bool) {
	for _, c := range classified {
		if c.Role == role {
			return c, true
		}
	}
	return Classified{}, false
}
