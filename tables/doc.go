// Package tables recognizes the tables of a meeting-minutes report.
//
// The extractor and the generator share the detectors of this package, so
// the tables they read are the tables they edit.
//
// # Classification
//
// [Classify] assigns each body table a [Role] from its header text and
// shape, in priority order:
//
//   - the first table holds the meeting metadata
//   - a "from whom" header marks the information exchange table
//   - a point number marker, a subject label or a "D<n> - <name>" divider
//     marks a subject table
//   - a "planning" header on a one-column table marks the planning
//   - "present" and "excused" headers mark an attendance table
//
// Tables without cues fall back to their shape: one column and several rows
// is a planning table, four columns an information exchange table. Anything
// else is [RoleUnknown].
//
// # Section Layouts
//
// Subject tables come in two layouts. In the first the section name is
// embedded in a header cell, such as "Subject – Architecture":
//
//	| N° | Title | Subject – Architecture | For whom | Due |
//	| 07.01 | ...
//
// In the second the first row is a merged title above the header row:
//
//	| D2 - Technical installations                    |
//	| N° | Titre | Sujet | Pour qui | Pour quand |
//	| 08.01 | ...
//
// [DetectLayout] tells them apart and returns the section name and the row
// where points start.
//
// # Column Maps
//
// [DetectColumns] maps header cells to point fields by folded label, so
// French and English headers in any order resolve to the same [ColumnMap].
// Rows whose physical cell count differs from the header's (merged cells)
// use positional defaults through [ColumnMap.Resolve].
package tables
