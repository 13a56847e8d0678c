// Package generator produces the next meeting report from the previous one.
//
// Generation copies the previous report to the output path, edits the copy
// in memory and saves it. The steps, in order:
//
//  1. Demote: every bold run in the data rows of the subject and planning
//     tables loses its bold, so the previous meeting's content reads as
//     history.
//  2. Patch the metadata table: meeting number, date and distribution date
//     are rewritten inside their runs.
//  3. Patch the next meeting announcement.
//  4. Append the new lines of existing points, in bold, under a
//     "Meeting <date>" line.
//  5. Add new points, cloning the formatting of an existing point row.
//  6. Rewrite the information exchange and planning tables.
//
// Everything the updates do not touch is written back byte for byte. A
// point, section or pattern that cannot be found is skipped and reported as
// a model.Warning; generation always goes on to save the output.
package generator
