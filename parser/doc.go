// Package parser extracts a model.Report from a meeting-minutes document.
//
// Parse classifies the body tables, then reads each one according to its
// role: the metadata table (meeting number, date, location, distribution
// date and the attendance matrix), the information exchange and planning
// tables, and one section per subject table. The next meeting announcement
// is read from the body paragraphs.
//
// Extraction never fails on a document that opened: a table, row or
// pattern that cannot be found leaves its field empty and is reported as a
// model.Warning.
//
//	doc, err := docx.Open("report.docx")
//	if err != nil {
//		return err
//	}
//	report, warnings := parser.Parse(doc, parser.Config{})
package parser
