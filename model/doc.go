// Package model defines the data extracted from a meeting-minutes report and
// the updates record used to produce the next report.
//
// # Report
//
// A [Report] is produced fresh by each extraction. It holds the meeting
// [Metadata], the [Attendee] matrix, the optional [NextMeeting], the
// information exchange and planning tables, and one [Section] per subject
// table:
//
//	report.Metadata.MeetingNumber // 12
//	report.Sections[0].Points[1]  // point "07.02"
//
// Within a [Point], subject paragraphs carry a HasBold flag. Bold marks
// content added at the most recent meeting; older content is plain.
//
// # Updates
//
// An [Updates] record describes the next meeting: new number and date,
// lines to append to existing points, new points, and replacement
// information exchange and planning items. [ReadUpdates] decodes one from
// JSON or YAML and validates it.
//
// # Warnings
//
// Extraction and generation never fail on a missing table, row, pattern or
// point. They report a [Warning] instead, which wraps one of
// [ErrStructureNotFound], [ErrPatternMismatch], [ErrPointNotFound] or
// [ErrSectionNotFound].
package model
