package parser

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
	"github.com/tsawler/minutes/tables"
)

type parser struct {
	cfg      Config
	log      *zap.Logger
	warnings []model.Warning
}

func (p *parser) warn(err error, table int, format string, args ...any) {
	w := model.Warn(err, table, format, args...)
	p.warnings = append(p.warnings, w)
	p.log.Debug("extraction warning", zap.Error(w))
}

// ParseFile opens a report and extracts its content.
func ParseFile(filename string, cfg Config) (*model.Report, []model.Warning, error) {
	doc, err := docx.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing report: %w", err)
	}
	report, warnings := Parse(doc, cfg)
	return report, warnings, nil
}

// Parse extracts the content of a report. Missing tables, rows and
// patterns are reported as warnings; the affected fields stay empty.
func Parse(doc *docx.Document, cfg Config) (*model.Report, []model.Warning) {
	cfg.defaults()
	p := &parser{cfg: cfg, log: cfg.Logger}
	rules := cfg.Rules

	report := &model.Report{
		Language:     DetectLanguage(doc, rules),
		Source:       source(doc),
		Attendance:   []model.Attendee{},
		InfoExchange: []model.InfoExchangeItem{},
		Planning:     []model.PlanningItem{},
		Sections:     []model.Section{},
		NextMeeting:  ParseNextMeeting(doc.Paragraphs(), rules),
	}

	classified := tables.Classify(doc.Tables(), rules)
	for _, c := range classified {
		p.log.Debug("table classified",
			zap.Int("table", c.Index),
			zap.Stringer("role", c.Role),
			zap.Int("rows", c.Table.RowCount()),
		)

		switch c.Role {
		case tables.RoleMetadata:
			report.Metadata = p.metadata(c)
			report.Attendance = append(report.Attendance,
				ParseAttendance(c.Table, RowAttendanceStart, RowAttendanceEnd, rules.Attendance.Mark)...)
		case tables.RoleAttendance:
			report.Attendance = append(report.Attendance,
				ParseAttendance(c.Table, 1, c.Table.RowCount()-1, rules.Attendance.Mark)...)
		case tables.RoleInfoExchange:
			report.InfoExchange = append(report.InfoExchange, ParseInfoExchange(c.Table)...)
		case tables.RolePlanning:
			report.Planning = append(report.Planning, ParsePlanning(c.Table)...)
		case tables.RoleSubject:
			report.Sections = append(report.Sections, p.section(c))
		}
	}

	if _, ok := tables.First(classified, tables.RoleMetadata); !ok {
		p.warn(model.ErrStructureNotFound, -1, "no metadata table")
	}
	if len(report.Sections) == 0 {
		p.warn(model.ErrStructureNotFound, -1, "no subject table")
	}

	p.log.Debug("report extracted",
		zap.String("language", report.Language),
		zap.Int("meeting_number", report.Metadata.MeetingNumber),
		zap.Int("sections", len(report.Sections)),
		zap.Int("warnings", len(p.warnings)),
	)
	return report, p.warnings
}

func source(doc *docx.Document) model.Source {
	props := doc.Properties()
	s := model.Source{
		Title:          props.Title,
		Creator:        props.Creator,
		LastModifiedBy: props.LastModifiedBy,
		Modified:       props.Modified,
	}
	if doc.Name() != "" {
		s.File = filepath.Base(doc.Name())
	}
	return s
}
