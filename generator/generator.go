package generator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/docx"
	"github.com/tsawler/minutes/model"
	"github.com/tsawler/minutes/tables"
)

// ErrSameFile is returned when the output path is the source path.
var ErrSameFile = errors.New("output would overwrite the source report")

// Result summarizes a generation run.
type Result struct {
	RunID  string
	Output string

	Demoted       int      // runs whose bold was cleared
	UpdatedPoints []string // numbers of the points that received new lines
	MissingPoints []string // numbers of updated points not found
	AddedPoints   []string // numbers of the new points

	InfoExchangeRows int // rows written to the information exchange table
	PlanningRows     int // rows written to the planning table
}

type generator struct {
	doc        *docx.Document
	rules      *dialect.Rules
	log        *zap.Logger
	classified []tables.Classified

	res      Result
	warnings []model.Warning
}

func (g *generator) warn(err error, table int, format string, args ...any) {
	w := model.Warn(err, table, format, args...)
	g.warnings = append(g.warnings, w)
	g.log.Warn("generation warning", zap.Error(w))
}

// Generate writes the report that follows src to dst. The source is copied
// to dst first and never opened for writing.
func Generate(src, dst string, u *model.Updates, cfg Config) (Result, []model.Warning, error) {
	cfg.defaults()
	if u == nil {
		return Result{}, nil, errors.New("generating report: nil updates")
	}
	if err := u.Validate(); err != nil {
		return Result{}, nil, fmt.Errorf("generating report: %w", err)
	}
	if err := copyFile(src, dst); err != nil {
		return Result{}, nil, fmt.Errorf("generating report: %w", err)
	}

	doc, err := docx.Open(dst)
	if err != nil {
		return Result{}, nil, fmt.Errorf("generating report: %w", err)
	}

	res, warnings := Apply(doc, u, cfg)
	res.Output = dst

	if err := doc.Save(dst); err != nil {
		return res, warnings, fmt.Errorf("generating report: %w", err)
	}

	cfg.Logger.Info("report saved",
		zap.String("run_id", res.RunID),
		zap.String("output", dst),
		zap.Int("meeting_number", u.MeetingNumber),
		zap.Int("warnings", len(warnings)),
	)
	return res, warnings, nil
}

// Apply edits doc in memory according to u. The caller saves it.
func Apply(doc *docx.Document, u *model.Updates, cfg Config) (Result, []model.Warning) {
	cfg.defaults()
	runID := uuid.NewString()
	g := &generator{
		doc:        doc,
		rules:      cfg.Rules,
		log:        cfg.Logger.With(zap.String("run_id", runID)),
		classified: tables.Classify(doc.Tables(), cfg.Rules),
		res:        Result{RunID: runID},
	}
	g.apply(u)
	return g.res, g.warnings
}

func (g *generator) apply(u *model.Updates) {
	g.res.Demoted = Demote(g.classified, g.rules)
	g.log.Debug("previous content demoted", zap.Int("runs", g.res.Demoted))

	g.patchMetadata(u)

	if u.NextMeeting != "" {
		if err := PatchNextMeeting(g.doc.Paragraphs(), g.rules, u.NextMeeting, u.NextMeetingTime); err != nil {
			g.warn(err, -1, "next meeting announcement not updated")
		}
	}

	for _, pu := range u.PointUpdates {
		g.updatePoint(pu, u.MeetingNumber)
	}
	for _, np := range u.NewPoints {
		g.addPoint(np, u.MeetingNumber)
	}

	if len(u.InfoExchange) > 0 {
		if c, ok := tables.First(g.classified, tables.RoleInfoExchange); ok {
			g.res.InfoExchangeRows = RewriteInfoExchange(c.Table, u.InfoExchange)
		} else {
			g.warn(model.ErrStructureNotFound, -1, "no information exchange table")
		}
	}
	if len(u.Planning) > 0 {
		if c, ok := tables.First(g.classified, tables.RolePlanning); ok {
			g.res.PlanningRows = RewritePlanning(c.Table, u.Planning)
		} else {
			g.warn(model.ErrStructureNotFound, -1, "no planning table")
		}
	}
}

func (g *generator) patchMetadata(u *model.Updates) {
	c, ok := tables.First(g.classified, tables.RoleMetadata)
	if !ok {
		g.warn(model.ErrStructureNotFound, -1, "no metadata table")
		return
	}

	p := PatchMetadata(c.Table, g.rules, u)
	if !p.Number && !p.NumberCell {
		g.warn(model.ErrPatternMismatch, c.Index, "meeting number not found")
	}
	if !p.Date {
		g.warn(model.ErrPatternMismatch, c.Index, "meeting date not found")
	}
	if u.DistributionDate != "" && !p.Distribution {
		g.warn(model.ErrPatternMismatch, c.Index, "distribution date not found")
	}
}

func (g *generator) section(name string) (SectionTable, bool) {
	s, match := FindSectionTable(g.classified, name, g.rules)
	if match == MatchNone {
		g.warn(model.ErrSectionNotFound, -1, "section %q", name)
		return SectionTable{}, false
	}
	g.log.Debug("section located",
		zap.String("section", name),
		zap.String("table_section", s.Layout.Section),
		zap.Int("table", s.Index),
		zap.Stringer("match", match),
	)
	return s, true
}

func (g *generator) updatePoint(pu model.PointUpdate, meetingNumber int) {
	s, ok := g.section(pu.Section)
	if !ok {
		g.res.MissingPoints = append(g.res.MissingPoints, pu.Number)
		return
	}
	label := model.MeetingLabel(g.rules.MeetingLabel, pu.MeetingDate, meetingNumber)
	if !s.UpdatePoint(pu, label) {
		g.warn(model.ErrPointNotFound, s.Index, "point %q in section %q", pu.Number, s.Layout.Section)
		g.res.MissingPoints = append(g.res.MissingPoints, pu.Number)
		return
	}
	g.res.UpdatedPoints = append(g.res.UpdatedPoints, pu.Number)
	g.log.Debug("point updated", zap.String("point", pu.Number), zap.Int("lines", len(pu.SubjectLines)))
}

func (g *generator) addPoint(np model.NewPoint, meetingNumber int) {
	s, ok := g.section(np.Section)
	if !ok {
		return
	}
	label := model.MeetingLabel(g.rules.MeetingLabel, np.MeetingDate, meetingNumber)
	if s.AddPoint(np, label) == nil {
		g.warn(model.ErrStructureNotFound, s.Index, "no row to clone for point %q", np.Number)
		return
	}
	g.res.AddedPoints = append(g.res.AddedPoints, np.Number)
	g.log.Debug("point added", zap.String("point", np.Number), zap.String("section", s.Layout.Section))
}

// copyFile copies src to dst, keeping the file mode of src.
func copyFile(src, dst string) error {
	if same, err := sameFile(src, dst); err != nil {
		return err
	} else if same {
		return ErrSameFile
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying source: %w", err)
	}
	return out.Close()
}

func sameFile(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if absA == absB {
		return true, nil
	}
	ia, errA := os.Stat(absA)
	ib, errB := os.Stat(absB)
	if errA != nil || errB != nil {
		return false, nil
	}
	return os.SameFile(ia, ib), nil
}
