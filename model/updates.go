package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DateLayout is the textual form of every date in a report.
const DateLayout = "02/01/2006"

// Updates describes how the next report differs from the previous one.
type Updates struct {
	MeetingNumber    int    `json:"meeting_number" yaml:"meeting_number" validate:"gt=0"`
	Date             string `json:"date" yaml:"date" validate:"required,ddmmyyyy"`
	DistributionDate string `json:"distribution_date,omitempty" yaml:"distribution_date,omitempty" validate:"omitempty,ddmmyyyy"`

	// NextMeeting is either a bare date, which replaces only the date of the
	// existing announcement, or a complete replacement text.
	NextMeeting     string `json:"next_meeting,omitempty" yaml:"next_meeting,omitempty"`
	NextMeetingTime string `json:"next_meeting_time,omitempty" yaml:"next_meeting_time,omitempty"`

	PointUpdates []PointUpdate `json:"point_updates,omitempty" yaml:"point_updates,omitempty" validate:"dive"`
	NewPoints    []NewPoint    `json:"new_points,omitempty" yaml:"new_points,omitempty" validate:"dive"`

	// InfoExchange and Planning replace their tables when non-empty.
	InfoExchange []InfoExchangeItem `json:"info_exchange,omitempty" yaml:"info_exchange,omitempty"`
	Planning     []PlanningItem     `json:"planning,omitempty" yaml:"planning,omitempty"`
}

// PointUpdate appends content to an existing point.
type PointUpdate struct {
	Section      string   `json:"section" yaml:"section"`
	Number       string   `json:"number" yaml:"number" validate:"required"`
	SubjectLines []string `json:"subject_lines" yaml:"subject_lines"`
	ForWhom      string   `json:"for_whom,omitempty" yaml:"for_whom,omitempty"`
	Due          string   `json:"due,omitempty" yaml:"due,omitempty"`
	MeetingDate  string   `json:"meeting_date,omitempty" yaml:"meeting_date,omitempty" validate:"omitempty,ddmmyyyy"`
}

// NewPoint adds a point to a section.
type NewPoint struct {
	Section      string   `json:"section" yaml:"section"`
	Number       string   `json:"number" yaml:"number" validate:"required"`
	Title        string   `json:"title" yaml:"title"`
	SubjectLines []string `json:"subject_lines" yaml:"subject_lines"`
	ForWhom      string   `json:"for_whom,omitempty" yaml:"for_whom,omitempty"`
	Due          string   `json:"due,omitempty" yaml:"due,omitempty"`
	MeetingDate  string   `json:"meeting_date,omitempty" yaml:"meeting_date,omitempty" validate:"omitempty,ddmmyyyy"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("ddmmyyyy", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(DateLayout, strings.TrimSpace(fl.Field().String()))
			return err == nil
		})
	})
	return validate
}

// ReadUpdates decodes an updates record from JSON or YAML, drops blank
// entries and validates it.
func ReadUpdates(r io.Reader) (*Updates, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading updates: %w", err)
	}

	u := &Updates{}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, u); err != nil {
			return nil, fmt.Errorf("decoding updates: %w", err)
		}
	} else if err := yaml.Unmarshal(data, u); err != nil {
		return nil, fmt.Errorf("decoding updates: %w", err)
	}
	u.Clean()

	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks the record: a positive meeting number, DD/MM/YYYY dates
// and a number on every point.
func (u *Updates) Validate() error {
	if err := getValidator().Struct(u); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid updates: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid updates: %w", err)
	}
	return nil
}

// Clean trims values and drops blank subject lines, blank information
// exchange rows and blank planning items.
func (u *Updates) Clean() {
	for i := range u.PointUpdates {
		pu := &u.PointUpdates[i]
		pu.Number = strings.TrimSpace(pu.Number)
		pu.SubjectLines = nonBlank(pu.SubjectLines)
	}
	for i := range u.NewPoints {
		np := &u.NewPoints[i]
		np.Number = strings.TrimSpace(np.Number)
		np.SubjectLines = nonBlank(np.SubjectLines)
	}

	var info []InfoExchangeItem
	for _, it := range u.InfoExchange {
		if strings.TrimSpace(it.FromWhom+it.Status+it.Content+it.DueDate) != "" {
			info = append(info, it)
		}
	}
	u.InfoExchange = info

	var planning []PlanningItem
	for _, it := range u.Planning {
		if strings.TrimSpace(it.Content) != "" {
			planning = append(planning, it)
		}
	}
	u.Planning = planning
}

func nonBlank(lines []string) []string {
	var out []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// NumberNewPoints orders points by the position of their section in
// sectionOrder, keeping the given order within a section, and numbers them
// "<meeting>.<seq>" with two-digit parts: 13.01, 13.02, and so on. Points of
// unknown sections come last. The input slice is not modified.
func NumberNewPoints(meetingNumber int, sectionOrder []string, points []NewPoint) []NewPoint {
	pos := make(map[string]int, len(sectionOrder))
	for i, name := range sectionOrder {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := pos[key]; !ok {
			pos[key] = i
		}
	}
	rank := func(section string) int {
		if i, ok := pos[strings.ToLower(strings.TrimSpace(section))]; ok {
			return i
		}
		return len(sectionOrder)
	}

	out := make([]NewPoint, len(points))
	copy(out, points)
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].Section) < rank(out[j].Section)
	})
	for i := range out {
		out[i].Number = fmt.Sprintf("%02d.%02d", meetingNumber, i+1)
	}
	return out
}

// MeetingLabel returns the line that introduces new content in a subject
// cell: "<label> <date>", or "<label> N<number>" without a date.
func MeetingLabel(label, meetingDate string, meetingNumber int) string {
	if d := strings.TrimSpace(meetingDate); d != "" {
		return label + " " + d
	}
	return fmt.Sprintf("%s N%d", label, meetingNumber)
}
