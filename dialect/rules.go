// Package dialect holds the labels and patterns that describe the report
// layouts ("dialects") the parser and generator understand.
//
// Every language-specific literal lives in a Rules value. The default rules
// are embedded from rules.yaml; supporting another language or house style
// is a matter of loading a YAML file that overrides some of them.
package dialect

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// Rules describes the dialects of meeting-minutes reports.
type Rules struct {
	// DefaultLanguage is reported when language detection is inconclusive.
	DefaultLanguage string `yaml:"default_language"`

	// Languages maps a language tag to keywords scored over the document.
	Languages map[string][]string `yaml:"languages"`

	Labels      Labels      `yaml:"labels"`
	Columns     Columns     `yaml:"columns"`
	Sections    Sections    `yaml:"sections"`
	Metadata    Metadata    `yaml:"metadata"`
	Attendance  Attendance  `yaml:"attendance"`
	NextMeeting NextMeeting `yaml:"next_meeting"`

	// MeetingLabel starts the line announcing new content in a subject cell.
	MeetingLabel string `yaml:"meeting_label"`

	re compiled
}

// Labels are the header cues used to classify tables.
type Labels struct {
	FromWhom       []string `yaml:"from_whom"`
	Planning       []string `yaml:"planning"`
	PointNumber    []string `yaml:"point_number"`
	Subject        []string `yaml:"subject"`
	SectionDivider string   `yaml:"section_divider"`
	Present        []string `yaml:"present"`
	Excused        []string `yaml:"excused"`
}

// Columns holds the header matchers of the columns of a subject table.
type Columns struct {
	Number  Matcher `yaml:"number"`
	Title   Matcher `yaml:"title"`
	Subject Matcher `yaml:"subject"`
	ForWhom Matcher `yaml:"for_whom"`
	Due     Matcher `yaml:"due"`
}

// Matcher matches a header cell whose folded text equals one of Equals or
// contains one of Contains.
type Matcher struct {
	Equals   []string `yaml:"equals"`
	Contains []string `yaml:"contains"`
}

// Match reports whether text matches m.
func (m Matcher) Match(text string) bool {
	return EqualsAny(text, m.Equals) || ContainsAny(text, m.Contains)
}

// Sections holds the patterns extracting a section name. Each pattern must
// have one capture group holding the name.
type Sections struct {
	Fallback string   `yaml:"fallback"`
	Title    string   `yaml:"title"`
	Header   []string `yaml:"header"`
}

// Metadata holds the patterns of the metadata table.
type Metadata struct {
	Number       string `yaml:"number"`
	Date         string `yaml:"date"`
	Location     string `yaml:"location"`
	Distribution string `yaml:"distribution"`
}

// Attendance describes the attendance matrix.
type Attendance struct {
	// Mark is the text that flags a status in a mark cell line.
	Mark string `yaml:"mark"`
}

// NextMeeting holds the patterns of the next meeting announcement.
type NextMeeting struct {
	Label    string `yaml:"label"`
	DateTime string `yaml:"date_time"`
	Time     string `yaml:"time"`
}

type compiled struct {
	sectionDivider *regexp.Regexp
	sectionTitle   *regexp.Regexp
	sectionHeader  []*regexp.Regexp
	number         *regexp.Regexp
	date           *regexp.Regexp
	bareDate       *regexp.Regexp
	location       *regexp.Regexp
	distribution   *regexp.Regexp
	nextLabel      *regexp.Regexp
	nextDateTime   *regexp.Regexp
	nextTime       *regexp.Regexp
}

var (
	defaultOnce sync.Once
	defaultSet  *Rules
)

// Default returns the embedded rules. The returned value is shared and must
// not be modified.
func Default() *Rules {
	defaultOnce.Do(func() {
		r, err := Parse(defaultRules)
		if err != nil {
			panic(fmt.Sprintf("dialect: embedded rules: %v", err))
		}
		defaultSet = r
	})
	return defaultSet
}

// Parse reads rules from YAML. Keys absent from data keep their default
// values.
func Parse(data []byte) (*Rules, error) {
	r := &Rules{}
	if err := yaml.Unmarshal(defaultRules, r); err != nil {
		return nil, fmt.Errorf("parsing default rules: %w", err)
	}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	if err := r.compile(); err != nil {
		return nil, err
	}
	return r, nil
}

// Load reads rules from a YAML file, on top of the defaults.
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func (r *Rules) compile() error {
	var err error
	must := func(name, expr string) *regexp.Regexp {
		if err != nil {
			return nil
		}
		re, cerr := regexp.Compile(expr)
		if cerr != nil {
			err = fmt.Errorf("compiling %s pattern: %w", name, cerr)
		}
		return re
	}

	c := compiled{
		sectionDivider: must("labels.section_divider", r.Labels.SectionDivider),
		sectionTitle:   must("sections.title", r.Sections.Title),
		number:         must("metadata.number", r.Metadata.Number),
		date:           must("metadata.date", r.Metadata.Date),
		bareDate:       must("metadata.date", `^\s*(?:`+r.Metadata.Date+`)\s*$`),
		location:       must("metadata.location", r.Metadata.Location),
		distribution:   must("metadata.distribution", r.Metadata.Distribution),
		nextLabel:      must("next_meeting.label", r.NextMeeting.Label),
		nextDateTime:   must("next_meeting.date_time", r.NextMeeting.DateTime),
		nextTime:       must("next_meeting.time", r.NextMeeting.Time),
	}
	for i, expr := range r.Sections.Header {
		c.sectionHeader = append(c.sectionHeader, must(fmt.Sprintf("sections.header[%d]", i), expr))
	}
	if err != nil {
		return err
	}

	if r.Sections.Fallback == "" {
		return fmt.Errorf("sections.fallback must not be empty")
	}
	if _, ok := r.Languages[r.DefaultLanguage]; !ok {
		return fmt.Errorf("default_language %q has no keywords", r.DefaultLanguage)
	}

	r.re = c
	return nil
}

// SectionDivider matches a "D<n> - " section divider in header text.
func (r *Rules) SectionDivider() *regexp.Regexp { return r.re.sectionDivider }

// SectionTitle extracts the section name of a merged title row.
func (r *Rules) SectionTitle() *regexp.Regexp { return r.re.sectionTitle }

// SectionHeaders extract a section name embedded in a header cell.
func (r *Rules) SectionHeaders() []*regexp.Regexp { return r.re.sectionHeader }

// MeetingNumber matches the labelled meeting number; group 1 is the number.
func (r *Rules) MeetingNumber() *regexp.Regexp { return r.re.number }

// Date matches a date.
func (r *Rules) Date() *regexp.Regexp { return r.re.date }

// IsBareDate reports whether s is nothing but a date.
func (r *Rules) IsBareDate(s string) bool { return r.re.bareDate.MatchString(s) }

// Location matches a labelled location; group 1 is the location.
func (r *Rules) Location() *regexp.Regexp { return r.re.location }

// Distribution matches a labelled distribution date; group 1 is the date.
func (r *Rules) Distribution() *regexp.Regexp { return r.re.distribution }

// NextMeetingLabel matches the next meeting label.
func (r *Rules) NextMeetingLabel() *regexp.Regexp { return r.re.nextLabel }

// NextMeetingDateTime matches "<date> at <time>"; groups 1 and 2 are the
// date and the time.
func (r *Rules) NextMeetingDateTime() *regexp.Regexp { return r.re.nextDateTime }

// NextMeetingTime matches a time of day.
func (r *Rules) NextMeetingTime() *regexp.Regexp { return r.re.nextTime }
