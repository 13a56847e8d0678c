package model

import "strings"

// Language tags.
const (
	LanguageEN = "EN"
	LanguageFR = "FR"
)

// Status is the attendance status of a person.
type Status string

// Attendance statuses, in the column order of the attendance matrix.
const (
	StatusPresent   Status = "Present"
	StatusExcused   Status = "Excused"
	StatusInvited   Status = "Invited"
	StatusDiffusion Status = "Diffusion"
)

// Report is the content extracted from a meeting-minutes document.
type Report struct {
	Language     string             `json:"language" yaml:"language"`
	Source       Source             `json:"source" yaml:"source"`
	Metadata     Metadata           `json:"metadata" yaml:"metadata"`
	Attendance   []Attendee         `json:"attendance" yaml:"attendance"`
	NextMeeting  *NextMeeting       `json:"next_meeting,omitempty" yaml:"next_meeting,omitempty"`
	InfoExchange []InfoExchangeItem `json:"info_exchange" yaml:"info_exchange"`
	Planning     []PlanningItem     `json:"planning" yaml:"planning"`
	Sections     []Section          `json:"sections" yaml:"sections"`
}

// Source describes the document a report was extracted from.
type Source struct {
	File           string `json:"file,omitempty" yaml:"file,omitempty"`
	Title          string `json:"title,omitempty" yaml:"title,omitempty"`
	Creator        string `json:"creator,omitempty" yaml:"creator,omitempty"`
	LastModifiedBy string `json:"last_modified_by,omitempty" yaml:"last_modified_by,omitempty"`
	Modified       string `json:"modified,omitempty" yaml:"modified,omitempty"`
}

// Metadata holds the meeting identification. A zero field was not found.
type Metadata struct {
	MeetingNumber    int    `json:"meeting_number,omitempty" yaml:"meeting_number,omitempty"`
	Date             string `json:"date,omitempty" yaml:"date,omitempty"`
	Location         string `json:"location,omitempty" yaml:"location,omitempty"`
	DistributionDate string `json:"distribution_date,omitempty" yaml:"distribution_date,omitempty"`
}

// Attendee is an organization and the people it sent or informed.
type Attendee struct {
	Organization string   `json:"organization" yaml:"organization"`
	People       []Person `json:"people" yaml:"people"`
}

// Person is an attendee with their statuses.
type Person struct {
	Name   string   `json:"name" yaml:"name"`
	Status []Status `json:"status" yaml:"status"`
}

// Has reports whether the person has status s.
func (p Person) Has(s Status) bool {
	for _, st := range p.Status {
		if st == s {
			return true
		}
	}
	return false
}

// NextMeeting is the announced next meeting.
type NextMeeting struct {
	Date     string `json:"date" yaml:"date"`
	Time     string `json:"time,omitempty" yaml:"time,omitempty"`
	FullText string `json:"full_text" yaml:"full_text"`
}

// Section is a named group of points, one per subject table.
type Section struct {
	Name       string  `json:"section_name" yaml:"section_name"`
	TableIndex int     `json:"table_index" yaml:"table_index"`
	Points     []Point `json:"points" yaml:"points"`
}

// Point returns the point with the given number, or nil.
func (s *Section) Point(number string) *Point {
	for i := range s.Points {
		if s.Points[i].Number == number {
			return &s.Points[i]
		}
	}
	return nil
}

// Point is a numbered discussion item.
type Point struct {
	Number  string             `json:"number" yaml:"number"`
	Title   string             `json:"title" yaml:"title"`
	Subject []SubjectParagraph `json:"subject_paragraphs" yaml:"subject_paragraphs"`
	ForWhom []string           `json:"for_whom_paragraphs" yaml:"for_whom_paragraphs"`
	Due     []string           `json:"due_paragraphs" yaml:"due_paragraphs"`
}

// Latest returns the text of the bold subject paragraphs, the content added
// at the most recent meeting.
func (p *Point) Latest() []string {
	var lines []string
	for _, sp := range p.Subject {
		if sp.HasBold {
			lines = append(lines, sp.Text)
		}
	}
	return lines
}

// SubjectParagraph is one paragraph of a point's subject cell.
type SubjectParagraph struct {
	Text    string `json:"text" yaml:"text"`
	HasBold bool   `json:"has_bold" yaml:"has_bold"`
}

// InfoExchangeItem is a row of the information exchange table.
type InfoExchangeItem struct {
	FromWhom string `json:"from_whom" yaml:"from_whom"`
	Status   string `json:"status" yaml:"status"`
	Content  string `json:"content" yaml:"content"`
	DueDate  string `json:"due_date" yaml:"due_date"`
}

// PlanningItem is a row of the planning table.
type PlanningItem struct {
	Content string `json:"content" yaml:"content"`
	IsNew   bool   `json:"is_new" yaml:"is_new"`
}

// SectionNames returns the section names in table order.
func (r *Report) SectionNames() []string {
	names := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		names = append(names, s.Name)
	}
	return names
}

// Section returns the first section whose name matches name, ignoring case,
// or nil.
func (r *Report) Section(name string) *Section {
	for i := range r.Sections {
		if strings.EqualFold(strings.TrimSpace(r.Sections[i].Name), strings.TrimSpace(name)) {
			return &r.Sections[i]
		}
	}
	return nil
}

// FindPoint returns the point with the given number in any section, with
// its section, or nils.
func (r *Report) FindPoint(number string) (*Section, *Point) {
	for i := range r.Sections {
		if p := r.Sections[i].Point(number); p != nil {
			return &r.Sections[i], p
		}
	}
	return nil, nil
}
