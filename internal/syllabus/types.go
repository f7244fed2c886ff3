package syllabus

import (
	"time"

	"github.com/nsharma/studyblocks/internal/timetable"
)

// Kind distinguishes the two schedulable work item types.
type Kind string

const (
	KindAssignment Kind = "assignment"
	KindTest       Kind = "test"
)

// WorkItem is one assignment or test ready for scheduling. Weight and
// Difficulty keep their raw extracted values here; zero means
// "unspecified" and is substituted at estimation time, never mutated
// on the item itself.
type WorkItem struct {
	Title      string
	Kind       Kind
	Weight     float64   // grade percentage, 0 = unspecified
	Difficulty int       // 1-10, 0 = unspecified
	Due        time.Time // due date for assignments, test date for tests; zero = unknown
	DueTime    string    // display only, "N/A" when the syllabus gave none
	Course     string    // display only
}

// HasDue reports whether the item carries a usable due date. Items
// without one are excluded from scheduling, not treated as errors.
func (w WorkItem) HasDue() bool {
	return !w.Due.IsZero()
}

// Assignment mirrors one entry of the "assignments" array in the
// extraction output.
type Assignment struct {
	Title      string  `json:"title"`
	DueDate    string  `json:"due_date"`
	DueTime    string  `json:"due_time"`
	Weight     float64 `json:"weight"`
	Difficulty int     `json:"difficulty"`
}

// Test mirrors one entry of the "tests" array in the extraction output.
type Test struct {
	Title  string  `json:"title"`
	Date   string  `json:"date"`
	Time   string  `json:"time"`
	Weight float64 `json:"weight"`
}

// ScheduleEntry mirrors one entry of the "schedule" array: a recurring
// weekly class commitment.
type ScheduleEntry struct {
	Name     string   `json:"name"`
	Days     []string `json:"days"`
	Time     string   `json:"time"`
	Location string   `json:"location"`
}

// Document is the structured form of a parsed syllabus. Its JSON shape
// is the contract between the LLM extraction step and the scheduler.
type Document struct {
	Assignments []Assignment    `json:"assignments"`
	Tests       []Test          `json:"tests"`
	Schedule    []ScheduleEntry `json:"schedule"`
}

// DateLayout is the calendar date format used throughout: extraction
// output, block output, and storage.
const DateLayout = "2006-01-02"

// parseDate returns the zero time for anything that is not a
// YYYY-MM-DD date; callers skip such items rather than failing.
func parseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Items flattens the document into WorkItems for the planner. Dates are
// parsed here; an unparsable or absent date yields a zero Due, which the
// planner skips. Course labels come from the first schedule entry with a
// name, matching how a single-course syllabus reads.
func (d Document) Items() []WorkItem {
	course := ""
	for _, s := range d.Schedule {
		if s.Name != "" {
			course = s.Name
			break
		}
	}

	items := make([]WorkItem, 0, len(d.Assignments)+len(d.Tests))
	for _, a := range d.Assignments {
		items = append(items, WorkItem{
			Title:      a.Title,
			Kind:       KindAssignment,
			Weight:     a.Weight,
			Difficulty: a.Difficulty,
			Due:        parseDate(a.DueDate),
			DueTime:    a.DueTime,
			Course:     course,
		})
	}
	for _, t := range d.Tests {
		items = append(items, WorkItem{
			Title:   t.Title,
			Kind:    KindTest,
			Weight:  t.Weight,
			Due:     parseDate(t.Date),
			DueTime: t.Time,
			Course:  course,
		})
	}
	return items
}

// TimetableEntries converts the schedule section for the conflict
// calendar builder.
func (d Document) TimetableEntries() []timetable.Entry {
	entries := make([]timetable.Entry, 0, len(d.Schedule))
	for _, s := range d.Schedule {
		entries = append(entries, timetable.Entry{
			Course:   s.Name,
			Days:     s.Days,
			Time:     s.Time,
			Location: s.Location,
		})
	}
	return entries
}
