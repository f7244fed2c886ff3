package timetable

import (
	"strings"
	"time"
)

// Entry is one raw row of the weekly class schedule as extracted from a
// syllabus: a set of weekday names plus a wall-clock time range.
type Entry struct {
	Course   string
	Days     []string
	Time     string // "HH:MM–HH:MM", 24-hour clock
	Location string
}

// Interval is a blocked wall-clock span within a single day, expressed
// in minutes since midnight. Start is inclusive, End exclusive.
type Interval struct {
	Start int
	End   int
}

// Calendar maps a weekday name ("Monday" ... "Sunday") to the class
// intervals blocked on that day.
type Calendar map[string][]Interval

// rangeSeparators are the dashes accepted between the two clock times.
// Syllabi extracted by the LLM use an en dash; hand-written input tends
// to use a plain hyphen.
var rangeSeparators = []string{"–", "—", "-"}

// ParseRange parses a "HH:MM–HH:MM" time range into start/end minutes
// since midnight. The boolean is false for anything malformed: no dash,
// an unparsable clock time, or an empty side.
func ParseRange(s string) (start, end int, ok bool) {
	for _, sep := range rangeSeparators {
		before, after, found := strings.Cut(s, sep)
		if !found {
			continue
		}
		start, ok = parseClock(strings.TrimSpace(before))
		if !ok {
			return 0, 0, false
		}
		end, ok = parseClock(strings.TrimSpace(after))
		if !ok {
			return 0, 0, false
		}
		return start, end, true
	}
	return 0, 0, false
}

func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// Build aggregates schedule entries into a Calendar. Entries whose time
// range fails to parse are dropped without signal.
func Build(entries []Entry) Calendar {
	cal := make(Calendar)
	for _, e := range entries {
		start, end, ok := ParseRange(e.Time)
		if !ok {
			continue
		}
		for _, day := range e.Days {
			cal[day] = append(cal[day], Interval{Start: start, End: end})
		}
	}
	return cal
}

// Conflicts reports whether the instant falls inside a class interval on
// its weekday. Interval bounds are half-open: a class running 14:30–16:30
// blocks 14:30 through 16:29 but leaves 16:30 itself free.
func (c Calendar) Conflicts(t time.Time) bool {
	mins := t.Hour()*60 + t.Minute()
	for _, iv := range c[t.Weekday().String()] {
		if iv.Start <= mins && mins < iv.End {
			return true
		}
	}
	return false
}
