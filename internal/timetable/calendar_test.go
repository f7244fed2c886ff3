package timetable

import (
	"testing"
	"time"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"en dash", "14:30–16:30", 14*60 + 30, 16*60 + 30, true},
		{"hyphen", "09:00-10:00", 9 * 60, 10 * 60, true},
		{"spaces around dash", "10:30 – 11:30", 10*60 + 30, 11*60 + 30, true},
		{"missing dash", "14:30 to 16:30", 0, 0, false},
		{"bad start", "9am–16:30", 0, 0, false},
		{"bad end", "14:30–late", 0, 0, false},
		{"not a time at all", "N/A", 0, 0, false},
		{"empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := ParseRange(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseRange(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("ParseRange(%q) = (%d, %d), want (%d, %d)",
					tt.input, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestBuild_SkipsMalformedEntries(t *testing.T) {
	cal := Build([]Entry{
		{Days: []string{"Monday", "Wednesday"}, Time: "10:30–11:30"},
		{Days: []string{"Tuesday"}, Time: "N/A"},
		{Days: []string{"Friday"}, Time: ""},
	})

	if got := len(cal["Monday"]); got != 1 {
		t.Errorf("Monday intervals = %d, want 1", got)
	}
	if got := len(cal["Wednesday"]); got != 1 {
		t.Errorf("Wednesday intervals = %d, want 1", got)
	}
	if got := len(cal["Tuesday"]); got != 0 {
		t.Errorf("Tuesday intervals = %d, want 0 (N/A entry must be dropped)", got)
	}
	if got := len(cal["Friday"]); got != 0 {
		t.Errorf("Friday intervals = %d, want 0 (empty entry must be dropped)", got)
	}
}

func TestConflicts_HalfOpenInterval(t *testing.T) {
	// Thursday 14:30–16:30, as in a one-lecture-a-week course.
	cal := Build([]Entry{
		{Days: []string{"Thursday"}, Time: "14:30–16:30"},
	})

	// 2025-01-30 is a Thursday.
	thursday := func(hour, min int) time.Time {
		return time.Date(2025, 1, 30, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"hour before class", thursday(14, 0), false},
		{"class start", thursday(14, 30), true},
		{"inside class", thursday(15, 0), true},
		{"last blocked minute", thursday(16, 29), true},
		{"class end is free", thursday(16, 30), false},
		{"same time other weekday", time.Date(2025, 1, 31, 15, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.Conflicts(tt.at); got != tt.want {
				t.Errorf("Conflicts(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestConflicts_MultipleIntervalsSameDay(t *testing.T) {
	cal := Build([]Entry{
		{Days: []string{"Monday"}, Time: "09:00–10:00"},
		{Days: []string{"Monday"}, Time: "13:00–14:00"},
	})

	// 2025-02-03 is a Monday.
	monday := func(hour int) time.Time {
		return time.Date(2025, 2, 3, hour, 0, 0, 0, time.UTC)
	}

	if !cal.Conflicts(monday(9)) {
		t.Error("09:00 should conflict with the morning class")
	}
	if cal.Conflicts(monday(11)) {
		t.Error("11:00 falls between classes and should be free")
	}
	if !cal.Conflicts(monday(13)) {
		t.Error("13:00 should conflict with the afternoon class")
	}
}

func TestConflicts_EmptyCalendar(t *testing.T) {
	var cal Calendar = Calendar{}
	if cal.Conflicts(time.Date(2025, 2, 3, 12, 0, 0, 0, time.UTC)) {
		t.Error("empty calendar should never conflict")
	}
}
