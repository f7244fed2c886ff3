// Package allocate turns estimated hour budgets into concrete one-hour
// study blocks on an hourly grid, avoiding class conflicts and spreading
// work across the two weeks before each due date.
package allocate

import (
	"time"

	"github.com/nsharma/studyblocks/internal/syllabus"
	"github.com/nsharma/studyblocks/internal/timetable"
)

const (
	// lookbackDays bounds how far before a due date blocks may start.
	lookbackDays = 14

	// dayStartHour is where the hourly cursor begins on the first day.
	dayStartHour = 9

	// Study hours run 09:00 through 01:59 the next morning; the
	// 02:00–08:59 window stays free for sleep.
	studyStartHour = 9
	lateCutoffHour = 2

	// maxPerDay caps the blocks one item may claim on a single date.
	maxPerDay = 3

	// capWaiverWindow suspends the daily cap once the due date is this
	// close, so the final stretch can absorb whatever is left.
	capWaiverWindow = 48 * time.Hour
)

// withinStudyHours is the wrap-around study window predicate, kept as an
// explicit hour rule so the 02:00/09:00 boundaries stay readable.
func withinStudyHours(t time.Time) bool {
	h := t.Hour()
	return h >= studyStartHour || h < lateCutoffHour
}

// blockTitle derives the display title from the item kind.
func blockTitle(item syllabus.WorkItem) string {
	if item.Kind == syllabus.KindTest {
		return "Study for " + item.Title
	}
	return "Work on " + item.Title
}

// forItem runs the greedy first-fit scan for a single item: walk the
// hourly grid from fourteen days out at 09:00 up to the due date,
// claiming every eligible slot until the hour budget is spent. Slots
// lost to classes or the nightly gap are simply skipped; if the window
// closes first, the item ends up under-allocated and that is accepted.
func forItem(item syllabus.WorkItem, hours int, cal timetable.Calendar) []Block {
	due := item.Due
	cursor := due.AddDate(0, 0, -lookbackDays)
	cursor = time.Date(cursor.Year(), cursor.Month(), cursor.Day(), dayStartHour, 0, 0, 0, cursor.Location())

	title := blockTitle(item)
	var blocks []Block

	// Blocks already placed per date. Scoped to this invocation: each
	// item plans against the calendar alone, not against other items.
	placed := make(map[string]int)

	for !cursor.After(due) && hours > 0 {
		if withinStudyHours(cursor) && !cal.Conflicts(cursor) {
			day := cursor.Format(syllabus.DateLayout)
			if placed[day] < maxPerDay || due.Sub(cursor) < capWaiverWindow {
				blocks = append(blocks, Block{
					Title:  title,
					Start:  cursor,
					Kind:   item.Kind,
					Course: item.Course,
				})
				placed[day]++
				hours--
			}
		}
		cursor = cursor.Add(time.Hour)
	}
	return blocks
}
