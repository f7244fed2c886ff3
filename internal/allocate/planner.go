package allocate

import (
	"sort"

	"github.com/nsharma/studyblocks/internal/estimate"
	"github.com/nsharma/studyblocks/internal/syllabus"
	"github.com/nsharma/studyblocks/internal/timetable"
)

// Plan schedules every work item in the document against its class
// timetable and returns all blocks in priority order: earliest due date
// first, then heavier weight, then higher difficulty. Items without a
// due date are excluded. Each item is allocated independently, so blocks
// from different items may land on the same slot.
func Plan(doc syllabus.Document) []Block {
	cal := timetable.Build(doc.TimetableEntries())
	return PlanItems(doc.Items(), cal)
}

// PlanItems is Plan for pre-converted items and a prebuilt calendar.
func PlanItems(items []syllabus.WorkItem, cal timetable.Calendar) []Block {
	scheduled := make([]syllabus.WorkItem, 0, len(items))
	for _, it := range items {
		if it.HasDue() {
			scheduled = append(scheduled, it)
		}
	}

	sort.SliceStable(scheduled, func(i, j int) bool {
		a, b := scheduled[i], scheduled[j]
		if !a.Due.Equal(b.Due) {
			return a.Due.Before(b.Due)
		}
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		return sortDifficulty(a.Difficulty) > sortDifficulty(b.Difficulty)
	})

	var all []Block
	for _, it := range scheduled {
		all = append(all, forItem(it, estimate.Hours(it), cal)...)
	}
	return all
}

// sortDifficulty ranks an unrated item at the estimation default so it
// is not pushed behind every rated item with the same due date and
// weight.
func sortDifficulty(d int) int {
	if d == 0 {
		return estimate.DefaultDifficulty
	}
	return d
}
