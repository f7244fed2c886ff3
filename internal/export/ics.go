// Package export renders a plan into downstream wire formats: an ICS
// calendar for import into calendar apps, and the JSON block feed.
package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/nsharma/studyblocks/internal/allocate"
)

// blockDuration is the length of every study block event.
const blockDuration = time.Hour

// DefaultCalendarName is used when the config file gives none.
const DefaultCalendarName = "Study Blocks"

// ICS renders blocks as a VCALENDAR document. Each block becomes a
// one-hour VEVENT; slot collisions between items are kept as separate
// events, mirroring the planner's independent per-item allocation.
func ICS(blocks []allocate.Block, name string, now time.Time) string {
	if name == "" {
		name = DefaultCalendarName
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//studyblocks//EN")
	cal.SetXWRCalName(name)

	for _, b := range blocks {
		ev := cal.AddEvent(uuid.NewString() + "@studyblocks")
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetStartAt(b.Start)
		ev.SetEndAt(b.Start.Add(blockDuration))
		ev.SetSummary(b.Title)
		if b.Course != "" {
			ev.SetDescription(fmt.Sprintf("%s (%s)", b.Course, b.Kind))
		} else {
			ev.SetDescription(string(b.Kind))
		}
	}

	return cal.Serialize()
}
