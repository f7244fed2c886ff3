package allocate

import (
	"encoding/json"
	"time"

	"github.com/nsharma/studyblocks/internal/syllabus"
)

// Block is one scheduled hour of study or assignment work. Two blocks
// from different items may share a slot; identity is only the visible
// (title, date, time) triple.
type Block struct {
	Title  string
	Start  time.Time // slot start, minute-aligned to :00
	Kind   syllabus.Kind
	Course string
}

// Date returns the slot's calendar date in YYYY-MM-DD form.
func (b Block) Date() string {
	return b.Start.Format(syllabus.DateLayout)
}

// Clock returns the slot's wall-clock start in HH:MM form.
func (b Block) Clock() string {
	return b.Start.Format("15:04")
}

// MarshalJSON renders the downstream wire form: title, date, time, type,
// and the display-only course label.
func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title  string `json:"title"`
		Date   string `json:"date"`
		Time   string `json:"time"`
		Type   string `json:"type"`
		Course string `json:"course,omitempty"`
	}{
		Title:  b.Title,
		Date:   b.Date(),
		Time:   b.Clock(),
		Type:   string(b.Kind),
		Course: b.Course,
	})
}
