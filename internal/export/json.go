package export

import (
	"encoding/json"
	"fmt"

	"github.com/nsharma/studyblocks/internal/allocate"
)

// JSON renders blocks as the downstream feed: an object with a single
// "blocks" array of {title, date, time, type} entries.
func JSON(blocks []allocate.Block) ([]byte, error) {
	if blocks == nil {
		blocks = []allocate.Block{}
	}
	out, err := json.MarshalIndent(struct {
		Blocks []allocate.Block `json:"blocks"`
	}{Blocks: blocks}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal blocks: %w", err)
	}
	return out, nil
}
