package replay

import (
	"time"

	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
)

// Report is the outcome of a replay.
type Report struct {
	Name          string         `json:"name,omitempty"`
	Pages         int            `json:"pages"`
	Notifications []Notification `json:"notifications"`
	Final         Position       `json:"final"`
	Frames        int            `json:"frames"`
	Elapsed       time.Duration  `json:"elapsed_ns"`
}

// Notification is one page change callback, attributed to the step that caused it.
type Notification struct {
	Step int    `json:"step"`
	Op   string `json:"op"`
	Page int    `json:"page"`
}

// Position is the controller's view of the surface after the last step.
type Position struct {
	Offset scroll.Offset `json:"offset"`
	Extent scroll.Extent `json:"extent"`
	Page   int           `json:"page"`
	// Rendered is the last animation frame, for animated runs only.
	Rendered *scroll.Offset `json:"rendered,omitempty"`
}

// PageSequence returns the notified page indexes in order.
func (r *Report) PageSequence() []int {
	pages := make([]int, len(r.Notifications))
	for i, n := range r.Notifications {
		pages[i] = n.Page
	}
	return pages
}
