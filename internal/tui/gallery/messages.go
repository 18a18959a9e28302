package gallery

import "time"

// ViewMode determines which screen to render.
type ViewMode int

const (
	ViewGallery ViewMode = iota
	ViewHelp
)

// PageChangedMsg reports a page change of the pages demo.
type PageChangedMsg struct {
	Page int
}

// ClearStatusMsg expires the status line message with the same sequence number.
type ClearStatusMsg struct {
	Seq int
}

// AnimationFrameMsg advances the animated components of the catalogue demo.
type AnimationFrameMsg struct {
	Time time.Time
}

// ErrorMsg shows an error banner.
type ErrorMsg struct {
	Message string
}
