package scroll

import "math"

// Axis identifies the direction(s) a surface scrolls in.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
	AxisBoth
)

// String returns the config spelling of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisBoth:
		return "both"
	default:
		return "vertical"
	}
}

// ParseAxis converts a config value into an Axis. Unknown values map to vertical.
func ParseAxis(value string) (Axis, bool) {
	switch value {
	case "vertical", "":
		return AxisVertical, true
	case "horizontal":
		return AxisHorizontal, true
	case "both":
		return AxisBoth, true
	default:
		return AxisVertical, false
	}
}

// Vertical reports whether the axis includes the vertical direction.
func (a Axis) Vertical() bool {
	return a == AxisVertical || a == AxisBoth
}

// Horizontal reports whether the axis includes the horizontal direction.
func (a Axis) Horizontal() bool {
	return a == AxisHorizontal || a == AxisBoth
}

// Size is a width/height pair in surface units (terminal cells for the bundled renderers).
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Along returns the size along the primary direction of axis.
// AxisBoth is treated as vertical.
func (s Size) Along(axis Axis) float64 {
	if axis == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

// Offset is a scroll position. Top is the vertical component, Left the horizontal one.
type Offset struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

// Along returns the component of the offset on the primary direction of axis.
func (o Offset) Along(axis Axis) float64 {
	if axis == AxisHorizontal {
		return o.Left
	}
	return o.Top
}

// WithAlong returns a copy of o with the primary component for axis replaced by v.
func (o Offset) WithAlong(axis Axis, v float64) Offset {
	if axis == AxisHorizontal {
		o.Left = v
		return o
	}
	o.Top = v
	return o
}

// Extent is the largest valid offset of a surface.
type Extent struct {
	MaxTop  float64 `json:"max_top"`
	MaxLeft float64 `json:"max_left"`
}

// IsZero reports whether the surface cannot scroll at all.
func (e Extent) IsZero() bool {
	return e.MaxTop == 0 && e.MaxLeft == 0
}

// ExtentOf derives the extent of content laid out inside a viewport.
// Negative or non-finite sizes are treated as zero.
func ExtentOf(viewport, content Size) Extent {
	return Extent{
		MaxTop:  nonNegative(dimension(content.Height) - dimension(viewport.Height)),
		MaxLeft: nonNegative(dimension(content.Width) - dimension(viewport.Width)),
	}
}

// Clamp bounds o into [0, MaxTop] x [0, MaxLeft].
func (e Extent) Clamp(o Offset) Offset {
	return Offset{
		Top:  clamp(sanitize(o.Top), 0, e.MaxTop),
		Left: clamp(sanitize(o.Left), 0, e.MaxLeft),
	}
}

// Event describes one observed scroll position change of a surface.
type Event struct {
	Offset   Offset
	Extent   Extent
	Viewport Size
	// User is set when the change came from direct user input rather than a command.
	User bool
	// Layout is set when the viewport or content size changed.
	Layout bool
	// Moving is set while the surface still has frames to render after this one.
	Moving bool
}

func clamp(v, low, high float64) float64 {
	if high < low {
		high = low
	}
	return math.Min(high, math.Max(low, v))
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func dimension(v float64) float64 {
	return nonNegative(sanitize(v))
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
