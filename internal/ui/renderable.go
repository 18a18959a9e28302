// Package ui holds the contracts shared by every widget package.
package ui

// Renderable is anything that renders itself to a terminal string.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function to Renderable.
type RenderableFunc func() string

// View calls f.
func (f RenderableFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}

// Static renders a fixed string.
type Static string

// View returns s.
func (s Static) View() string { return string(s) }
