package paging

// Physics names the boundary behaviour at the first and last page.
//
// All three values clamp the page index identically. Bouncy only changes what the surface may
// render: frames are allowed to overshoot the extent while the index stays in range.
type Physics int

const (
	PhysicsClamped Physics = iota
	PhysicsBouncy
	PhysicsNever
)

// String returns the config spelling of the physics value.
func (p Physics) String() string {
	switch p {
	case PhysicsBouncy:
		return "bouncy"
	case PhysicsNever:
		return "never"
	default:
		return "clamped"
	}
}

// ParsePhysics converts a config value. The empty string selects clamped.
func ParsePhysics(value string) (Physics, bool) {
	switch value {
	case "clamped", "":
		return PhysicsClamped, true
	case "bouncy":
		return PhysicsBouncy, true
	case "never":
		return PhysicsNever, true
	default:
		return PhysicsClamped, false
	}
}

// AllowsOverscroll reports whether rendered frames may leave the scroll extent.
func (p Physics) AllowsOverscroll() bool {
	return p == PhysicsBouncy
}

// NoPage is the page index reported when there are no pages.
const NoPage = -1

// PageSet is a discrete index over a fixed number of pages.
type PageSet struct {
	Count   int
	Index   int
	Physics Physics
}

// Clamp bounds i into [0, Count-1]. It returns NoPage when Count is zero.
func (p PageSet) Clamp(i int) int {
	if p.Count <= 0 {
		return NoPage
	}
	if i < 0 {
		return 0
	}
	if i > p.Count-1 {
		return p.Count - 1
	}
	return i
}

// Current returns Index, or NoPage when the set is empty.
func (p PageSet) Current() int {
	if p.Count <= 0 {
		return NoPage
	}
	return p.Index
}
