package scrollview

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// shift displaces a rendered viewport by the overscroll distance dx, dy (in cells), filling the
// uncovered area with blanks. Negative values mean the surface is pulled past its start.
func shift(view string, dx, dy, width, height int) string {
	if dx == 0 && dy == 0 {
		return view
	}

	lines := strings.Split(view, "\n")
	blank := strings.Repeat(" ", max(width, 0))

	if n := min(abs(dy), height, len(lines)); n > 0 {
		pad := make([]string, n)
		for i := range pad {
			pad[i] = blank
		}
		if dy < 0 {
			lines = append(pad, lines[:len(lines)-n]...)
		} else {
			lines = append(lines[n:], pad...)
		}
	}

	if n := min(abs(dx), width); n > 0 {
		for i, line := range lines {
			if dx < 0 {
				lines[i] = strings.Repeat(" ", n) + ansi.Truncate(line, width-n, "")
			} else {
				lines[i] = ansi.Cut(line, n, width) + strings.Repeat(" ", n)
			}
		}
	}

	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
