package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	return xansi.Truncate(s, width, "…")
}

// blockWidth returns the widest line of a rendered block.
func blockWidth(block string) int {
	width := 0
	for _, line := range strings.Split(block, "\n") {
		if w := xansi.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
