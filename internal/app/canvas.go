package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// textCanvas splices styled blocks into a base view. Overlays are
// positioned by cell, clipped to the canvas, and later overlays paint
// over earlier ones.
type textCanvas struct {
	lines []string
	width int
}

func newTextCanvas(width, height int) textCanvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	return textCanvas{lines: lines, width: width}
}

func (c *textCanvas) OverlayBlock(block string, row, col int) {
	if c == nil || block == "" || len(c.lines) == 0 || col >= c.width {
		return
	}
	if col < 0 {
		col = 0
	}
	for i, line := range strings.Split(block, "\n") {
		target := row + i
		if target < 0 || target >= len(c.lines) {
			continue
		}
		lineWidth := xansi.StringWidth(line)
		if col+lineWidth > c.width {
			line = xansi.Truncate(line, c.width-col, "")
			lineWidth = c.width - col
		}
		base := c.lines[target]
		left := xansi.Truncate(base, col, "")
		if leftWidth := xansi.StringWidth(left); leftWidth < col {
			left += strings.Repeat(" ", col-leftWidth)
		}
		right := ""
		if xansi.StringWidth(base) > col+lineWidth {
			right = xansi.TruncateLeft(base, col+lineWidth, "")
		}
		c.lines[target] = left + line + right
	}
}

func (c *textCanvas) String() string {
	if c == nil {
		return ""
	}
	return strings.Join(c.lines, "\n")
}
