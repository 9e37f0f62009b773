package app

import (
	"strings"
	"testing"
)

func TestCanvasOverlayBlock(t *testing.T) {
	canvas := newTextCanvas(10, 4)
	canvas.OverlayBlock("ab\ncd", 1, 3)

	lines := strings.Split(canvas.String(), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[1] != "   ab     " {
		t.Fatalf("unexpected row 1: %q", lines[1])
	}
	if lines[2] != "   cd     " {
		t.Fatalf("unexpected row 2: %q", lines[2])
	}
	if lines[0] != strings.Repeat(" ", 10) {
		t.Fatalf("row 0 should be untouched: %q", lines[0])
	}
}

func TestCanvasOverlayClipsAtEdges(t *testing.T) {
	canvas := newTextCanvas(6, 2)
	canvas.OverlayBlock("abcdef", 0, 4)
	canvas.OverlayBlock("below", 3, 0)
	canvas.OverlayBlock("xy", 1, 9)

	lines := strings.Split(canvas.String(), "\n")
	if lines[0] != "    ab" {
		t.Fatalf("right clip failed: %q", lines[0])
	}
	if lines[1] != "      " {
		t.Fatalf("out-of-range overlays should be dropped: %q", lines[1])
	}
}

func TestCanvasLaterOverlayWins(t *testing.T) {
	canvas := newTextCanvas(8, 1)
	canvas.OverlayBlock("AAAA", 0, 0)
	canvas.OverlayBlock("BB", 0, 1)

	lines := strings.Split(canvas.String(), "\n")
	if lines[0] != "ABBA    " {
		t.Fatalf("expected later overlay on top, got %q", lines[0])
	}
}

func TestCanvasPreservesStyledBase(t *testing.T) {
	canvas := newTextCanvas(8, 1)
	canvas.OverlayBlock("\x1b[31mredline\x1b[0m", 0, 0)
	canvas.OverlayBlock("X", 0, 3)

	line := strings.Split(canvas.String(), "\n")[0]
	if !strings.Contains(line, "X") {
		t.Fatalf("overlay lost: %q", line)
	}
	if !strings.Contains(line, "\x1b[31m") {
		t.Fatalf("base styling lost: %q", line)
	}
}
