package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"stickies/internal/types"
)

const (
	toolbarPlusGlyph  = "+"
	toolbarCloseGlyph = "×"

	// Bottom-right block that starts a resize instead of a drag.
	resizeMarginX = 2
	resizeMarginY = 2
)

// noteWindow is one floating note on the board: persisted geometry plus
// the live textarea editing its body. The id is session-local and only
// exists to track mouse gestures and focus; it is never persisted.
type noteWindow struct {
	id         int
	note       types.Note
	body       textarea.Model
	flashUntil time.Time
}

func newNoteWindow(id int, note types.Note) *noteWindow {
	note.Clamp()
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.SetValue(note.Text)
	w := &noteWindow{id: id, note: note, body: ta}
	w.syncBodySize()
	return w
}

func (w *noteWindow) syncBodySize() {
	w.body.SetWidth(w.note.Width - 2)
	w.body.SetHeight(w.note.Height - 3)
}

func (w *noteWindow) setGeometry(note types.Note) {
	note.Clamp()
	w.note = note
	w.syncBodySize()
}

func (w *noteWindow) focus() tea.Cmd {
	return w.body.Focus()
}

func (w *noteWindow) blur() {
	w.body.Blur()
}

func (w *noteWindow) focused() bool {
	return w.body.Focused()
}

// syncText pulls the textarea value into the persisted record and
// reports whether it changed.
func (w *noteWindow) syncText() bool {
	value := w.body.Value()
	if value == w.note.Text {
		return false
	}
	w.note.Text = value
	return true
}

func (w *noteWindow) startFlash(now time.Time) {
	w.flashUntil = now.Add(flashDuration)
}

func (w *noteWindow) flashing(now time.Time) bool {
	return now.Before(w.flashUntil)
}

// toolbarHit reports clicks on the toolbar buttons: "+" sits on the
// left edge of the toolbar row, "×" on the right.
func (w *noteWindow) toolbarHit(x, y int) (plus, closeHit bool) {
	if y != w.note.Y+1 {
		return false, false
	}
	if x == w.note.X+1 || x == w.note.X+2 {
		return true, false
	}
	if x == w.note.X+w.note.Width-2 || x == w.note.X+w.note.Width-3 {
		return false, true
	}
	return false, false
}

// inResizeMargin reports whether a press lands in the bottom-right
// corner block, which starts a resize gesture instead of a drag.
func (w *noteWindow) inResizeMargin(x, y int) bool {
	if y <= w.note.Y+1 {
		return false
	}
	return x >= w.note.X+w.note.Width-resizeMarginX && y >= w.note.Y+w.note.Height-resizeMarginY
}

func (w *noteWindow) render(now time.Time) string {
	inner := w.note.Width - 2
	bodyHeight := w.note.Height - 3

	frame := noteBorderStyle
	toolbarText := toolbarStyle
	if w.focused() {
		frame = noteFocusedBorderStyle
		toolbarText = toolbarFocusedStyle
	}
	flashing := w.flashing(now)
	if flashing {
		frame = noteFlashStyle
		toolbarText = noteBodyFlashStyle
	}

	gap := inner - runewidth.StringWidth(toolbarPlusGlyph) - runewidth.StringWidth(toolbarCloseGlyph)
	if gap < 0 {
		gap = 0
	}
	toolbar := toolbarText.Render(toolbarPlusGlyph + strings.Repeat(" ", gap) + toolbarCloseGlyph)

	var body string
	if flashing {
		body = w.renderFlashBody(inner, bodyHeight)
	} else {
		body = w.body.View()
	}

	return frame.Width(inner).Height(w.note.Height - 2).Render(toolbar + "\n" + body)
}

func (w *noteWindow) renderFlashBody(width, height int) string {
	lines := strings.Split(w.note.Text, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = noteBodyFlashStyle.Render(truncateToWidth(line, width))
	}
	return strings.Join(lines, "\n")
}
