package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"stickies/internal/types"
)

// mouseGesture is an in-flight drag or resize. Drag and resize are
// mutually exclusive: the press position decides which one starts, and
// the gesture holds until release.
type mouseGesture struct {
	noteID int
	resize bool
	startX int
	startY int
	origin types.Note
	moved  bool
}

func (m *Model) handleMouse(msg tea.MouseMsg) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		return m.reduceNoteLeftPressMouse(msg)
	case tea.MouseActionMotion:
		return m.reduceGestureMotionMouse(msg)
	case tea.MouseActionRelease:
		return m.reduceGestureReleaseMouse()
	}
	return false
}

func (m *Model) reduceNoteLeftPressMouse(msg tea.MouseMsg) bool {
	w := m.windowAt(msg.X, msg.Y)
	if w == nil {
		m.preview = false
		m.blurFocus()
		return false
	}
	m.raise(w)

	if msg.Ctrl || msg.Alt {
		m.pendingMouseCmd = m.copyNoteWithFlash(w)
		return true
	}

	if plus, closeHit := w.toolbarHit(msg.X, msg.Y); plus || closeHit {
		if plus {
			m.pendingMouseCmd = m.spawnNote()
		} else {
			m.pendingMouseCmd = m.closeNoteWindow(w)
		}
		return true
	}

	m.preview = false
	m.pendingMouseCmd = m.setFocus(w)
	m.gesture = &mouseGesture{
		noteID: w.id,
		resize: w.inResizeMargin(msg.X, msg.Y),
		startX: msg.X,
		startY: msg.Y,
		origin: w.note,
	}
	return true
}

func (m *Model) reduceGestureMotionMouse(msg tea.MouseMsg) bool {
	if m.gesture == nil {
		return false
	}
	w := m.windowByID(m.gesture.noteID)
	if w == nil {
		m.gesture = nil
		return false
	}
	dx := msg.X - m.gesture.startX
	dy := msg.Y - m.gesture.startY

	next := m.gesture.origin
	if m.gesture.resize {
		next.Width = m.gesture.origin.Width + dx
		next.Height = m.gesture.origin.Height + dy
	} else {
		next.X = clamp(m.gesture.origin.X+dx, 0, max(0, m.width-types.MinNoteWidth))
		next.Y = clamp(m.gesture.origin.Y+dy, 0, max(0, m.height-1-types.MinNoteHeight))
	}
	w.setGeometry(next)
	if w.note != m.gesture.origin {
		m.gesture.moved = true
	}
	return true
}

func (m *Model) reduceGestureReleaseMouse() bool {
	if m.gesture == nil {
		return false
	}
	moved := m.gesture.moved
	m.gesture = nil
	if moved {
		m.pendingMouseCmd = m.saveCmd()
	}
	return true
}

// windowAt returns the topmost note covering the cell.
func (m *Model) windowAt(x, y int) *noteWindow {
	for i := len(m.notes) - 1; i >= 0; i-- {
		if m.notes[i].note.Contains(x, y) {
			return m.notes[i]
		}
	}
	return nil
}
