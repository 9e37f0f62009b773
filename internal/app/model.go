package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stickies/internal/logging"
	"stickies/internal/store"
	"stickies/internal/types"
)

const (
	flashDuration = 200 * time.Millisecond

	// Offset applied to a note spawned from an existing one, the
	// cell-space analogue of the original 20px cascade.
	newNoteOffsetX = 2
	newNoteOffsetY = 1

	defaultSpawnX = 4
	defaultSpawnY = 2

	// External-change events arriving this soon after our own save are
	// echoes of that save, not another writer.
	watchSuppress = 500 * time.Millisecond
)

type Model struct {
	store       store.BoardStore
	logger      logging.Logger
	keybindings *Keybindings
	watcher     *store.Watcher

	width  int
	height int

	notes  []*noteWindow
	nextID int

	gesture         *mouseGesture
	pendingMouseCmd tea.Cmd

	preview       bool
	status        string
	statusIsError bool
	lastLocalSave time.Time
}

type ModelOption func(*Model)

func WithLogger(logger logging.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithKeybindings(keys *Keybindings) ModelOption {
	return func(m *Model) {
		if keys != nil {
			m.keybindings = keys
		}
	}
}

func WithWatcher(watcher *store.Watcher) ModelOption {
	return func(m *Model) {
		m.watcher = watcher
	}
}

func NewModel(boardStore store.BoardStore, opts ...ModelOption) *Model {
	m := &Model{
		store:       boardStore,
		logger:      logging.Nop(),
		keybindings: DefaultKeybindings(),
		nextID:      1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run loads the board and drives the UI until quit.
func Run(boardStore store.BoardStore, logger logging.Logger, keys *Keybindings, watcher *store.Watcher) error {
	model := NewModel(boardStore, WithLogger(logger), WithKeybindings(keys), WithWatcher(watcher))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadNotesCmd()}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForStoreChange())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case notesReloadedMsg:
		if msg.err != nil {
			m.setStatusError("load failed: " + msg.err.Error())
			m.logger.Error("load notes", logging.F("err", msg.err))
			return m, nil
		}
		m.rebuildWindows(msg.notes)
		return m, nil

	case notesSavedMsg:
		if msg.err != nil {
			m.setStatusError("save failed: " + msg.err.Error())
			m.logger.Error("save notes", logging.F("err", msg.err))
		}
		return m, nil

	case storeChangedMsg:
		var cmds []tea.Cmd
		if m.gesture == nil && time.Since(m.lastLocalSave) > watchSuppress {
			m.logger.Debug("store changed externally, reloading")
			cmds = append(cmds, m.loadNotesCmd())
		}
		if m.watcher != nil {
			cmds = append(cmds, m.waitForStoreChange())
		}
		return m, tea.Batch(cmds...)

	case flashExpiredMsg:
		if w := m.windowByID(msg.id); w != nil && !w.flashing(time.Now()) {
			w.flashUntil = time.Time{}
		}
		return m, nil

	case tea.MouseMsg:
		m.pendingMouseCmd = nil
		handled := m.handleMouse(msg)
		cmd := m.pendingMouseCmd
		m.pendingMouseCmd = nil
		if handled {
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if command, ok := m.keybindings.Command(msg.String()); ok {
		switch command {
		case KeyCommandQuit:
			return tea.Sequence(m.saveCmd(), tea.Quit)
		case KeyCommandNewNote:
			return m.spawnNote()
		case KeyCommandCloseNote:
			if w := m.focusedWindow(); w != nil {
				return m.closeNoteWindow(w)
			}
			return nil
		case KeyCommandCopyNote:
			if w := m.focusedWindow(); w != nil {
				return m.copyNoteWithFlash(w)
			}
			return nil
		case KeyCommandFocusNext:
			return m.cycleFocus(1)
		case KeyCommandFocusPrev:
			return m.cycleFocus(-1)
		case KeyCommandTogglePreview:
			if m.focusedWindow() != nil {
				m.preview = !m.preview
			}
			return nil
		case KeyCommandBlur:
			m.preview = false
			m.blurFocus()
			return nil
		}
	}

	w := m.focusedWindow()
	if w == nil || m.preview {
		return nil
	}
	var cmd tea.Cmd
	w.body, cmd = w.body.Update(msg)
	if w.syncText() {
		// Every text change rewrites the whole store; no debouncing.
		return tea.Batch(cmd, m.saveCmd())
	}
	return cmd
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	now := time.Now()
	boardHeight := m.height - 1
	canvas := newTextCanvas(m.width, boardHeight)
	for _, w := range m.notes {
		canvas.OverlayBlock(w.render(now), w.note.Y, w.note.X)
	}
	if m.preview {
		if w := m.focusedWindow(); w != nil {
			m.overlayPreview(&canvas, w)
		}
	}
	return canvas.String() + "\n" + m.statusLine()
}

func (m *Model) overlayPreview(canvas *textCanvas, w *noteWindow) {
	width := clamp(m.width-8, 20, 64)
	body := renderMarkdown(w.note.Text, width-4)
	if body == "" {
		body = helpStyle.Render("(empty note)")
	}
	title := previewTitleStyle.Render("preview")
	block := previewBorderStyle.Width(width - 2).Render(title + "\n" + body)
	panelWidth := blockWidth(block)
	panelHeight := len(strings.Split(block, "\n"))
	row := (m.height - 1 - panelHeight) / 2
	col := (m.width - panelWidth) / 2
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	canvas.OverlayBlock(block, row, col)
}

func (m *Model) statusLine() string {
	hints := fmt.Sprintf("%s new  %s close  %s copy  %s preview  %s quit",
		m.keybindings.KeyFor(KeyCommandNewNote),
		m.keybindings.KeyFor(KeyCommandCloseNote),
		m.keybindings.KeyFor(KeyCommandCopyNote),
		m.keybindings.KeyFor(KeyCommandTogglePreview),
		m.keybindings.KeyFor(KeyCommandQuit),
	)
	left := statusStyle.Render(fmt.Sprintf("%d notes", len(m.notes))) + "  " + helpStyle.Render(hints)
	right := ""
	if m.status != "" {
		if m.statusIsError {
			right = statusErrorStyle.Render(m.status)
		} else {
			right = statusStyle.Render(m.status)
		}
	}
	gap := m.width - blockWidth(left) - blockWidth(right)
	if gap < 1 {
		return truncateToWidth(left, m.width)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) setStatusMessage(status string) {
	m.status = status
	m.statusIsError = false
}

func (m *Model) setStatusError(status string) {
	m.status = status
	m.statusIsError = true
}

func (m *Model) rebuildWindows(notes []types.Note) {
	focusIndex := -1
	for i, w := range m.notes {
		if w.focused() {
			focusIndex = i
		}
	}
	windows := make([]*noteWindow, 0, len(notes))
	for _, note := range notes {
		windows = append(windows, m.newWindow(note))
	}
	m.notes = windows
	if focusIndex >= 0 && focusIndex < len(m.notes) {
		_ = m.notes[focusIndex].focus()
	}
}

func (m *Model) newWindow(note types.Note) *noteWindow {
	w := newNoteWindow(m.nextID, note)
	m.nextID++
	return w
}

func (m *Model) windowByID(id int) *noteWindow {
	for _, w := range m.notes {
		if w.id == id {
			return w
		}
	}
	return nil
}

func (m *Model) focusedWindow() *noteWindow {
	for _, w := range m.notes {
		if w.focused() {
			return w
		}
	}
	return nil
}

func (m *Model) blurFocus() {
	for _, w := range m.notes {
		w.blur()
	}
}

func (m *Model) setFocus(target *noteWindow) tea.Cmd {
	var cmd tea.Cmd
	for _, w := range m.notes {
		if w == target {
			cmd = w.focus()
		} else {
			w.blur()
		}
	}
	return cmd
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	if len(m.notes) == 0 {
		return nil
	}
	current := -1
	for i, w := range m.notes {
		if w.focused() {
			current = i
			break
		}
	}
	next := (current + delta + len(m.notes)) % len(m.notes)
	if current < 0 {
		if delta > 0 {
			next = 0
		} else {
			next = len(m.notes) - 1
		}
	}
	m.preview = false
	return m.setFocus(m.notes[next])
}

// raise moves a note to the top of the z-order.
func (m *Model) raise(target *noteWindow) {
	for i, w := range m.notes {
		if w == target {
			m.notes = append(append(m.notes[:i], m.notes[i+1:]...), target)
			return
		}
	}
}

// spawnNote creates a blank note, offset from the current last note
// when there is one.
func (m *Model) spawnNote() tea.Cmd {
	x, y := defaultSpawnX, defaultSpawnY
	if len(m.notes) > 0 {
		previous := m.notes[len(m.notes)-1].note
		x = previous.X + newNoteOffsetX
		y = previous.Y + newNoteOffsetY
	}
	note := types.NewNote(x, y)
	m.clampToBoard(&note)
	w := m.newWindow(note)
	m.notes = append(m.notes, w)
	m.preview = false
	m.setStatusMessage("note added")
	return tea.Batch(m.setFocus(w), m.saveCmd())
}

func (m *Model) closeNoteWindow(target *noteWindow) tea.Cmd {
	for i, w := range m.notes {
		if w == target {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			break
		}
	}
	if m.gesture != nil && m.gesture.noteID == target.id {
		m.gesture = nil
	}
	m.preview = false
	m.setStatusMessage("note closed")
	return m.saveCmd()
}

func (m *Model) copyNoteWithFlash(w *noteWindow) tea.Cmd {
	if _, err := copyTextToClipboard(w.note.Text); err != nil {
		m.setStatusError("copy failed: " + err.Error())
		m.logger.Warn("clipboard copy", logging.F("err", err))
		return nil
	}
	m.setStatusMessage("copied to clipboard")
	w.startFlash(time.Now())
	id := w.id
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

func (m *Model) clampToBoard(note *types.Note) {
	note.Clamp()
	if m.width > 0 && note.X > m.width-types.MinNoteWidth {
		note.X = max(0, m.width-types.MinNoteWidth)
	}
	if m.height > 1 && note.Y > m.height-1-types.MinNoteHeight {
		note.Y = max(0, m.height-1-types.MinNoteHeight)
	}
}

func (m *Model) snapshot() []types.Note {
	notes := make([]types.Note, 0, len(m.notes))
	for _, w := range m.notes {
		notes = append(notes, w.note)
	}
	return notes
}

func (m *Model) saveCmd() tea.Cmd {
	notes := m.snapshot()
	m.lastLocalSave = time.Now()
	boardStore := m.store
	return func() tea.Msg {
		return notesSavedMsg{err: boardStore.Save(context.Background(), notes)}
	}
}

func (m *Model) loadNotesCmd() tea.Cmd {
	boardStore := m.store
	return func() tea.Msg {
		notes, err := boardStore.Load(context.Background())
		return notesReloadedMsg{notes: notes, err: err}
	}
}

func (m *Model) waitForStoreChange() tea.Cmd {
	watcher := m.watcher
	return func() tea.Msg {
		if _, ok := <-watcher.Events(); !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}
