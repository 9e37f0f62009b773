package types

const (
	// Geometry floors and defaults, in terminal cells.
	MinNoteWidth      = 12
	MinNoteHeight     = 4
	DefaultNoteWidth  = 24
	DefaultNoteHeight = 8
)

// Note is one sticky note. Geometry is in terminal cells, origin at the
// top-left of the board. Notes have no identity beyond list membership;
// the persisted file is a flat JSON array of these records.
type Note struct {
	Text   string `json:"text"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// NewNote returns a blank note of the default size at the given origin.
func NewNote(x, y int) Note {
	note := Note{X: x, Y: y, Width: DefaultNoteWidth, Height: DefaultNoteHeight}
	note.Clamp()
	return note
}

// Clamp enforces the size floors and keeps the origin non-negative.
func (n *Note) Clamp() {
	if n == nil {
		return
	}
	if n.Width < MinNoteWidth {
		n.Width = MinNoteWidth
	}
	if n.Height < MinNoteHeight {
		n.Height = MinNoteHeight
	}
	if n.X < 0 {
		n.X = 0
	}
	if n.Y < 0 {
		n.Y = 0
	}
}

// Contains reports whether the board cell (x, y) falls inside the note.
func (n Note) Contains(x, y int) bool {
	return x >= n.X && x < n.X+n.Width && y >= n.Y && y < n.Y+n.Height
}
