package types

import "testing"

func TestClampEnforcesFloors(t *testing.T) {
	note := Note{X: -3, Y: -1, Width: 2, Height: 1}
	note.Clamp()
	if note.Width != MinNoteWidth || note.Height != MinNoteHeight {
		t.Fatalf("expected %dx%d, got %dx%d", MinNoteWidth, MinNoteHeight, note.Width, note.Height)
	}
	if note.X != 0 || note.Y != 0 {
		t.Fatalf("expected origin clamped to 0,0, got %d,%d", note.X, note.Y)
	}
}

func TestClampKeepsValidGeometry(t *testing.T) {
	note := Note{X: 5, Y: 7, Width: 30, Height: 10}
	note.Clamp()
	if note.X != 5 || note.Y != 7 || note.Width != 30 || note.Height != 10 {
		t.Fatalf("valid geometry changed: %+v", note)
	}
}

func TestContains(t *testing.T) {
	note := Note{X: 10, Y: 5, Width: 20, Height: 8}
	cases := []struct {
		x, y int
		want bool
	}{
		{10, 5, true},
		{29, 12, true},
		{30, 12, false},
		{29, 13, false},
		{9, 5, false},
		{15, 4, false},
	}
	for _, tc := range cases {
		if got := note.Contains(tc.x, tc.y); got != tc.want {
			t.Fatalf("Contains(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}
