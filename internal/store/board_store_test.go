package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stickies/internal/types"
)

func TestBoardStoreLoadMissingFile(t *testing.T) {
	s := NewFileBoardStore(filepath.Join(t.TempDir(), "sticky_notes.json"))
	notes, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected empty board, got %d notes", len(notes))
	}
}

func TestBoardStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFileBoardStore(filepath.Join(t.TempDir(), "sticky_notes.json"))

	want := []types.Note{
		{Text: "buy milk", X: 4, Y: 2, Width: 24, Height: 8},
		{Text: "multi\nline\nnote", X: 10, Y: 5, Width: 30, Height: 12},
		{Text: "", X: 0, Y: 0, Width: 12, Height: 4},
	}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d notes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("note %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBoardStoreLoadClampsGeometry(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sticky_notes.json")
	raw := `[{"text":"tiny","x":-5,"y":3,"width":1,"height":1}]`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	notes, err := NewFileBoardStore(path).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if notes[0].X != 0 || notes[0].Width != types.MinNoteWidth || notes[0].Height != types.MinNoteHeight {
		t.Fatalf("expected clamped geometry, got %+v", notes[0])
	}
}

func TestBoardStoreRemoveDeletesExactlyOne(t *testing.T) {
	ctx := context.Background()
	s := NewFileBoardStore(filepath.Join(t.TempDir(), "sticky_notes.json"))

	seed := []types.Note{
		{Text: "first", X: 0, Y: 0, Width: 24, Height: 8},
		{Text: "second", X: 2, Y: 1, Width: 24, Height: 8},
		{Text: "third", X: 4, Y: 2, Width: 24, Height: 8},
	}
	if err := s.Save(ctx, seed); err != nil {
		t.Fatalf("save: %v", err)
	}

	notes, err := s.Remove(ctx, 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].Text != "first" || notes[1].Text != "third" {
		t.Fatalf("wrong note removed: %+v", notes)
	}

	reloaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded) != 2 || reloaded[0].Text != "first" || reloaded[1].Text != "third" {
		t.Fatalf("persisted set wrong after remove: %+v", reloaded)
	}
}

func TestBoardStoreRemoveOutOfRange(t *testing.T) {
	ctx := context.Background()
	s := NewFileBoardStore(filepath.Join(t.TempDir(), "sticky_notes.json"))
	if err := s.Save(ctx, []types.Note{{Text: "only", Width: 24, Height: 8}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := s.Remove(ctx, 3); !errors.Is(err, ErrNoteOutOfRange) {
		t.Fatalf("expected ErrNoteOutOfRange, got %v", err)
	}
	if _, err := s.Remove(ctx, -1); !errors.Is(err, ErrNoteOutOfRange) {
		t.Fatalf("expected ErrNoteOutOfRange for negative index, got %v", err)
	}
}

func TestBoardStoreAppend(t *testing.T) {
	ctx := context.Background()
	s := NewFileBoardStore(filepath.Join(t.TempDir(), "sticky_notes.json"))

	notes, err := s.Append(ctx, types.Note{Text: "appended", X: 1, Y: 1, Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if notes[0].Width != types.MinNoteWidth {
		t.Fatalf("append should clamp geometry, got %+v", notes[0])
	}

	notes, err = s.Append(ctx, types.NewNote(5, 5))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(notes) != 2 || notes[1].X != 5 {
		t.Fatalf("unexpected board after second append: %+v", notes)
	}
}

func TestBoardStoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sticky_notes.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := NewFileBoardStore(path).Load(context.Background())
	if err == nil {
		t.Fatalf("expected error for malformed store")
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error should name the file, got %v", err)
	}
}
