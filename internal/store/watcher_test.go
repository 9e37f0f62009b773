package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"stickies/internal/types"
)

func TestWatcherReportsRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sticky_notes.json")
	s := NewFileBoardStore(path)
	if err := s.Save(context.Background(), nil); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	w, err := WatchNotesFile(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := s.Save(context.Background(), []types.Note{types.NewNote(1, 1)}); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a change event after rewrite")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sticky_notes.json")
	w, err := WatchNotesFile(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	other := NewFileBoardStore(filepath.Join(dir, "other.json"))
	if err := other.Save(context.Background(), []types.Note{types.NewNote(0, 0)}); err != nil {
		t.Fatalf("save sibling: %v", err)
	}

	select {
	case <-w.Events():
		t.Fatalf("unexpected event for sibling file")
	case <-time.After(200 * time.Millisecond):
	}
}
