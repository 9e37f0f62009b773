package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"stickies/internal/types"
)

// DefaultNotesFile is the store location when no override is configured:
// a flat JSON array next to wherever the process was started.
const DefaultNotesFile = "sticky_notes.json"

var ErrNoteOutOfRange = errors.New("note index out of range")

// BoardStore persists the full set of notes. Every mutation rewrites the
// whole file from the in-memory list; there is no incremental update.
type BoardStore interface {
	Load(ctx context.Context) ([]types.Note, error)
	Save(ctx context.Context, notes []types.Note) error
	Append(ctx context.Context, note types.Note) ([]types.Note, error)
	Remove(ctx context.Context, index int) ([]types.Note, error)
}

type FileBoardStore struct {
	path string
	mu   sync.Mutex
}

func NewFileBoardStore(path string) *FileBoardStore {
	if path == "" {
		path = DefaultNotesFile
	}
	return &FileBoardStore{path: path}
}

func (s *FileBoardStore) Path() string {
	return s.path
}

// Load returns every persisted note. A missing file is an empty board.
func (s *FileBoardStore) Load(ctx context.Context) ([]types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileBoardStore) load() ([]types.Note, error) {
	var notes []types.Note
	if err := readJSON(s.path, &notes); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []types.Note{}, nil
		}
		return nil, fmt.Errorf("read notes file %s: %w", s.path, err)
	}
	for i := range notes {
		notes[i].Clamp()
	}
	return notes, nil
}

// Save rewrites the store from the given list.
func (s *FileBoardStore) Save(ctx context.Context, notes []types.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(notes)
}

func (s *FileBoardStore) save(notes []types.Note) error {
	if notes == nil {
		notes = []types.Note{}
	}
	if err := writeJSONAtomic(s.path, notes); err != nil {
		return fmt.Errorf("write notes file %s: %w", s.path, err)
	}
	return nil
}

// Append adds one note to the end of the persisted list and returns the
// resulting board.
func (s *FileBoardStore) Append(ctx context.Context, note types.Note) ([]types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.load()
	if err != nil {
		return nil, err
	}
	note.Clamp()
	notes = append(notes, note)
	if err := s.save(notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Remove deletes the note at index and returns the resulting board.
func (s *FileBoardStore) Remove(ctx context.Context, index int) ([]types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.load()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(notes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoteOutOfRange, index, len(notes))
	}
	notes = append(notes[:index], notes[index+1:]...)
	if err := s.save(notes); err != nil {
		return nil, err
	}
	return notes, nil
}
