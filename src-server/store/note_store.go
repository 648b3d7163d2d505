package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"planboard/src-server/model"
	"planboard/src-server/storage"

	"github.com/google/uuid"
)

type NoteFilter struct {
	Search string `json:"search"`
	Label  string `json:"label"`
}

// NoteBoard is the filtered board, split the way it is drawn.
type NoteBoard struct {
	Pinned []model.Note `json:"pinned"`
	Others []model.Note `json:"others"`
}

// NoteStore keeps notes newest first.
type NoteStore struct {
	mu    sync.Mutex
	notes []model.Note

	storage  storage.Storage
	now      func() time.Time
	seed     func(now time.Time) []model.Note
	OnChange Observer
}

// NewNoteStore starts empty until Load is called. A nil now uses time.Now.
func NewNoteStore(st storage.Storage, now func() time.Time) *NoteStore {
	if now == nil {
		now = time.Now
	}
	return &NoteStore{storage: st, now: now, seed: DemoNotes, notes: []model.Note{}}
}

// UseSeed replaces the demo notes a fresh board starts with. It must be
// called before Load.
func (s *NoteStore) UseSeed(notes []model.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed = func(now time.Time) []model.Note {
		seeded := make([]model.Note, 0, len(notes))
		for _, n := range notes {
			n = n.Clone()
			if n.CreatedAt == "" {
				n.CreatedAt = now.UTC().Format(time.RFC3339)
			}
			seeded = append(seeded, n)
		}
		return seeded
	}
}

// Load reads the saved board. An absent key and malformed data both fall
// back to the demo notes, which are then saved.
func (s *NoteStore) Load(ctx context.Context) (LoadSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage == nil {
		s.notes = s.seed(s.now())
		s.notify()
		return LoadedFromSeed, nil
	}

	var notes []model.Note
	found, err := load(ctx, s.storage, storage.NotesKey, &notes)
	if err == nil && found {
		s.notes = make([]model.Note, 0, len(notes))
		for _, n := range notes {
			n.Normalize()
			s.notes = append(s.notes, n)
		}
		s.notify()
		return LoadedFromStorage, nil
	}
	if err != nil {
		slog.Warn("can't read stored notes, using demo notes", "error", err)
	}

	s.notes = s.seed(s.now())
	s.notify()
	if saveErr := s.save(ctx); saveErr != nil {
		slog.Warn("can't save demo notes", "error", saveErr)
	}
	if err != nil {
		return LoadedFromSeed, fmt.Errorf("(*NoteStore).Load: %w", err)
	}
	return LoadedFromSeed, nil
}

func (s *NoteStore) All() []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneWhere(func(*model.Note) bool { return true })
}

// Pinned is what the dashboard shows.
func (s *NoteStore) Pinned() []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneWhere(func(n *model.Note) bool { return n.IsPinned })
}

func (s *NoteStore) Get(id string) (model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Note{}, fmt.Errorf("(*NoteStore).Get: note %q: %w", id, model.ErrNotFound)
	}
	return s.notes[i].Clone(), nil
}

// List applies the search and label filter and splits pinned notes from
// the rest, keeping the stored order in each group.
func (s *NoteStore) List(filter NoteFilter) NoteBoard {
	s.mu.Lock()
	defer s.mu.Unlock()
	board := NoteBoard{Pinned: []model.Note{}, Others: []model.Note{}}
	for i := range s.notes {
		n := &s.notes[i]
		if !n.Matches(filter.Search, filter.Label) {
			continue
		}
		if n.IsPinned {
			board.Pinned = append(board.Pinned, n.Clone())
		} else {
			board.Others = append(board.Others, n.Clone())
		}
	}
	return board
}

// Labels lists every label in use, sorted.
func (s *NoteStore) Labels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	labels := make([]string, 0)
	for _, n := range s.notes {
		labels = append(labels, n.Labels...)
	}
	slices.Sort(labels)
	return slices.Compact(labels)
}

// Create puts a new note at the top of the board. Id and creation time are
// assigned here.
func (s *NoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	note.Normalize()
	if err := note.Validate(); err != nil {
		return model.Note{}, fmt.Errorf("(*NoteStore).Create: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note.ID = uuid.NewString()
	note.CreatedAt = s.now().UTC().Format(time.RFC3339)
	note = note.Clone()
	s.notes = slices.Insert(s.notes, 0, note)
	s.notify()
	if err := s.save(ctx); err != nil {
		return note.Clone(), fmt.Errorf("(*NoteStore).Create: %w", err)
	}
	return note.Clone(), nil
}

// Update replaces the note in place. The creation time is kept.
func (s *NoteStore) Update(ctx context.Context, note model.Note) (model.Note, error) {
	note.Normalize()
	if err := note.Validate(); err != nil {
		return model.Note{}, fmt.Errorf("(*NoteStore).Update: %w", err)
	}
	return s.mutate(ctx, "(*NoteStore).Update", note.ID, func(n *model.Note) error {
		createdAt := n.CreatedAt
		*n = note.Clone()
		n.CreatedAt = createdAt
		return nil
	})
}

func (s *NoteStore) TogglePin(ctx context.Context, id string) (model.Note, error) {
	return s.mutate(ctx, "(*NoteStore).TogglePin", id, func(n *model.Note) error {
		n.IsPinned = !n.IsPinned
		return nil
	})
}

func (s *NoteStore) AddLabel(ctx context.Context, id, label string) (model.Note, error) {
	return s.mutate(ctx, "(*NoteStore).AddLabel", id, func(n *model.Note) error {
		return n.AddLabel(label)
	})
}

func (s *NoteStore) RemoveLabel(ctx context.Context, id, label string) (model.Note, error) {
	return s.mutate(ctx, "(*NoteStore).RemoveLabel", id, func(n *model.Note) error {
		n.RemoveLabel(label)
		return nil
	})
}

func (s *NoteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("(*NoteStore).Delete: note %q: %w", id, model.ErrNotFound)
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	s.notify()
	if err := s.save(ctx); err != nil {
		return fmt.Errorf("(*NoteStore).Delete: %w", err)
	}
	return nil
}

// Reset puts the seed back in memory and removes the stored key, so the
// next start seeds again.
func (s *NoteStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = s.seed(s.now())
	s.notify()
	if err := remove(ctx, s.storage, storage.NotesKey); err != nil {
		return fmt.Errorf("(*NoteStore).Reset: %w", err)
	}
	return nil
}

// mutate applies fn to a copy of the note and stores it only when fn
// succeeds.
func (s *NoteStore) mutate(ctx context.Context, where, id string, fn func(*model.Note) error) (model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return model.Note{}, fmt.Errorf("%s: note %q: %w", where, id, model.ErrNotFound)
	}
	n := s.notes[i].Clone()
	if err := fn(&n); err != nil {
		return model.Note{}, fmt.Errorf("%s: %w", where, err)
	}
	n.ID = id
	s.notes[i] = n
	if err := s.save(ctx); err != nil {
		return n.Clone(), fmt.Errorf("%s: %w", where, err)
	}
	return n.Clone(), nil
}

func (s *NoteStore) cloneWhere(keep func(*model.Note) bool) []model.Note {
	out := make([]model.Note, 0, len(s.notes))
	for i := range s.notes {
		if keep(&s.notes[i]) {
			out = append(out, s.notes[i].Clone())
		}
	}
	return out
}

func (s *NoteStore) index(id string) int {
	return slices.IndexFunc(s.notes, func(n model.Note) bool { return n.ID == id })
}

func (s *NoteStore) save(ctx context.Context) error {
	return save(ctx, s.storage, storage.NotesKey, s.notes)
}

func (s *NoteStore) notify() {
	if s.OnChange != nil {
		s.OnChange(len(s.notes))
	}
}
