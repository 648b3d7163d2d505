package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"testing"
	"time"

	"planboard/src-server/model"
	"planboard/src-server/storage"
	"planboard/src-server/store"
)

var clock = func() time.Time { return time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC) }

func TestNoteStoreLoad(t *testing.T) {
	ctx := context.Background()

	func() {
		mem := storage.NewMemory()
		s := store.NewNoteStore(mem, clock)
		source, err := s.Load(ctx)
		if err != nil || source != store.LoadedFromSeed {
			t.Fatalf("expected seed, got %s (%v)", source, err)
		}
		if len(s.All()) != 6 {
			t.Errorf("expected 6 demo notes, got %d", len(s.All()))
		}
		if _, ok, _ := mem.GetItem(ctx, storage.NotesKey); !ok {
			t.Error("the demo notes should be saved")
		}
	}()

	func() {
		mem := storage.NewMemory()
		_ = mem.SetItem(ctx, storage.NotesKey, "[oops")
		s := store.NewNoteStore(mem, clock)
		source, err := s.Load(ctx)
		if err == nil || source != store.LoadedFromSeed || len(s.All()) != 6 {
			t.Errorf("malformed notes should fall back to the demo notes, got %s (%v)", source, err)
		}
	}()

	func() {
		mem := storage.NewMemory()
		_ = mem.SetItem(ctx, storage.NotesKey, "[]")
		s := store.NewNoteStore(mem, clock)
		source, err := s.Load(ctx)
		if err != nil || source != store.LoadedFromStorage || len(s.All()) != 0 {
			t.Errorf("an empty saved board stays empty, got %s %d (%v)", source, len(s.All()), err)
		}
	}()
}

func TestNoteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()

	s := store.NewNoteStore(mem, clock)
	_, _ = s.Load(ctx)
	created, err := s.Create(ctx, model.Note{Title: "Groceries", Content: "milk\neggs", Labels: []string{"Home"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.TogglePin(ctx, created.ID); err != nil {
		t.Fatal(err)
	}

	reloaded := store.NewNoteStore(mem, clock)
	if source, err := reloaded.Load(ctx); err != nil || source != store.LoadedFromStorage {
		t.Fatalf("expected a load from storage, got %s (%v)", source, err)
	}
	if !reflect.DeepEqual(s.All(), reloaded.All()) {
		t.Errorf("notes changed across a save and load:\n%+v\n%+v", s.All(), reloaded.All())
	}

	raw, _, _ := mem.GetItem(ctx, storage.NotesKey)
	var parsed []model.Note
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		t.Fatal(err)
	}
	again, _ := json.Marshal(parsed)
	if string(again) != raw {
		t.Errorf("storage format is not stable:\n%s\n%s", raw, again)
	}
}

func TestNoteStore(t *testing.T) {
	ctx := context.Background()

	func() {
		s := store.NewNoteStore(nil, clock)
		if _, err := s.Create(ctx, model.Note{Title: "Only a title", Content: "  "}); !errors.Is(err, model.ErrEmptyContent) {
			t.Errorf("expected ErrEmptyContent, got %v", err)
		}
		n, err := s.Create(ctx, model.Note{Content: " hello "})
		if err != nil {
			t.Fatal(err)
		}
		if n.Content != "hello" || n.Color != model.DefaultNoteColor || n.CreatedAt != "2024-05-01T08:00:00Z" {
			t.Errorf("unexpected defaults: %+v", n)
		}
		second, _ := s.Create(ctx, model.Note{Content: "newer"})
		if all := s.All(); all[0].ID != second.ID {
			t.Error("new notes go to the top")
		}
	}()

	func() {
		s := store.NewNoteStore(nil, clock)
		n, _ := s.Create(ctx, model.Note{Content: "labels"})
		for _, label := range []string{"a", "b", "c", "d", "e"} {
			if _, err := s.AddLabel(ctx, n.ID, label); err != nil {
				t.Fatalf("adding %s: %v", label, err)
			}
		}
		if _, err := s.AddLabel(ctx, n.ID, "a"); err != nil {
			t.Errorf("a duplicate label is ignored, got %v", err)
		}
		if _, err := s.AddLabel(ctx, n.ID, "f"); !errors.Is(err, model.ErrTooManyLabels) {
			t.Errorf("expected ErrTooManyLabels, got %v", err)
		}
		got, _ := s.Get(n.ID)
		if len(got.Labels) != model.MaxNoteLabels {
			t.Errorf("expected %d labels, got %v", model.MaxNoteLabels, got.Labels)
		}
		got, _ = s.RemoveLabel(ctx, n.ID, "c")
		if slices.Contains(got.Labels, "c") || len(got.Labels) != 4 {
			t.Errorf("expected c to be removed, got %v", got.Labels)
		}
		if _, err := s.AddLabel(ctx, n.ID, "  "); !errors.Is(err, model.ErrEmptyLabel) {
			t.Errorf("expected ErrEmptyLabel, got %v", err)
		}
	}()

	func() {
		s := store.NewNoteStore(nil, clock)
		_, _ = s.Load(ctx)

		board := s.List(store.NoteFilter{})
		if len(board.Pinned) != 3 || len(board.Others) != 3 {
			t.Errorf("expected 3 pinned and 3 other demo notes, got %d/%d", len(board.Pinned), len(board.Others))
		}

		board = s.List(store.NoteFilter{Search: "SLEEP"})
		if len(board.Pinned)+len(board.Others) != 2 {
			t.Errorf("search should be case-insensitive over title and content, got %+v", board)
		}

		board = s.List(store.NoteFilter{Label: "Health"})
		if len(board.Others) != 1 || board.Others[0].ID != "5" {
			t.Errorf("expected only note 5 for the Health label, got %+v", board)
		}

		if labels := s.Labels(); !reflect.DeepEqual(labels, []string{"Health", "Notes"}) {
			t.Errorf("expected [Health Notes], got %v", labels)
		}
		if len(s.Pinned()) != 3 {
			t.Errorf("expected 3 pinned notes, got %d", len(s.Pinned()))
		}
	}()

	func() {
		s := store.NewNoteStore(nil, clock)
		n, _ := s.Create(ctx, model.Note{Content: "before"})
		n.Content = "after"
		n.CreatedAt = "tampered"
		updated, err := s.Update(ctx, n)
		if err != nil {
			t.Fatal(err)
		}
		if updated.Content != "after" || updated.CreatedAt != "2024-05-01T08:00:00Z" {
			t.Errorf("update should replace the content and keep createdAt, got %+v", updated)
		}

		if _, err := s.Update(ctx, model.Note{ID: "missing", Content: "x"}); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := s.TogglePin(ctx, "missing"); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := s.Delete(ctx, n.ID); err != nil {
			t.Fatal(err)
		}
		if err := s.Delete(ctx, n.ID); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("second delete: expected ErrNotFound, got %v", err)
		}
	}()

	func() {
		s := store.NewNoteStore(failingStorage{Memory: storage.NewMemory()}, clock)
		n, err := s.Create(ctx, model.Note{Content: "unsaved"})
		if !errors.Is(err, store.ErrSaveFailed) {
			t.Errorf("expected ErrSaveFailed, got %v", err)
		}
		if _, getErr := s.Get(n.ID); getErr != nil {
			t.Error("a failed save keeps the note in memory")
		}
	}()
}
