package store_test

import (
	"context"
	"errors"
	"testing"

	"planboard/src-server/model"
	"planboard/src-server/storage"
	"planboard/src-server/store"
)

func TestReset(t *testing.T) {
	ctx := context.Background()

	func() {
		mem := storage.NewMemory()
		events := store.NewEventStore(mem)
		notes := store.NewNoteStore(mem, clock)
		todos := store.NewTodoStore(mem, clock)
		for _, load := range []func(context.Context) (store.LoadSource, error){events.Load, notes.Load, todos.Load} {
			if _, err := load(ctx); err != nil {
				t.Fatal(err)
			}
		}
		created, err := events.Create(ctx, standup())
		if err != nil {
			t.Fatal(err)
		}
		_ = events.Select(created.ID)
		if _, err := notes.Create(ctx, model.Note{Content: "scratch"}); err != nil {
			t.Fatal(err)
		}
		if _, err := todos.Create(ctx, model.Todo{Text: "scratch"}); err != nil {
			t.Fatal(err)
		}

		if err := events.Reset(ctx); err != nil {
			t.Fatal(err)
		}
		if err := notes.Reset(ctx); err != nil {
			t.Fatal(err)
		}
		if err := todos.Reset(ctx); err != nil {
			t.Fatal(err)
		}

		for _, key := range []string{storage.EventsKey, storage.NotesKey, storage.TodosKey} {
			if _, ok, _ := mem.GetItem(ctx, key); ok {
				t.Errorf("expected %s to be removed", key)
			}
		}
		if _, ok := events.Selected(); ok || events.Len() != 0 {
			t.Errorf("expected no events and no selection, got %d events", events.Len())
		}
		if got, want := len(notes.All()), len(store.DemoNotes(clock())); got != want {
			t.Errorf("expected %d demo notes after reset, got %d", want, got)
		}
		if got, want := len(todos.All()), len(store.DemoTodos(clock())); got != want {
			t.Errorf("expected %d demo todos after reset, got %d", want, got)
		}

		reloaded := store.NewTodoStore(mem, clock)
		if source, err := reloaded.Load(ctx); err != nil || source != store.LoadedFromSeed {
			t.Errorf("expected a reset list to seed again on load, got %s (%v)", source, err)
		}
	}()

	func() {
		var counts []int
		s := store.NewEventStore(failingStorage{Memory: storage.NewMemory()})
		s.OnChange = func(count int) { counts = append(counts, count) }
		_, _ = s.Create(ctx, standup())
		err := s.Reset(ctx)
		if !errors.Is(err, store.ErrSaveFailed) || !errors.Is(err, errDiskFull) {
			t.Errorf("expected ErrSaveFailed wrapping the storage error, got %v", err)
		}
		if s.Len() != 0 || len(counts) != 2 || counts[1] != 0 {
			t.Errorf("a failed remove keeps the in-memory reset, got len %d counts %v", s.Len(), counts)
		}
	}()
}
