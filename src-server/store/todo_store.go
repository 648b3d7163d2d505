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

type TodoStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// TodoStore keeps todos newest first.
type TodoStore struct {
	mu    sync.Mutex
	todos []model.Todo

	storage  storage.Storage
	now      func() time.Time
	seed     func(now time.Time) []model.Todo
	OnChange Observer
}

func NewTodoStore(st storage.Storage, now func() time.Time) *TodoStore {
	if now == nil {
		now = time.Now
	}
	return &TodoStore{storage: st, now: now, seed: DemoTodos, todos: []model.Todo{}}
}

// UseSeed replaces the demo todos a fresh list starts with. It must be
// called before Load.
func (s *TodoStore) UseSeed(todos []model.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed = func(now time.Time) []model.Todo {
		seeded := slices.Clone(todos)
		for i := range seeded {
			if seeded[i].CreatedAt == "" {
				seeded[i].CreatedAt = now.UTC().Format(time.RFC3339)
			}
		}
		return seeded
	}
}

// Load reads the saved list. An absent key seeds the demo todos; malformed
// data is dropped and the list starts empty.
func (s *TodoStore) Load(ctx context.Context) (LoadSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage == nil {
		s.todos = s.seed(s.now())
		s.notify()
		return LoadedFromSeed, nil
	}

	var todos []model.Todo
	found, err := load(ctx, s.storage, storage.TodosKey, &todos)
	switch {
	case err != nil:
		slog.Warn("can't read stored todos, starting empty", "error", err)
		s.todos = []model.Todo{}
		s.notify()
		if saveErr := s.save(ctx); saveErr != nil {
			slog.Warn("can't save todos", "error", saveErr)
		}
		return LoadedEmpty, fmt.Errorf("(*TodoStore).Load: %w", err)
	case !found:
		s.todos = s.seed(s.now())
		s.notify()
		if err := s.save(ctx); err != nil {
			slog.Warn("can't save demo todos", "error", err)
		}
		return LoadedFromSeed, nil
	}

	s.todos = make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		t.Normalize()
		s.todos = append(s.todos, t)
	}
	s.notify()
	return LoadedFromStorage, nil
}

func (s *TodoStore) All() []model.Todo {
	return s.List(model.TodoFilter{})
}

func (s *TodoStore) List(filter model.TodoFilter) []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Todo, 0, len(s.todos))
	for i := range s.todos {
		if filter.Match(&s.todos[i]) {
			out = append(out, s.todos[i])
		}
	}
	return out
}

func (s *TodoStore) Stats() TodoStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := TodoStats{Total: len(s.todos)}
	for _, t := range s.todos {
		if t.Completed {
			stats.Completed++
		} else {
			stats.Active++
		}
	}
	return stats
}

// Create puts a new, uncompleted todo at the top of the list.
func (s *TodoStore) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	todo.Normalize()
	if err := todo.Validate(); err != nil {
		return model.Todo{}, fmt.Errorf("(*TodoStore).Create: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todo.ID = uuid.NewString()
	todo.Completed = false
	todo.CreatedAt = s.now().UTC().Format(time.RFC3339)
	s.todos = slices.Insert(s.todos, 0, todo)
	s.notify()
	if err := s.save(ctx); err != nil {
		return todo, fmt.Errorf("(*TodoStore).Create: %w", err)
	}
	return todo, nil
}

// Update replaces text, category, priority and completion; the creation
// time is kept.
func (s *TodoStore) Update(ctx context.Context, todo model.Todo) (model.Todo, error) {
	todo.Normalize()
	if err := todo.Validate(); err != nil {
		return model.Todo{}, fmt.Errorf("(*TodoStore).Update: %w", err)
	}
	return s.mutate(ctx, "(*TodoStore).Update", todo.ID, func(t *model.Todo) {
		createdAt := t.CreatedAt
		*t = todo
		t.CreatedAt = createdAt
	})
}

func (s *TodoStore) Toggle(ctx context.Context, id string) (model.Todo, error) {
	return s.mutate(ctx, "(*TodoStore).Toggle", id, func(t *model.Todo) {
		t.Completed = !t.Completed
	})
}

func (s *TodoStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("(*TodoStore).Delete: todo %q: %w", id, model.ErrNotFound)
	}
	s.todos = slices.Delete(s.todos, i, i+1)
	s.notify()
	if err := s.save(ctx); err != nil {
		return fmt.Errorf("(*TodoStore).Delete: %w", err)
	}
	return nil
}

// Reset puts the seed back in memory and removes the stored key, so the
// next start seeds again.
func (s *TodoStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = s.seed(s.now())
	s.notify()
	if err := remove(ctx, s.storage, storage.TodosKey); err != nil {
		return fmt.Errorf("(*TodoStore).Reset: %w", err)
	}
	return nil
}

func (s *TodoStore) mutate(ctx context.Context, where, id string, fn func(*model.Todo)) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return model.Todo{}, fmt.Errorf("%s: todo %q: %w", where, id, model.ErrNotFound)
	}
	fn(&s.todos[i])
	s.todos[i].ID = id
	if err := s.save(ctx); err != nil {
		return s.todos[i], fmt.Errorf("%s: %w", where, err)
	}
	return s.todos[i], nil
}

func (s *TodoStore) index(id string) int {
	return slices.IndexFunc(s.todos, func(t model.Todo) bool { return t.ID == id })
}

func (s *TodoStore) save(ctx context.Context) error {
	return save(ctx, s.storage, storage.TodosKey, s.todos)
}

func (s *TodoStore) notify() {
	if s.OnChange != nil {
		s.OnChange(len(s.todos))
	}
}
