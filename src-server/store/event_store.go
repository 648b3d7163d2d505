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

// EventStore is the ordered event collection plus the current selection.
// Events are kept in insertion order.
type EventStore struct {
	mu       sync.Mutex
	events   []model.Event
	selected string

	storage  storage.Storage
	OnChange Observer
}

// NewEventStore starts empty. A nil storage keeps events in memory only.
func NewEventStore(st storage.Storage) *EventStore {
	return &EventStore{storage: st}
}

// Load reads the persisted events. Events have no demo data, so an absent
// or malformed key leaves the store empty.
func (s *EventStore) Load(ctx context.Context) (LoadSource, error) {
	if s.storage == nil {
		return LoadedEmpty, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []model.Event
	found, err := load(ctx, s.storage, storage.EventsKey, &events)
	switch {
	case err != nil:
		slog.Warn("discarding stored events", "error", err)
		s.events = nil
		return LoadedEmpty, fmt.Errorf("(*EventStore).Load: %w", err)
	case !found:
		return LoadedEmpty, nil
	}

	s.events = make([]model.Event, 0, len(events))
	for _, e := range events {
		e.Normalize()
		if err := e.Validate(); err != nil || e.ID == "" {
			slog.Warn("skipping stored event", "id", e.ID, "error", err)
			continue
		}
		s.events = append(s.events, e)
	}
	s.notify()
	return LoadedFromStorage, nil
}

func (s *EventStore) List() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, len(s.events))
	for i, e := range s.events {
		out[i] = e.Clone()
	}
	return out
}

func (s *EventStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func (s *EventStore) Get(id string) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Event{}, fmt.Errorf("(*EventStore).Get: event %q: %w", id, model.ErrNotFound)
	}
	return s.events[i].Clone(), nil
}

// Between returns the events starting in [from, to), ordered by start.
func (s *EventStore) Between(from, to time.Time) []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, 0)
	for _, e := range s.events {
		if !e.Start.Before(from) && e.Start.Before(to) {
			out = append(out, e.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b model.Event) int {
		return a.Start.Compare(b.Start)
	})
	return out
}

// Create assigns a fresh id and appends the event. On a save failure the
// event is still created and returned together with the error.
func (s *EventStore) Create(ctx context.Context, input model.EventInput) (model.Event, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return model.Event{}, fmt.Errorf("(*EventStore).Create: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := model.Event{ID: uuid.NewString(), EventInput: input}
	s.events = append(s.events, e)
	s.notify()
	if err := s.save(ctx); err != nil {
		return e.Clone(), fmt.Errorf("(*EventStore).Create: %w", err)
	}
	return e.Clone(), nil
}

// Update replaces the event with the same id in place.
func (s *EventStore) Update(ctx context.Context, e model.Event) error {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return fmt.Errorf("(*EventStore).Update: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(e.ID)
	if i < 0 {
		return fmt.Errorf("(*EventStore).Update: event %q: %w", e.ID, model.ErrNotFound)
	}
	s.events[i] = e.Clone()
	if err := s.save(ctx); err != nil {
		return fmt.Errorf("(*EventStore).Update: %w", err)
	}
	return nil
}

// Delete removes the event and clears the selection if it pointed at it.
func (s *EventStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("(*EventStore).Delete: event %q: %w", id, model.ErrNotFound)
	}
	s.events = slices.Delete(s.events, i, i+1)
	if s.selected == id {
		s.selected = ""
	}
	s.notify()
	if err := s.save(ctx); err != nil {
		return fmt.Errorf("(*EventStore).Delete: %w", err)
	}
	return nil
}

// Reset drops every event and the stored key.
func (s *EventStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = nil
	s.selected = ""
	s.notify()
	if err := remove(ctx, s.storage, storage.EventsKey); err != nil {
		return fmt.Errorf("(*EventStore).Reset: %w", err)
	}
	return nil
}

// Select marks the event being edited; an empty id clears the selection.
func (s *EventStore) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" && s.index(id) < 0 {
		return fmt.Errorf("(*EventStore).Select: event %q: %w", id, model.ErrNotFound)
	}
	s.selected = id
	return nil
}

func (s *EventStore) Selected() (model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return model.Event{}, false
	}
	i := s.index(s.selected)
	if i < 0 {
		return model.Event{}, false
	}
	return s.events[i].Clone(), true
}

func (s *EventStore) index(id string) int {
	return slices.IndexFunc(s.events, func(e model.Event) bool { return e.ID == id })
}

func (s *EventStore) save(ctx context.Context) error {
	if s.events == nil {
		return save(ctx, s.storage, storage.EventsKey, []model.Event{})
	}
	return save(ctx, s.storage, storage.EventsKey, s.events)
}

func (s *EventStore) notify() {
	if s.OnChange != nil {
		s.OnChange(len(s.events))
	}
}
