// Package storage provides the synchronous key/value string store the
// notes, todos and (optionally) events are serialized into.
package storage

import (
	"context"
	"sync"
)

const (
	NotesKey  = "notes"
	TodosKey  = "todos"
	EventsKey = "events"

	// EmptyReadKey is never written. Reading it measures an empty read and is
	// left out of the read latency hooks.
	EmptyReadKey = "__planboard_empty_read__"
)

// Storage mirrors the browser localStorage contract: string keys, string
// values, a missing key is not an error.
type Storage interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Memory is a process-local Storage, used in tests and when no database
// path is configured.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

func (m *Memory) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *Memory) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
