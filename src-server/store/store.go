// Package store holds the in-memory collections behind the calendar, the
// notes board and the todo list. Every mutation is serialized and, when a
// storage is attached, followed by a save of the whole collection.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"planboard/src-server/storage"
)

// ErrSaveFailed wraps the storage error of a mutation whose in-memory
// change was kept but could not be written out.
var ErrSaveFailed = errors.New("can't save to storage")

// LoadSource reports where a collection came from on start.
type LoadSource string

const (
	LoadedFromStorage LoadSource = "storage"
	LoadedFromSeed    LoadSource = "seed"
	LoadedEmpty       LoadSource = "empty"
)

// Observer gets the collection size after every mutation.
type Observer func(count int)

func save(ctx context.Context, st storage.Storage, key string, v any) error {
	if st == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	if err := st.SetItem(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

func remove(ctx context.Context, st storage.Storage, key string) error {
	if st == nil {
		return nil
	}
	if err := st.RemoveItem(ctx, key); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// load reads key into dst. found is false when the key is absent; a parse
// failure is returned as an error with dst untouched.
func load(ctx context.Context, st storage.Storage, key string, dst any) (found bool, err error) {
	raw, ok, err := st.GetItem(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, fmt.Errorf("malformed %q: %w", key, err)
	}
	return true, nil
}
