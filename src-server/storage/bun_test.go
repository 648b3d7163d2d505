package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"planboard/src-server/model"
	"planboard/src-server/storage"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// a second connection would see a different in-memory database
	db.SetMaxOpenConns(1)
	bundb := bun.NewDB(db, sqlitedialect.New())
	t.Cleanup(func() { bundb.Close() })
	if err := model.CreateSchema(context.Background(), bundb); err != nil {
		t.Fatal(err)
	}
	return bundb
}

func TestBun(t *testing.T) {
	ctx := context.Background()
	s := storage.NewBun(newTestDB(t))
	var reads, writes int
	s.OnRead = func(time.Duration) { reads++ }
	s.OnWrite = func(time.Duration) { writes++ }

	// case: missing key is not an error
	func() {
		_, ok, err := s.GetItem(ctx, storage.NotesKey)
		if err != nil {
			t.Error(err)
		}
		if ok {
			t.Error("expected missing key")
		}
	}()

	// case: set then overwrite
	func() {
		if err := s.SetItem(ctx, storage.NotesKey, `[]`); err != nil {
			t.Error(err)
		}
		if err := s.SetItem(ctx, storage.NotesKey, `[{"id":"1"}]`); err != nil {
			t.Error(err)
		}
		v, ok, err := s.GetItem(ctx, storage.NotesKey)
		if err != nil || !ok {
			t.Error("expected key to exist", err)
		}
		if v != `[{"id":"1"}]` {
			t.Error("unexpected value", v)
		}
	}()

	// case: keys are independent
	func() {
		if err := s.SetItem(ctx, storage.TodosKey, `["todo"]`); err != nil {
			t.Error(err)
		}
		v, _, _ := s.GetItem(ctx, storage.NotesKey)
		if v != `[{"id":"1"}]` {
			t.Error("notes key was clobbered", v)
		}
	}()

	// case: remove
	func() {
		if err := s.RemoveItem(ctx, storage.TodosKey); err != nil {
			t.Error(err)
		}
		if _, ok, _ := s.GetItem(ctx, storage.TodosKey); ok {
			t.Error("todos key should be gone")
		}
	}()

	if reads == 0 || writes == 0 {
		t.Error("latency observers were not called", reads, writes)
	}

	// case: empty-read key stays out of the read latency
	func() {
		before := reads
		if _, ok, err := s.GetItem(ctx, storage.EmptyReadKey); err != nil || ok {
			t.Error("empty-read key should read as missing", ok, err)
		}
		if reads != before {
			t.Errorf("empty read reached OnRead: %d -> %d", before, reads)
		}
	}()
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemory()
	if _, ok, _ := m.GetItem(ctx, "k"); ok {
		t.Fatal("expected empty storage")
	}
	if err := m.SetItem(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	if v, ok, _ := m.GetItem(ctx, "k"); !ok || v != "v" {
		t.Fatalf("got %q %v", v, ok)
	}
	if err := m.RemoveItem(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := m.GetItem(ctx, "k"); ok {
		t.Fatal("expected key to be removed")
	}
}
