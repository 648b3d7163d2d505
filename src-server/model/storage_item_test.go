package model_test

import (
	"context"
	"database/sql"
	"testing"

	"planboard/src-server/model"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func TestStorageItem(t *testing.T) {
	// init db
	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	bundb := bun.NewDB(db, sqlitedialect.New())
	defer bundb.Close()

	// init tables, twice to make sure it's idempotent
	for range 2 {
		if err := model.CreateSchema(context.Background(), bundb); err != nil {
			t.Fatal(err)
		}
	}

	item := model.StorageItem{Key: "notes", Value: "[]"}
	if err := item.Upsert(context.Background(), bundb); err != nil {
		t.Fatal(err)
	}

	// case: upsert overwrites the value of an existing key
	func() {
		item.Value = `[{"id":"1"}]`
		if err := item.Upsert(context.Background(), bundb); err != nil {
			t.Error(err)
		}
		got := new(model.StorageItem)
		if err := bundb.NewSelect().
			Model(got).
			Where("key = ?", "notes").
			Scan(context.Background()); err != nil {
			t.Error(err)
		}
		if got.Value != item.Value {
			t.Errorf("expected %s, got %s", item.Value, got.Value)
		}
		count, err := bundb.NewSelect().Model((*model.StorageItem)(nil)).Count(context.Background())
		if err != nil || count != 1 {
			t.Errorf("expected 1 row, got %d (%v)", count, err)
		}
	}()

	// case: blank key and nil db are rejected
	func() {
		if err := (&model.StorageItem{Value: "x"}).Upsert(context.Background(), bundb); err == nil {
			t.Error("blank key should be rejected")
		}
		if err := item.Upsert(context.Background(), nil); err == nil {
			t.Error("nil db should be rejected")
		}
	}()
}
