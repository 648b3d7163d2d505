package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"planboard/src-server/model"

	"github.com/uptrace/bun"
)

// Bun stores items in the local_storage table through bun.
type Bun struct {
	db bun.IDB

	// optional latency observers, fed to the metric collectors
	OnRead  func(time.Duration)
	OnWrite func(time.Duration)
}

func NewBun(db bun.IDB) *Bun {
	return &Bun{db: db}
}

func (b *Bun) GetItem(ctx context.Context, key string) (string, bool, error) {
	startTimer := time.Now()
	item := new(model.StorageItem)
	err := b.db.NewSelect().
		Model(item).
		Where("key = ?", key).
		Scan(ctx)
	if b.OnRead != nil && key != EmptyReadKey {
		b.OnRead(time.Since(startTimer))
	}
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("(*Bun).GetItem: %w", err)
	}
	return item.Value, true, nil
}

func (b *Bun) SetItem(ctx context.Context, key, value string) error {
	startTimer := time.Now()
	item := model.StorageItem{Key: key, Value: value}
	err := item.Upsert(ctx, b.db)
	if b.OnWrite != nil {
		b.OnWrite(time.Since(startTimer))
	}
	if err != nil {
		return fmt.Errorf("(*Bun).SetItem: %w", err)
	}
	return nil
}

func (b *Bun) RemoveItem(ctx context.Context, key string) error {
	if _, err := b.db.NewDelete().
		Model((*model.StorageItem)(nil)).
		Where("key = ?", key).
		Exec(ctx); err != nil {
		return fmt.Errorf("(*Bun).RemoveItem: %w", err)
	}
	return nil
}
