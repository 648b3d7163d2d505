package model

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// StorageItem is one key of the local-storage style key/value table. The
// value is an opaque string, in practice a JSON array.
type StorageItem struct {
	bun.BaseModel `bun:"table:local_storage"`

	Key       string `bun:"key,pk"`        // required
	Value     string `bun:"value,notnull"` // required
	UpdatedAt int64  `bun:"updated_at,notnull"`
}

func (s *StorageItem) Upsert(ctx context.Context, db bun.IDB) error {
	if db == nil {
		return fmt.Errorf("(*StorageItem).Upsert: db is nil")
	}
	if s.Key == "" {
		return fmt.Errorf("(*StorageItem).Upsert: key is blank")
	}
	s.UpdatedAt = time.Now().UTC().Unix()

	if _, err := db.NewInsert().
		Model(s).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("(*StorageItem).Upsert: %w", err)
	}
	return nil
}
