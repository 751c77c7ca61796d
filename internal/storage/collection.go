package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aimcal/birthdaykeeper/internal/common"
	"github.com/aimcal/birthdaykeeper/internal/dbx"
	"github.com/aimcal/birthdaykeeper/internal/repositories/kv"
)

// txRepo is a kv repository bound to one transaction.
type txRepo struct {
	kv kv.Repository
}

func newTxRepo(tx dbx.DBTX) *txRepo {
	return &txRepo{kv: kv.NewSQLiteRepository(tx)}
}

// loadCollection reads and decodes the whole collection under key. An
// absent key decodes as an empty collection; a present but undecodable
// value fails loudly with common.ErrCorruptStore.
func loadCollection[T any](ctx context.Context, repo kv.Repository, key string) ([]T, error) {
	data, err := repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptStore, key, err)
	}
	return items, nil
}

// saveCollection encodes items and replaces the whole collection under key.
func saveCollection[T any](ctx context.Context, repo kv.Repository, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return repo.Set(ctx, key, data)
}
