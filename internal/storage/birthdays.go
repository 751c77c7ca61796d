package storage

import (
	"context"
	"database/sql"

	"github.com/aimcal/birthdaykeeper/internal/models"
	"github.com/aimcal/birthdaykeeper/internal/repositories/kv"
)

// BirthdayStore persists birthday entries for all users in one collection;
// reads filter by owner.
type BirthdayStore struct {
	db *sql.DB
}

// ListFor returns the birthdays owned by userID, in stored insertion
// order. Sorting is a presentation concern and lives in the views package.
func (s *BirthdayStore) ListFor(ctx context.Context, userID string) ([]models.Birthday, error) {
	all, err := loadCollection[models.Birthday](ctx, kv.NewSQLiteRepository(s.db), birthdaysKey)
	if err != nil {
		return nil, err
	}
	var mine []models.Birthday
	for _, b := range all {
		if b.UserID == userID {
			mine = append(mine, b)
		}
	}
	return mine, nil
}

// Create appends entry to the stored collection. The caller is responsible
// for having assigned entry.ID and validated the fields.
func (s *BirthdayStore) Create(ctx context.Context, entry models.Birthday) error {
	return withTx(ctx, s.db, func(ctx context.Context, repo *txRepo) error {
		all, err := loadCollection[models.Birthday](ctx, repo.kv, birthdaysKey)
		if err != nil {
			return err
		}
		return saveCollection(ctx, repo.kv, birthdaysKey, append(all, entry))
	})
}

// Delete removes the entry with the given id. Deleting an absent id is a
// no-op, not an error.
func (s *BirthdayStore) Delete(ctx context.Context, id string) error {
	return withTx(ctx, s.db, func(ctx context.Context, repo *txRepo) error {
		all, err := loadCollection[models.Birthday](ctx, repo.kv, birthdaysKey)
		if err != nil {
			return err
		}
		kept := all[:0]
		for _, b := range all {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		return saveCollection(ctx, repo.kv, birthdaysKey, kept)
	})
}
