package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aimcal/birthdaykeeper/internal/common"
	"github.com/aimcal/birthdaykeeper/internal/models"
	"github.com/aimcal/birthdaykeeper/internal/repositories/kv"
	"github.com/google/uuid"
)

// UserStore persists account records. Accounts are append-only: there is
// no update or delete path.
type UserStore struct {
	db *sql.DB
}

// List returns all stored users in insertion order.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	return loadCollection[models.User](ctx, kv.NewSQLiteRepository(s.db), usersKey)
}

// Create appends a new user, assigning a fresh id. Fails with
// common.ErrDuplicateEmail when the email is already registered.
func (s *UserStore) Create(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := withTx(ctx, s.db, func(ctx context.Context, repo *txRepo) error {
		users, err := loadCollection[models.User](ctx, repo.kv, usersKey)
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.Email == email {
				return common.ErrDuplicateEmail
			}
		}
		return saveCollection(ctx, repo.kv, usersKey, append(users, user))
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// FindByEmail returns the user registered under email, or
// common.ErrNotFound.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %q: %w", email, common.ErrNotFound)
}
