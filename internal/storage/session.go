package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aimcal/birthdaykeeper/internal/logging"
	"github.com/aimcal/birthdaykeeper/internal/models"
	"github.com/aimcal/birthdaykeeper/internal/repositories/kv"
)

// SessionStore persists the single "current user" pointer so a login
// survives restarts. At most one session exists; setting a new one fully
// replaces the previous value.
type SessionStore struct {
	db  *sql.DB
	log logging.Logger
}

// Set replaces the persisted session with user. A nil user clears it.
func (s *SessionStore) Set(ctx context.Context, user *models.User) error {
	repo := kv.NewSQLiteRepository(s.db)
	if user == nil {
		return repo.Delete(ctx, sessionKey)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return repo.Set(ctx, sessionKey, data)
}

// Get returns the persisted session user, or nil when no session exists.
// An unreadable session value is treated as "no session" rather than an
// error: the worst case is that the user logs in again.
func (s *SessionStore) Get(ctx context.Context) (*models.User, error) {
	data, err := kv.NewSQLiteRepository(s.db).Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Warn(ctx, "discarding unreadable session value", "error", err)
		return nil, nil
	}
	return &user, nil
}
