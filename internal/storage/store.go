// Package storage is the persistence layer: three logical tables (users,
// birthdays, session) kept as whole serialized collections under fixed keys
// in a local SQLite key-value table.
//
// Every write round-trips the entire collection (read all, mutate in
// memory, write all), wrapped in a transaction so the cycle is atomic
// within this process. There is no cross-process locking: two processes
// writing the same database race and the last writer wins. At this record
// count that is a documented limitation, not a bug.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aimcal/birthdaykeeper/internal/dbx"
	"github.com/aimcal/birthdaykeeper/internal/logging"
	"github.com/aimcal/birthdaykeeper/internal/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Fixed keys of the serialized collections.
const (
	usersKey     = "users"
	birthdaysKey = "birthdays"
	sessionKey   = "session"
)

// Store owns the database handle and hands out the per-table stores.
type Store struct {
	db  *sql.DB
	log logging.Logger

	users     *UserStore
	birthdays *BirthdayStore
	session   *SessionStore
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite database at dsn, runs
// migrations, and returns the ready Store.
func Open(ctx context.Context, dsn string, log logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := &Store{db: db, log: log}
	s.users = &UserStore{db: db}
	s.birthdays = &BirthdayStore{db: db}
	s.session = &SessionStore{db: db, log: log}
	return s, nil
}

func (s *Store) Users() *UserStore         { return s.users }
func (s *Store) Birthdays() *BirthdayStore { return s.birthdays }
func (s *Store) Session() *SessionStore    { return s.session }

func (s *Store) Close() error {
	return s.db.Close()
}

// withTx runs fn inside a transaction with a kv repository bound to it.
func withTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, repo *txRepo) error) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, newTxRepo(tx))
	})
}
