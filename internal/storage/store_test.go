package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/aimcal/birthdaykeeper/internal/common"
	"github.com/aimcal/birthdaykeeper/internal/logging"
	"github.com/aimcal/birthdaykeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memDBCounter atomic.Int64

// setupStore opens a fresh shared-cache in-memory database. A plain
// ":memory:" DSN would give every pooled connection its own database, so
// migrations and queries could land on different ones.
func setupStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", memDBCounter.Add(1))
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	s, err := Open(context.Background(), dsn, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestUserStore_CreateAndList(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	u, err := s.Users().Create(ctx, "Alex", "a@x.com", "hash-a")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Alex", u.Name)

	users, err := s.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, u, users[0])
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.Users().Create(ctx, "Alex", "a@x.com", "hash-a")
	require.NoError(t, err)

	_, err = s.Users().Create(ctx, "Other Alex", "a@x.com", "hash-b")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	// the failed signup must not have been stored
	users, err := s.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserStore_FindByEmail(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	u, err := s.Users().Create(ctx, "Alex", "a@x.com", "hash-a")
	require.NoError(t, err)

	got, err := s.Users().FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Users().FindByEmail(ctx, "b@x.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestBirthdayStore_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	b := models.Birthday{
		ID:       "b1",
		UserID:   "u1",
		Name:     "Sam",
		Date:     mustDate(t, "1990-06-15"),
		Category: models.CategoryFamily,
	}
	require.NoError(t, s.Birthdays().Create(ctx, b))

	got, err := s.Birthdays().ListFor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b, got[0])

	require.NoError(t, s.Birthdays().Delete(ctx, "b1"))
	got, err = s.Birthdays().ListFor(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBirthdayStore_ListFiltersByOwner(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	mine := models.Birthday{ID: "b1", UserID: "u1", Name: "Sam", Date: mustDate(t, "1990-06-15"), Category: models.CategoryFamily}
	theirs := models.Birthday{ID: "b2", UserID: "u2", Name: "Kim", Date: mustDate(t, "1985-01-20"), Category: models.CategoryWork}
	require.NoError(t, s.Birthdays().Create(ctx, mine))
	require.NoError(t, s.Birthdays().Create(ctx, theirs))

	got, err := s.Birthdays().ListFor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sam", got[0].Name)
}

func TestBirthdayStore_PreservesInsertionOrder(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	names := []string{"Zoe", "Adam", "Mia"}
	for i, n := range names {
		b := models.Birthday{
			ID:       fmt.Sprintf("b%d", i),
			UserID:   "u1",
			Name:     n,
			Date:     mustDate(t, "1990-06-15"),
			Category: models.CategoryFriend,
		}
		require.NoError(t, s.Birthdays().Create(ctx, b))
	}

	got, err := s.Birthdays().ListFor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, n := range names {
		assert.Equal(t, n, got[i].Name)
	}
}

func TestBirthdayStore_DeleteAbsentIsNoop(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Birthdays().Delete(context.Background(), "no-such-id"))
}

func TestSessionStore_SetGetClear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	// empty to begin with
	got, err := s.Session().Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	u := models.User{ID: "u1", Name: "Alex", Email: "a@x.com"}
	require.NoError(t, s.Session().Set(ctx, &u))

	got, err = s.Session().Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u, *got)

	// replacing fully overwrites the previous value
	u2 := models.User{ID: "u2", Name: "Kim", Email: "k@x.com"}
	require.NoError(t, s.Session().Set(ctx, &u2))
	got, err = s.Session().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", got.ID)

	require.NoError(t, s.Session().Set(ctx, nil))
	got, err = s.Session().Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_UnreadableValueMeansNoSession(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO kv(key, value) VALUES (?, ?)`, sessionKey, []byte("{broken"))
	require.NoError(t, err)

	got, err := s.Session().Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCorruptCollectionFailsLoudly(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO kv(key, value) VALUES (?, ?)`, usersKey, []byte("{broken"))
	require.NoError(t, err)

	_, err = s.Users().List(ctx)
	require.ErrorIs(t, err, common.ErrCorruptStore)
}
