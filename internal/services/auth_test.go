package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/aimcal/birthdaykeeper/internal/common"
	"github.com/aimcal/birthdaykeeper/internal/logging"
	"github.com/aimcal/birthdaykeeper/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memDBCounter atomic.Int64

func setupServices(t *testing.T) (AuthService, BirthdayService) {
	t.Helper()
	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", memDBCounter.Add(1))
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	store, err := storage.Open(context.Background(), dsn, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewAuthService(store, log), NewBirthdayService(store, log)
}

func TestSignUp_ThenLogin_SameUserID(t *testing.T) {
	auth, _ := setupServices(t)
	ctx := context.Background()

	created, err := auth.SignUp(ctx, "Alex", "a@x.com", []byte("p"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "p", created.PasswordHash, "password must not be stored as plaintext")

	logged, err := auth.Login(ctx, "a@x.com", []byte("p"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	auth, _ := setupServices(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "Alex", "a@x.com", []byte("p"))
	require.NoError(t, err)

	_, err = auth.SignUp(ctx, "Impostor", "a@x.com", []byte("q"))
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth, _ := setupServices(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "Alex", "a@x.com", []byte("p"))
	require.NoError(t, err)

	_, err = auth.Login(ctx, "a@x.com", []byte("wrong"))
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	// unknown email yields the same error as a wrong password
	_, err = auth.Login(ctx, "nobody@x.com", []byte("p"))
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestSession_PersistsAcrossServiceInstances(t *testing.T) {
	auth, _ := setupServices(t)
	ctx := context.Background()

	created, err := auth.SignUp(ctx, "Alex", "a@x.com", []byte("p"))
	require.NoError(t, err)

	restored, err := auth.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, created.ID, restored.ID)

	require.NoError(t, auth.Logout(ctx))
	restored, err = auth.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)
}
