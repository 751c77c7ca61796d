// Package services contains the application services behind the CLI:
// account/session handling and birthday bookkeeping. Services own the
// business rules; the stores only move records.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aimcal/birthdaykeeper/internal/common"
	"github.com/aimcal/birthdaykeeper/internal/logging"
	"github.com/aimcal/birthdaykeeper/internal/models"
	"github.com/aimcal/birthdaykeeper/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// AuthService defines account and session operations for the CLI.
//
// Contract:
//   - SignUp: create an account and open a session for it.
//   - Login: verify credentials and open a session.
//   - Logout: clear the persisted session.
//   - Restore: return the persisted session user, if any.
type AuthService interface {
	SignUp(ctx context.Context, name, email string, password []byte) (models.User, error)
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.User, error)
}

type authService struct {
	store *storage.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService over the given store.
func NewAuthService(store *storage.Store, log logging.Logger) AuthService {
	return &authService{store: store, log: log}
}

// SignUp registers a new account. The password is stored only as a bcrypt
// hash. Fails with common.ErrDuplicateEmail when the email is taken; on
// success the new user becomes the persisted session.
func (a *authService) SignUp(ctx context.Context, name, email string, password []byte) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.store.Users().Create(ctx, name, email, string(hash))
	if err != nil {
		return models.User{}, err
	}

	if err := a.store.Session().Set(ctx, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to persist session: %w", err)
	}

	a.log.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies the email/password pair against the stored accounts.
// Any mismatch — unknown email or wrong password — surfaces as the same
// common.ErrInvalidCredentials so the caller cannot probe which half
// failed. On success the user becomes the persisted session.
func (a *authService) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	user, err := a.store.Users().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.User{}, common.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), password); err != nil {
		return models.User{}, common.ErrInvalidCredentials
	}

	if err := a.store.Session().Set(ctx, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to persist session: %w", err)
	}

	a.log.Info(ctx, "user logged in", "user_id", user.ID)
	return user, nil
}

// Logout clears the persisted session pointer.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Session().Set(ctx, nil)
}

// Restore returns the session user persisted by a previous run, or nil.
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	return a.store.Session().Get(ctx)
}
