package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aimcal/birthdaykeeper/internal/common"
	"github.com/aimcal/birthdaykeeper/internal/views"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a display name, email, and password, and attempts to
// create a new account via the AuthService.
//
// On success the new user is logged in immediately and "Success!" is
// printed. The password byte slice is wiped before returning. A duplicate
// email is reported to the user; other errors are returned unchanged.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.SignUp(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			fmt.Fprintln(a.out, "An account with this email already exists")
			return err
		}
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	a.user = &user
	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and tries to authenticate.
//
// Unknown emails and wrong passwords are reported with the same message.
// On success the user becomes the active session for this and future runs.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid email or password")
			return err
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	a.user = &user
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return nil
}

// Logout clears the persisted session and resets the dashboard filters.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.listOpts = views.ListOptions{Sort: views.SortByMonth}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
