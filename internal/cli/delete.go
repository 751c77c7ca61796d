package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aimcal/birthdaykeeper/internal/common"
)

// Delete prompts for an entry ID and removes it. Ownership is checked
// first so one account cannot remove another account's entries.
func (a *App) Delete(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter entry ID to delete", a.out)
	if err != nil {
		return err
	}

	if _, err := a.birthdays.Get(ctx, a.user.ID, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "No entry with this ID")
			return err
		}
		return err
	}

	if err := a.birthdays.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "delete failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Deleted")
	return nil
}
