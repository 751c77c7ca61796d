package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aimcal/birthdaykeeper/internal/common"
	"github.com/aimcal/birthdaykeeper/internal/dateutil"
	"github.com/aimcal/birthdaykeeper/internal/wishes"
)

// Show prompts for an entry ID and prints the full record, including the
// countdown and the age the person is turning.
func (a *App) Show(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter entry ID", a.out)
	if err != nil {
		return err
	}

	b, err := a.birthdays.Get(ctx, a.user.ID, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "No entry with this ID")
			return err
		}
		a.log.Error(ctx, "show failed", "error", err)
		return err
	}

	today := dateutil.Truncate(a.now())
	color := wishes.FindColor(b.ThemeColor)

	fmt.Fprintf(a.out, "Name:     %s\n", b.Name)
	fmt.Fprintf(a.out, "Born:     %s\n", b.Date)
	fmt.Fprintf(a.out, "Birthday: %s, %s\n", dateutil.FormatDisplay(b.Date), upcomingLabel(b, today))
	fmt.Fprintf(a.out, "Category: %s\n", b.Category)
	fmt.Fprintf(a.out, "Theme:    %s (%s)\n", color.Name, color.Hex)
	if b.Notes != "" {
		fmt.Fprintf(a.out, "Notes:    %s\n", b.Notes)
	}
	return nil
}
