package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aimcal/birthdaykeeper/internal/views"
)

// Calendar renders the month grid with the user's birthdays marked and
// lets the user step through months with 'n' and 'p' until 'q'.
func (a *App) Calendar(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	entries, err := a.birthdays.List(ctx, a.user.ID)
	if err != nil {
		a.log.Error(ctx, "listing failed", "error", err)
		return err
	}

	today := a.now()
	cursor := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	for {
		fmt.Fprintln(a.out)
		fmt.Fprint(a.out, views.RenderMonth(entries, cursor.Year(), cursor.Month(), today))

		cmd, err := getSimpleText(a.reader, "(n)ext month, (p)revious month, (q)uit", a.out)
		if err != nil {
			return err
		}
		switch cmd {
		case "n":
			cursor = cursor.AddDate(0, 1, 0)
		case "p":
			cursor = cursor.AddDate(0, -1, 0)
		case "q", "":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
