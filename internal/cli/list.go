package cli

import (
	"context"
	"fmt"

	"github.com/aimcal/birthdaykeeper/internal/dateutil"
	"github.com/aimcal/birthdaykeeper/internal/models"
	"github.com/aimcal/birthdaykeeper/internal/views"
)

// List prints the dashboard: the user's birthdays with the current search,
// category, and sort settings applied.
func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	entries, err := a.birthdays.List(ctx, a.user.ID)
	if err != nil {
		a.log.Error(ctx, "listing failed", "error", err)
		return err
	}

	today := dateutil.Truncate(a.now())
	filtered := views.Apply(entries, a.listOpts, today)

	if len(filtered) == 0 {
		if len(entries) == 0 {
			fmt.Fprintln(a.out, "No birthdays yet, try 'add'")
		} else {
			fmt.Fprintln(a.out, "No matches for the current filters")
		}
		return nil
	}

	for _, b := range filtered {
		fmt.Fprintf(a.out, "%s  %-20s %-12s %-8s %s\n",
			b.ID, b.Name, dateutil.FormatDisplay(b.Date), b.Category, upcomingLabel(b, today))
	}
	return nil
}

// Search sets the free-text name filter. An empty value clears it.
func (a *App) Search(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	query, err := getSimpleText(a.reader, "Search by name (empty to clear)", a.out)
	if err != nil {
		return err
	}
	a.listOpts.Query = query
	return a.List(ctx)
}

// Filter sets the category filter. An empty value clears it.
func (a *App) Filter(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	catStr, err := getSimpleText(a.reader, "Filter by category (family/friend/work/other, empty for all)", a.out)
	if err != nil {
		return err
	}

	if catStr == "" {
		a.listOpts.Category = ""
		return a.List(ctx)
	}

	category, err := models.ParseCategory(catStr)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	a.listOpts.Category = category
	return a.List(ctx)
}

// Sort switches the dashboard order between calendar month and closest
// upcoming birthday.
func (a *App) Sort(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	mode, err := getSimpleText(a.reader, "Sort by 'month' or 'soon'", a.out)
	if err != nil {
		return err
	}

	switch mode {
	case string(views.SortByMonth):
		a.listOpts.Sort = views.SortByMonth
	case string(views.SortByClosest):
		a.listOpts.Sort = views.SortByClosest
	default:
		fmt.Fprintf(a.out, "Unknown sort mode %q\n", mode)
		return nil
	}
	return a.List(ctx)
}
