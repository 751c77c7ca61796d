package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/aimcal/birthdaykeeper/internal/dateutil"
	"github.com/aimcal/birthdaykeeper/internal/models"
	"github.com/aimcal/birthdaykeeper/internal/wishes"
)

// Add interactively records a new birthday for the logged-in user:
// name, date of birth, category, theme color, and optional notes.
func (a *App) Add(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	dateStr, err := getSimpleText(a.reader, "Enter date of birth (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	date, err := models.ParseDate(dateStr)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	catStr, err := getSimpleText(a.reader, "Enter category (family/friend/work/other, default other)", a.out)
	if err != nil {
		return err
	}
	category := models.CategoryOther
	if catStr != "" {
		category, err = models.ParseCategory(catStr)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
	}

	colorStr, err := getSimpleText(a.reader, "Enter theme color (empty for "+wishes.DefaultColor.Token()+"): "+paletteTokens(), a.out)
	if err != nil {
		return err
	}
	color := wishes.DefaultColor
	if colorStr != "" {
		color, err = wishes.ParseColor(colorStr)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
	}

	notes, err := GetMultiline(a.reader, "Enter notes (optional)", a.out)
	if err != nil {
		return err
	}

	entry := models.Birthday{
		UserID:     a.user.ID,
		Name:       name,
		Date:       date,
		Category:   category,
		ThemeColor: color.Token(),
		Notes:      notes,
	}

	saved, err := a.birthdays.Add(ctx, entry)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	today := dateutil.Truncate(a.now())
	fmt.Fprintf(a.out, "Added %s (%s), %s\n", saved.Name, saved.ID, upcomingLabel(saved, today))
	return nil
}

func paletteTokens() string {
	tokens := make([]string, 0, len(wishes.Palette))
	for _, c := range wishes.Palette {
		tokens = append(tokens, c.Token())
	}
	return strings.Join(tokens, ", ")
}
