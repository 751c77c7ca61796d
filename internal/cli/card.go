package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aimcal/birthdaykeeper/internal/common"
	"github.com/aimcal/birthdaykeeper/internal/wishcard"
	"github.com/aimcal/birthdaykeeper/internal/wishes"
)

// Card runs the wish-card maker for one entry: pick a message (template,
// random, or custom), adjust the theme color and font size, optionally
// attach a background image, then preview and save.
func (a *App) Card(ctx context.Context) error {
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
		return err
	}

	card := wishcard.New(b, a.fs)

	fmt.Fprintln(a.out, "Templates:")
	for i, t := range wishes.Templates {
		fmt.Fprintf(a.out, "  %d. [%s] %s\n", i+1, t.Category, t.Text)
	}

	choice, err := getSimpleText(a.reader, "Pick a template number, 'r' for random, or 'c' for a custom message", a.out)
	if err != nil {
		return err
	}
	switch choice {
	case "", "1":
		// keep the preselected first template
	case "r":
		card.Message = wishes.RandomTemplate(a.rng).Text
	case "c":
		msg, err := GetMultiline(a.reader, "Enter your message", a.out)
		if err != nil {
			return err
		}
		if msg != "" {
			card.Message = msg
		}
	default:
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(wishes.Templates) {
			fmt.Fprintf(a.out, "Unknown choice %q, keeping template 1\n", choice)
			break
		}
		card.Message = wishes.Templates[n-1].Text
	}

	colorStr, err := getSimpleText(a.reader, "Theme color (empty keeps "+card.Theme.Token()+"): "+paletteTokens(), a.out)
	if err != nil {
		return err
	}
	if colorStr != "" {
		color, err := wishes.ParseColor(colorStr)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
		} else {
			card.Theme = color
		}
	}

	fontStr, err := getSimpleText(a.reader, "Font size (small/medium/large/huge, default large)", a.out)
	if err != nil {
		return err
	}
	if fontStr != "" {
		font, err := parseFont(fontStr)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
		} else {
			card.Font = font
		}
	}

	bgPath, err := getSimpleText(a.reader, "Background image path (empty for none)", a.out)
	if err != nil {
		return err
	}
	if bgPath != "" {
		if err := card.AttachBackground(bgPath); err != nil {
			fmt.Fprintln(a.out, err.Error())
		}
	}

	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, card.Render(a.now()))

	savePath, err := getSimpleText(a.reader, "Save to file (empty to skip)", a.out)
	if err != nil {
		return err
	}
	if savePath != "" {
		if err := card.Save(savePath, a.now()); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
		fmt.Fprintf(a.out, "Saved to %s\n", savePath)
	}
	return nil
}

func parseFont(s string) (wishcard.FontSize, error) {
	switch s {
	case "small":
		return wishcard.FontSmall, nil
	case "medium":
		return wishcard.FontMedium, nil
	case "large":
		return wishcard.FontLarge, nil
	case "huge":
		return wishcard.FontHuge, nil
	default:
		return wishcard.FontMedium, fmt.Errorf("unknown font size %q", s)
	}
}
