// Package wishcard composes shareable wish cards: a greeting for one
// birthday person, a message (template or custom), a theme color, and an
// optional background image. Rendering produces text; the original image
// export never existed beyond a stub, so saving writes the rendered text.
package wishcard

import (
	"fmt"
	"strings"
	"time"

	"github.com/aimcal/birthdaykeeper/internal/models"
	"github.com/aimcal/birthdaykeeper/internal/wishes"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// FontSize is one of the four display size steps.
type FontSize int

const (
	FontSmall FontSize = iota
	FontMedium
	FontLarge
	FontHuge
)

func (f FontSize) String() string {
	switch f {
	case FontSmall:
		return "small"
	case FontMedium:
		return "medium"
	case FontLarge:
		return "large"
	case FontHuge:
		return "huge"
	default:
		return "medium"
	}
}

// Card is a wish card under construction.
type Card struct {
	Name       string
	Message    string
	Theme      wishes.ThemeColor
	Font       FontSize
	Background string // path of the attached image, empty when none

	fs afero.Fs
}

// New starts a card for the given birthday entry: the entry's theme color
// and the first catalog template are preselected, mirroring the editor's
// initial state.
func New(b models.Birthday, fs afero.Fs) *Card {
	return &Card{
		Name:    b.Name,
		Message: wishes.Templates[0].Text,
		Theme:   wishes.FindColor(b.ThemeColor),
		Font:    FontLarge,
		fs:      fs,
	}
}

// AttachBackground validates that path points at a readable image file and
// records it as the card background. Only the detected content type is
// checked; the image bytes themselves are treated as opaque.
func (c *Card) AttachBackground(path string) error {
	f, err := c.fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open background: %w", err)
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return fmt.Errorf("failed to inspect background: %w", err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return fmt.Errorf("background must be an image, got %s", mt.String())
	}

	c.Background = path
	return nil
}

// RemoveBackground detaches the background image, if any.
func (c *Card) RemoveBackground() {
	c.Background = ""
}

// Render lays the card out as text. The theme hex doubles as the border
// legend so a later image export can reuse the same composition.
func (c *Card) Render(now time.Time) string {
	var sb strings.Builder

	rule := strings.Repeat("=", 46)
	sb.WriteString(rule + "\n")
	sb.WriteString(center("* SPECIAL EDITION *") + "\n")
	sb.WriteString(center("Happy Birthday") + "\n")
	sb.WriteString(center(strings.ToUpper(c.Name)+"!") + "\n")
	sb.WriteString(center("----------") + "\n\n")

	for _, line := range wrap(c.Message, messageWidth(c.Font)) {
		sb.WriteString(center(`"`+line+`"`) + "\n")
	}

	sb.WriteString("\n")
	if c.Background != "" {
		sb.WriteString(center("[background: "+c.Background+"]") + "\n")
	}
	sb.WriteString(center(fmt.Sprintf("theme %s (%s)", c.Theme.Name, c.Theme.Hex)) + "\n")
	sb.WriteString(center(fmt.Sprintf("AIM CALENDAR * %d", now.Year())) + "\n")
	sb.WriteString(rule + "\n")

	return sb.String()
}

// Save writes the rendered card to path on the card's filesystem.
func (c *Card) Save(path string, now time.Time) error {
	return afero.WriteFile(c.fs, path, []byte(c.Render(now)), 0o644)
}

// messageWidth maps the font step to a text wrap width: bigger type means
// fewer characters per line.
func messageWidth(f FontSize) int {
	switch f {
	case FontSmall:
		return 40
	case FontMedium:
		return 34
	case FontLarge:
		return 28
	case FontHuge:
		return 22
	default:
		return 34
	}
}

func center(s string) string {
	const width = 46
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
