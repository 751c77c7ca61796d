// Package wishes holds the compiled-in catalogs the wish-card maker draws
// from: the theme color palette and the wish-template library. Both are
// fixed at build time; there is no user-defined palette or template store.
package wishes

import (
	"fmt"
	"math/rand"
	"strings"
)

// ThemeColor is a named palette entry. Token is the stable identifier a
// birthday entry stores; Hex is used for rendering only.
type ThemeColor struct {
	Name string
	Hex  string
}

// Token returns the stored reference for the color.
func (c ThemeColor) Token() string { return strings.ToLower(c.Name) }

// Palette is the fixed theme palette, in display order.
var Palette = []ThemeColor{
	{Name: "Rose", Hex: "#f43f5e"},
	{Name: "Sky", Hex: "#0ea5e9"},
	{Name: "Amber", Hex: "#f59e0b"},
	{Name: "Emerald", Hex: "#10b981"},
	{Name: "Indigo", Hex: "#6366f1"},
	{Name: "Violet", Hex: "#8b5cf6"},
	{Name: "Fuchsia", Hex: "#d946ef"},
	{Name: "Slate", Hex: "#334155"},
	{Name: "Orange", Hex: "#f97316"},
	{Name: "Teal", Hex: "#14b8a6"},
	{Name: "Cyan", Hex: "#06b6d4"},
	{Name: "Lime", Hex: "#84cc16"},
	{Name: "Pink", Hex: "#ec4899"},
	{Name: "Crimson", Hex: "#dc2626"},
	{Name: "Gold", Hex: "#eab308"},
}

// DefaultColor is used when an entry carries no (or an unknown) token.
var DefaultColor = Palette[0]

// FindColor resolves a stored token to a palette entry. Unknown tokens
// resolve to DefaultColor so old entries keep rendering after palette
// changes.
func FindColor(token string) ThemeColor {
	for _, c := range Palette {
		if strings.EqualFold(c.Name, token) {
			return c
		}
	}
	return DefaultColor
}

// ParseColor resolves a user-entered color name, failing on unknown names
// (unlike FindColor, which is lenient for stored data).
func ParseColor(name string) (ThemeColor, error) {
	for _, c := range Palette {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return ThemeColor{}, fmt.Errorf("unknown theme color %q", name)
}

// Template is one entry of the wish-template library.
type Template struct {
	ID       string
	Category string
	Text     string
}

// Templates is the fixed wish-template catalog.
var Templates = []Template{
	{ID: "1", Category: "Heartfelt", Text: "Wishing you a day filled with happiness and a year filled with joy. Happy birthday!"},
	{ID: "2", Category: "Funny", Text: "Happy birthday! You're not getting older, you're just becoming a classic."},
	{ID: "3", Category: "Funny", Text: "I was going to bake you a rum cake, but now it's just a cake and I'm drunk. Happy Birthday!"},
	{ID: "4", Category: "Short", Text: "Cheers to another trip around the sun! Have the best day."},
	{ID: "5", Category: "Work", Text: "Happy birthday! Wishing you a fantastic day and continued success in everything you do."},
	{ID: "6", Category: "Heartfelt", Text: "May your birthday be as special as you are to me. Sending so much love today."},
}

// RandomTemplate picks a template using the given source, so callers can
// seed deterministically in tests.
func RandomTemplate(rng *rand.Rand) Template {
	return Templates[rng.Intn(len(Templates))]
}
