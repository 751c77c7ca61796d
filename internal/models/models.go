// Package models defines the persisted record types: user accounts,
// birthday entries, and the helpers to validate their fields.
package models

import (
	"fmt"
	"strings"

	"github.com/aimcal/birthdaykeeper/internal/common"
)

// Category groups a birthday entry for filtering.
type Category string

const (
	CategoryFamily Category = "Family"
	CategoryFriend Category = "Friend"
	CategoryWork   Category = "Work"
	CategoryOther  Category = "Other"
)

// Categories lists all valid categories in display order.
var Categories = []Category{CategoryFamily, CategoryFriend, CategoryWork, CategoryOther}

// ParseCategory matches s against the known categories, case-insensitively,
// so the CLI can accept "friend" as well as "Friend".
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// User is an account record. Created at signup, never mutated afterwards.
// PasswordHash holds a bcrypt hash, never the plaintext password.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Birthday is owned by exactly one user via UserID. There is no update
// path: entries are created and deleted, never edited in place.
type Birthday struct {
	ID         string   `json:"id"`
	UserID     string   `json:"userId"`
	Name       string   `json:"name"`
	Date       Date     `json:"date"`
	Category   Category `json:"category"`
	ThemeColor string   `json:"themeColor"`
	Notes      string   `json:"notes,omitempty"`
}

// Validate checks the fields a new entry must carry before it is stored.
// The date itself is validated at parse time; here we only require that
// one was set.
func (b *Birthday) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("name is required")
	}
	if b.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if b.Date.IsZero() {
		return fmt.Errorf("%w: date is required", common.ErrInvalidDate)
	}
	if _, err := ParseCategory(string(b.Category)); err != nil {
		return err
	}
	return nil
}
