// Package dateutil is the date engine behind the birthday views: next
// anniversary distance, turning age, same-day checks, and display
// formatting. All functions are pure; "today" is always an explicit
// argument so callers (and tests) control the clock.
package dateutil

import (
	"math"
	"time"

	"github.com/aimcal/birthdaykeeper/internal/models"
)

// Truncate drops the time-of-day component, keeping the location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of whole days from today until the next
// anniversary of d's month/day. Returns 0 when the anniversary is today.
//
// A Feb-29 date in a non-leap target year normalizes to Mar-1 (time.Date
// rollover), so such birthdays land on Mar-1 in those years. This mirrors
// the host-date-library behavior the app has always had.
func DaysUntil(d models.Date, today time.Time) int {
	today = Truncate(today)

	next := time.Date(today.Year(), d.Month(), d.Day(), 0, 0, 0, 0, today.Location())
	if next.Before(today) {
		next = time.Date(today.Year()+1, d.Month(), d.Day(), 0, 0, 0, 0, today.Location())
	}

	// Ceil absorbs DST-shortened days so the result is always whole days.
	return int(math.Ceil(next.Sub(today).Hours() / 24))
}

// IsToday reports whether today's month and day match d's month and day.
// The year is ignored.
func IsToday(d models.Date, today time.Time) bool {
	return today.Month() == d.Month() && today.Day() == d.Day()
}

// TurningAge returns the age the person turns on the next occurrence of
// their birthday (not their current age). On the anniversary itself this is
// the age they turn today.
func TurningAge(d models.Date, today time.Time) int {
	age := today.Year() - d.Year()
	if today.Month() > d.Month() || (today.Month() == d.Month() && today.Day() > d.Day()) {
		age++
	}
	return age
}

// FormatDisplay renders "Month Day" for card and list display, e.g.
// "June 15". The year is deliberately omitted.
func FormatDisplay(d models.Date) string {
	return d.Time().Format("January 2")
}
