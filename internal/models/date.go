package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/aimcal/birthdaykeeper/internal/common"
)

// dateLayout is the storage format for calendar dates: year-month-day,
// no time component.
const dateLayout = "2006-01-02"

// Date is a calendar date (year, month, day). It serializes to JSON as a
// "YYYY-MM-DD" string so stored collections stay flat and readable.
type Date struct {
	t time.Time
}

// NewDate builds a Date from components. Out-of-range values are normalized
// by time.Date (e.g. Feb-29 of a non-leap year becomes Mar-1).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a strict "YYYY-MM-DD" string.
//
// The year must be exactly 4 digits: anything longer (e.g. "20245-06-15")
// or shorter fails with common.ErrInvalidYear before the date is even
// parsed, so such input can never reach the store. Any other malformed
// input fails with common.ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", common.ErrInvalidDate, s)
	}
	if len(parts[0]) != 4 {
		return Date{}, fmt.Errorf("%w: %q", common.ErrInvalidYear, s)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", common.ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// String renders the storage form "YYYY-MM-DD".
func (d Date) String() string { return d.t.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
