package cli

import (
	"fmt"
	"time"

	"github.com/aimcal/birthdaykeeper/internal/dateutil"
	"github.com/aimcal/birthdaykeeper/internal/models"
)

// upcomingLabel renders the dashboard countdown for one entry, e.g.
// "today, turns 34", "tomorrow, turns 34", or "in 14 days, turns 34".
func upcomingLabel(b models.Birthday, today time.Time) string {
	age := dateutil.TurningAge(b.Date, today)

	days := dateutil.DaysUntil(b.Date, today)
	switch days {
	case 0:
		return fmt.Sprintf("today, turns %d", age)
	case 1:
		return fmt.Sprintf("tomorrow, turns %d", age)
	default:
		return fmt.Sprintf("in %d days, turns %d", days, age)
	}
}
