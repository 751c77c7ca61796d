// Package views shapes already-loaded birthday collections for display:
// free-text and category filtering, the two sort orders, and the month
// calendar grid. Nothing here touches storage.
package views

import (
	"sort"
	"strings"
	"time"

	"github.com/aimcal/birthdaykeeper/internal/dateutil"
	"github.com/aimcal/birthdaykeeper/internal/models"
)

// SortMode selects the dashboard ordering.
type SortMode string

const (
	// SortByMonth orders by calendar month/day, ignoring year.
	SortByMonth SortMode = "month"
	// SortByClosest orders by ascending days until the next anniversary.
	SortByClosest SortMode = "soon"
)

// ListOptions captures the dashboard's filter and sort state.
type ListOptions struct {
	Query    string          // free-text name match, case-insensitive substring
	Category models.Category // empty means all categories
	Sort     SortMode
}

// Apply filters and sorts entries per opts. The input slice is not
// modified; today anchors the SortByClosest order.
func Apply(entries []models.Birthday, opts ListOptions, today time.Time) []models.Birthday {
	query := strings.ToLower(opts.Query)

	out := make([]models.Birthday, 0, len(entries))
	for _, b := range entries {
		if query != "" && !strings.Contains(strings.ToLower(b.Name), query) {
			continue
		}
		if opts.Category != "" && b.Category != opts.Category {
			continue
		}
		out = append(out, b)
	}

	switch opts.Sort {
	case SortByClosest:
		sort.SliceStable(out, func(i, j int) bool {
			return dateutil.DaysUntil(out[i].Date, today) < dateutil.DaysUntil(out[j].Date, today)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Date.Month() != out[j].Date.Month() {
				return out[i].Date.Month() < out[j].Date.Month()
			}
			return out[i].Date.Day() < out[j].Date.Day()
		})
	}

	return out
}
