package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/aimcal/birthdaykeeper/internal/models"
)

// RenderMonth draws a month grid with birthdays marked on their month/day
// (year ignored, as on the dashboard calendar). Days carrying at least one
// birthday are flagged with '*'; today is bracketed. Entries falling in
// the month are listed under the grid.
func RenderMonth(entries []models.Birthday, year int, month time.Month, today time.Time) string {
	var sb strings.Builder

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDay := make(map[int][]models.Birthday)
	for _, b := range entries {
		if b.Date.Month() == month {
			byDay[b.Date.Day()] = append(byDay[b.Date.Day()], b)
		}
	}

	sb.WriteString(fmt.Sprintf("%s %d\n", month, year))
	sb.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	col := int(first.Weekday())
	sb.WriteString(strings.Repeat("    ", col))

	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%3d ", day)
		if today.Year() == year && today.Month() == month && today.Day() == day {
			cell = fmt.Sprintf("[%2d]", day)
		} else if len(byDay[day]) > 0 {
			cell = fmt.Sprintf("%3d*", day)
		}
		sb.WriteString(cell)

		col++
		if col == 7 {
			sb.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		sb.WriteString("\n")
	}

	if len(byDay) > 0 {
		sb.WriteString("\n")
		for day := 1; day <= daysInMonth; day++ {
			for _, b := range byDay[day] {
				sb.WriteString(fmt.Sprintf("  %2d: %s (%s)\n", day, b.Name, b.Category))
			}
		}
	}

	return sb.String()
}
