package dashboard

import (
	"fmt"
	"time"
)

// MonthStart returns the first day of the month containing the given date.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// MonthEnd returns the last day of the month containing the given date.
func MonthEnd(date time.Time) time.Time {
	return MonthStart(date).AddDate(0, 1, -1)
}

// MonthKey returns a unique key for the month containing the given date.
func MonthKey(date time.Time) string {
	return MonthStart(date).Format("2006-01")
}

// MonthLabel generates a human-readable label for a month (e.g., "Mar 2025").
func MonthLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", date.Month().String()[:3], date.Year())
}

// TrailingMonths generates the n calendar-month starts ending with the month
// containing ref, oldest first. This ensures continuous data for chart
// rendering with no gaps.
func TrailingMonths(ref time.Time, n int) []time.Time {
	months := make([]time.Time, 0, n)
	current := MonthStart(ref).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		months = append(months, current)
		current = current.AddDate(0, 1, 0)
	}
	return months
}
