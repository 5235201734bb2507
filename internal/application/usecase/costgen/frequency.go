// Package costgen materializes concrete Cost rows from recurring cost
// templates. It is the body of the daily generation job and is idempotent:
// running it any number of times in the same day produces no duplicates.
package costgen

import (
	"time"

	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// NextDueDate advances a due date by exactly one period of the given frequency.
func NextDueDate(last time.Time, frequency entity.CostFrequency) (time.Time, error) {
	switch frequency {
	case entity.CostFrequencyDaily:
		return last.AddDate(0, 0, 1), nil
	case entity.CostFrequencyWeekly:
		return last.AddDate(0, 0, 7), nil
	case entity.CostFrequencyMonthly:
		return last.AddDate(0, 1, 0), nil
	case entity.CostFrequencyYearly:
		return last.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, domainerror.NewGenerationError(
			domainerror.ErrCodeInvalidFrequency,
			"unknown cost frequency: "+string(frequency),
			domainerror.ErrInvalidFrequency,
		)
	}
}

// truncateToDay strips the time-of-day component in the timestamp's location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
