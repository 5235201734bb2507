// Package sessiongen materializes concrete group sessions from recurring
// weekly schedules and builds the calendar read-side view. Generation is
// idempotent per (group, date, start, end) slot.
package sessiongen

import (
	"time"

	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// WeekStart returns the Monday of the week containing t, at midnight in t's
// location.
func WeekStart(t time.Time) time.Time {
	day := truncateToDay(t)
	// time.Weekday is Sunday-based; shift so Monday maps to offset 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// OccurrenceDate resolves a schedule's 0-6 Sunday-based day-of-week to a
// concrete date inside the Monday-anchored week.
func OccurrenceDate(weekStart time.Time, dayOfWeek int) time.Time {
	return weekStart.AddDate(0, 0, (dayOfWeek+6)%7)
}

// SlotEnd combines a date with a "15:04" end time.
func SlotEnd(date time.Time, endTime string) (time.Time, error) {
	clock, err := entity.ParseClockTime(endTime)
	if err != nil {
		return time.Time{}, domainerror.NewGenerationError(
			domainerror.ErrCodeInvalidTimeRange,
			"malformed end time: "+endTime,
			domainerror.ErrInvalidTimeRange,
		)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, date.Location()), nil
}

// ValidateTimeRange checks that both times parse and that end follows start.
func ValidateTimeRange(startTime, endTime string) error {
	start, err := entity.ParseClockTime(startTime)
	if err != nil {
		return domainerror.NewGenerationError(
			domainerror.ErrCodeInvalidTimeRange,
			"malformed start time: "+startTime,
			domainerror.ErrInvalidTimeRange,
		)
	}
	end, err := entity.ParseClockTime(endTime)
	if err != nil {
		return domainerror.NewGenerationError(
			domainerror.ErrCodeInvalidTimeRange,
			"malformed end time: "+endTime,
			domainerror.ErrInvalidTimeRange,
		)
	}
	if !end.After(start) {
		return domainerror.NewGenerationError(
			domainerror.ErrCodeInvalidTimeRange,
			"end time must be after start time",
			domainerror.ErrInvalidTimeRange,
		)
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
