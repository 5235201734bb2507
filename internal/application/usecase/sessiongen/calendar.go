package sessiongen

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// CalendarEntry is one occurrence in a group's calendar view. Projected
// entries come from the weekly schedule and are never persisted; they exist
// only in the response.
type CalendarEntry struct {
	SessionID *uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
	Status    string
	IsMakeup  bool
	Projected bool
}

// GetCalendarInput identifies the group and the inclusive date range.
type GetCalendarInput struct {
	GroupID uuid.UUID
	From    time.Time
	To      time.Time
}

// GetCalendarUseCase merges persisted sessions with projected schedule
// occurrences for a date range.
type GetCalendarUseCase struct {
	groupRepo    adapter.GroupRepository
	scheduleRepo adapter.ScheduleRepository
	sessionRepo  adapter.SessionRepository
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(
	groupRepo adapter.GroupRepository,
	scheduleRepo adapter.ScheduleRepository,
	sessionRepo adapter.SessionRepository,
) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		groupRepo:    groupRepo,
		scheduleRepo: scheduleRepo,
		sessionRepo:  sessionRepo,
	}
}

// Execute returns the calendar entries for the range, sorted by date and
// start time. A persisted session always wins over a projection of the same
// (date, start, end) slot.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) ([]CalendarEntry, error) {
	if _, err := uc.groupRepo.FindByID(ctx, input.GroupID); err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			err,
		)
	}
	if input.To.Before(input.From) {
		return nil, domainerror.NewGenerationError(
			domainerror.ErrCodeInvalidTimeRange,
			"range end precedes range start",
			domainerror.ErrInvalidTimeRange,
		)
	}

	from := truncateToDay(input.From)
	to := truncateToDay(input.To)

	sessions, err := uc.sessionRepo.ListByGroupAndRange(ctx, input.GroupID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	entries := make([]CalendarEntry, 0, len(sessions))
	occupied := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		id := s.ID
		entries = append(entries, CalendarEntry{
			SessionID: &id,
			Date:      truncateToDay(s.Date),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Status:    string(s.Status),
			IsMakeup:  s.IsMakeup,
		})
		occupied[slotKey(truncateToDay(s.Date), s.StartTime, s.EndTime)] = struct{}{}
	}

	schedules, err := uc.scheduleRepo.ListByGroup(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	for _, schedule := range schedules {
		if !entity.IsValidDayOfWeek(schedule.DayOfWeek) {
			continue
		}
		for date := OccurrenceDate(WeekStart(from), schedule.DayOfWeek); !date.After(to); date = date.AddDate(0, 0, 7) {
			if date.Before(from) {
				continue
			}
			key := slotKey(date, schedule.StartTime, schedule.EndTime)
			if _, ok := occupied[key]; ok {
				continue
			}
			occupied[key] = struct{}{}
			entries = append(entries, CalendarEntry{
				Date:      date,
				StartTime: schedule.StartTime,
				EndTime:   schedule.EndTime,
				Status:    string(entity.SessionStatusPending),
				Projected: true,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].StartTime < entries[j].StartTime
	})
	return entries, nil
}

func slotKey(date time.Time, startTime, endTime string) string {
	return date.Format("2006-01-02") + "|" + startTime + "|" + endTime
}
