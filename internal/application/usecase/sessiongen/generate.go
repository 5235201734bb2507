package sessiongen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// Report summarizes one generator run.
type Report struct {
	Generated int
	Skipped   int
	Failed    int
}

// GenerateUseCase runs one pass of the session generator over the current
// week. Only slots whose end time has already passed are materialized, so a
// generated session is always eligible for completion the moment it appears.
type GenerateUseCase struct {
	scheduleRepo adapter.ScheduleRepository
	sessionRepo  adapter.SessionRepository
	clock        adapter.Clock
}

// NewGenerateUseCase creates a new GenerateUseCase instance.
func NewGenerateUseCase(
	scheduleRepo adapter.ScheduleRepository,
	sessionRepo adapter.SessionRepository,
	clock adapter.Clock,
) *GenerateUseCase {
	return &GenerateUseCase{
		scheduleRepo: scheduleRepo,
		sessionRepo:  sessionRepo,
		clock:        clock,
	}
}

// Execute processes every schedule against the Monday-anchored current week.
// A failure on one schedule is logged and isolated; the remaining schedules
// are still processed.
func (uc *GenerateUseCase) Execute(ctx context.Context) (*Report, error) {
	schedules, err := uc.scheduleRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	now := uc.clock.Now()
	weekStart := WeekStart(now)

	report := &Report{}
	for _, schedule := range schedules {
		generated, err := uc.processSchedule(ctx, schedule, weekStart, now)
		switch {
		case err != nil:
			report.Failed++
			slog.Error("Session generation failed for schedule",
				"schedule_id", schedule.ID,
				"group_id", schedule.GroupID,
				"error", err,
			)
		case generated:
			report.Generated++
		default:
			report.Skipped++
		}
	}

	slog.Info("Session generation run finished",
		"week_start", weekStart.Format("2006-01-02"),
		"generated", report.Generated,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return report, nil
}

// processSchedule materializes the schedule's occurrence in the given week,
// if its end time has already passed and no session occupies the slot yet.
func (uc *GenerateUseCase) processSchedule(ctx context.Context, schedule *entity.GroupSchedule, weekStart, now time.Time) (bool, error) {
	if !entity.IsValidDayOfWeek(schedule.DayOfWeek) {
		return false, domainerror.NewGenerationError(
			domainerror.ErrCodeInvalidDayOfWeek,
			fmt.Sprintf("day of week out of range: %d", schedule.DayOfWeek),
			domainerror.ErrInvalidDayOfWeek,
		)
	}

	date := OccurrenceDate(weekStart, schedule.DayOfWeek)

	end, err := SlotEnd(date, schedule.EndTime)
	if err != nil {
		return false, err
	}
	if end.After(now) {
		slog.Debug("Session generation skipped, slot has not ended yet",
			"schedule_id", schedule.ID,
			"date", date.Format("2006-01-02"),
			"end_time", schedule.EndTime,
		)
		return false, nil
	}

	exists, err := uc.sessionRepo.ExistsBySlot(ctx, schedule.GroupID, date, schedule.StartTime, schedule.EndTime)
	if err != nil {
		return false, fmt.Errorf("failed to check slot: %w", err)
	}
	if exists {
		return false, nil
	}

	session := entity.NewGroupSession(
		schedule.GroupID,
		date,
		schedule.StartTime,
		schedule.EndTime,
		false,
		entity.SessionStatusPending,
	)
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return false, fmt.Errorf("failed to create session: %w", err)
	}

	slog.Debug("Session materialized from schedule",
		"schedule_id", schedule.ID,
		"session_id", session.ID,
		"date", date.Format("2006-01-02"),
	)
	return true, nil
}
