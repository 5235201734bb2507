package sessiongen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeGroupRepo struct {
	groups map[uuid.UUID]*entity.Group
}

func (r *fakeGroupRepo) Create(_ context.Context, g *entity.Group) error { r.groups[g.ID] = g; return nil }
func (r *fakeGroupRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, domainerror.ErrGroupNotFound
	}
	return g, nil
}
func (r *fakeGroupRepo) List(context.Context) ([]*entity.Group, error) { return nil, nil }
func (r *fakeGroupRepo) Count(context.Context) (int64, error)          { return int64(len(r.groups)), nil }
func (r *fakeGroupRepo) Update(context.Context, *entity.Group) error   { return nil }
func (r *fakeGroupRepo) Delete(context.Context, uuid.UUID) error       { return nil }

type fakeScheduleRepo struct {
	schedules []*entity.GroupSchedule
}

func (r *fakeScheduleRepo) Create(_ context.Context, s *entity.GroupSchedule) error {
	r.schedules = append(r.schedules, s)
	return nil
}
func (r *fakeScheduleRepo) FindByID(context.Context, uuid.UUID) (*entity.GroupSchedule, error) {
	return nil, domainerror.ErrScheduleNotFound
}
func (r *fakeScheduleRepo) ListAll(context.Context) ([]*entity.GroupSchedule, error) {
	return r.schedules, nil
}
func (r *fakeScheduleRepo) ListByGroup(_ context.Context, groupID uuid.UUID) ([]*entity.GroupSchedule, error) {
	var out []*entity.GroupSchedule
	for _, s := range r.schedules {
		if s.GroupID == groupID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeScheduleRepo) Update(context.Context, *entity.GroupSchedule) error { return nil }
func (r *fakeScheduleRepo) Delete(context.Context, uuid.UUID) error             { return nil }

type fakeSessionRepo struct {
	sessions []*entity.GroupSession
}

func (r *fakeSessionRepo) Create(_ context.Context, s *entity.GroupSession) error {
	r.sessions = append(r.sessions, s)
	return nil
}
func (r *fakeSessionRepo) FindByID(context.Context, uuid.UUID) (*entity.GroupSession, error) {
	return nil, domainerror.ErrSessionNotFound
}
func (r *fakeSessionRepo) ExistsBySlot(_ context.Context, groupID uuid.UUID, date time.Time, startTime, endTime string) (bool, error) {
	for _, s := range r.sessions {
		if s.GroupID == groupID && s.Date.Equal(date) && s.StartTime == startTime && s.EndTime == endTime {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeSessionRepo) ListByGroupAndRange(_ context.Context, groupID uuid.UUID, from, to time.Time) ([]*entity.GroupSession, error) {
	var out []*entity.GroupSession
	for _, s := range r.sessions {
		if s.GroupID == groupID && !s.Date.Before(from) && !s.Date.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeSessionRepo) ListByDate(_ context.Context, date time.Time) ([]*entity.GroupSession, error) {
	var out []*entity.GroupSession
	for _, s := range r.sessions {
		if s.Date.Equal(date) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeSessionRepo) Update(context.Context, *entity.GroupSession) error { return nil }
func (r *fakeSessionRepo) Delete(context.Context, uuid.UUID) error            { return nil }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newGroup() *entity.Group {
	return entity.NewGroup("B2 Evening", "B2", decimal.NewFromInt(4), decimal.NewFromInt(40), decimal.NewFromInt(900), nil)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{date(2025, 7, 14), date(2025, 7, 14)}, // Monday maps to itself
		{date(2025, 7, 16), date(2025, 7, 14)}, // Wednesday
		{date(2025, 7, 20), date(2025, 7, 14)}, // Sunday belongs to the preceding Monday
		{time.Date(2025, 7, 14, 23, 59, 0, 0, time.UTC), date(2025, 7, 14)},
	}
	for _, tt := range tests {
		if got := WeekStart(tt.in); !got.Equal(tt.want) {
			t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOccurrenceDate(t *testing.T) {
	weekStart := date(2025, 7, 14)

	tests := []struct {
		dayOfWeek int
		want      time.Time
	}{
		{1, date(2025, 7, 14)}, // Monday
		{2, date(2025, 7, 15)}, // Tuesday
		{6, date(2025, 7, 19)}, // Saturday
		{0, date(2025, 7, 20)}, // Sunday closes the week
	}
	for _, tt := range tests {
		if got := OccurrenceDate(weekStart, tt.dayOfWeek); !got.Equal(tt.want) {
			t.Errorf("OccurrenceDate(day %d) = %v, want %v", tt.dayOfWeek, got, tt.want)
		}
	}
}

func TestGenerateMaterializesEndedSlot(t *testing.T) {
	group := newGroup()
	scheduleRepo := &fakeScheduleRepo{schedules: []*entity.GroupSchedule{
		entity.NewGroupSchedule(group.ID, 2, "10:00", "11:00"),
	}}
	sessionRepo := &fakeSessionRepo{}

	// Wednesday noon: the Tuesday 10:00-11:00 slot of this week has ended.
	clock := &fakeClock{now: time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)}
	uc := NewGenerateUseCase(scheduleRepo, sessionRepo, clock)

	report, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Generated != 1 || report.Failed != 0 {
		t.Fatalf("report = %+v, want 1 generated", report)
	}

	s := sessionRepo.sessions[0]
	if !s.Date.Equal(date(2025, 7, 15)) {
		t.Errorf("session date = %v, want 2025-07-15", s.Date)
	}
	if s.Status != entity.SessionStatusPending || s.IsMakeup {
		t.Errorf("generated session must be PENDING and not a make-up, got %+v", s)
	}

	// Second run the same day: the slot is occupied, no duplicate.
	report, err = uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Generated != 0 || report.Skipped != 1 {
		t.Errorf("second run report = %+v, want 0 generated / 1 skipped", report)
	}
	if len(sessionRepo.sessions) != 1 {
		t.Errorf("total sessions = %d, want 1", len(sessionRepo.sessions))
	}
}

func TestGenerateSkipsSlotsThatHaveNotEnded(t *testing.T) {
	group := newGroup()
	scheduleRepo := &fakeScheduleRepo{schedules: []*entity.GroupSchedule{
		entity.NewGroupSchedule(group.ID, 3, "18:00", "19:00"), // later today
		entity.NewGroupSchedule(group.ID, 5, "10:00", "11:00"), // Friday, still ahead
	}}
	sessionRepo := &fakeSessionRepo{}
	clock := &fakeClock{now: time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)} // Wednesday noon

	uc := NewGenerateUseCase(scheduleRepo, sessionRepo, clock)

	report, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Generated != 0 || report.Skipped != 2 {
		t.Errorf("report = %+v, want both slots skipped", report)
	}
	if len(sessionRepo.sessions) != 0 {
		t.Errorf("no session may be created before its end time has passed")
	}
}

func TestGenerateIsolatesPerScheduleFailures(t *testing.T) {
	group := newGroup()
	broken := entity.NewGroupSchedule(group.ID, 9, "10:00", "11:00")
	healthy := entity.NewGroupSchedule(group.ID, 1, "08:00", "09:00")
	scheduleRepo := &fakeScheduleRepo{schedules: []*entity.GroupSchedule{broken, healthy}}
	sessionRepo := &fakeSessionRepo{}
	clock := &fakeClock{now: time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)}

	uc := NewGenerateUseCase(scheduleRepo, sessionRepo, clock)

	report, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("batch must not abort on per-schedule failure: %v", err)
	}
	if report.Failed != 1 || report.Generated != 1 {
		t.Errorf("report = %+v, want 1 failed and 1 generated", report)
	}
}

func TestGetCalendarMergesProjections(t *testing.T) {
	group := newGroup()
	groupRepo := &fakeGroupRepo{groups: map[uuid.UUID]*entity.Group{group.ID: group}}
	scheduleRepo := &fakeScheduleRepo{schedules: []*entity.GroupSchedule{
		entity.NewGroupSchedule(group.ID, 2, "10:00", "11:00"),
	}}

	// The first Tuesday is materialized and completed, the second is not; a
	// make-up sits on the Saturday in between.
	persisted := entity.NewGroupSession(group.ID, date(2025, 7, 15), "10:00", "11:00", false, entity.SessionStatusCompleted)
	makeup := entity.NewGroupSession(group.ID, date(2025, 7, 19), "14:00", "15:00", true, entity.SessionStatusCompleted)
	sessionRepo := &fakeSessionRepo{sessions: []*entity.GroupSession{persisted, makeup}}

	uc := NewGetCalendarUseCase(groupRepo, scheduleRepo, sessionRepo)

	entries, err := uc.Execute(context.Background(), GetCalendarInput{
		GroupID: group.ID,
		From:    date(2025, 7, 14),
		To:      date(2025, 7, 27),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	if entries[0].Projected || entries[0].Status != string(entity.SessionStatusCompleted) {
		t.Errorf("persisted session must win over its projection: %+v", entries[0])
	}
	if !entries[1].IsMakeup || entries[1].Projected {
		t.Errorf("make-up must appear as persisted: %+v", entries[1])
	}
	if !entries[2].Projected || !entries[2].Date.Equal(date(2025, 7, 22)) {
		t.Errorf("second Tuesday must be projected: %+v", entries[2])
	}
	if entries[2].SessionID != nil {
		t.Error("projected entries carry no session id")
	}
	if len(sessionRepo.sessions) != 2 {
		t.Error("building the calendar must not persist projections")
	}
}

func TestCreateMakeup(t *testing.T) {
	group := newGroup()
	groupRepo := &fakeGroupRepo{groups: map[uuid.UUID]*entity.Group{group.ID: group}}
	sessionRepo := &fakeSessionRepo{}

	uc := NewCreateMakeupUseCase(groupRepo, sessionRepo)

	session, err := uc.Execute(context.Background(), CreateMakeupInput{
		GroupID:   group.ID,
		Date:      date(2025, 7, 19),
		StartTime: "14:00",
		EndTime:   "15:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Status != entity.SessionStatusCompleted || !session.IsMakeup {
		t.Errorf("make-up must be COMPLETED and flagged, got %+v", session)
	}

	_, err = uc.Execute(context.Background(), CreateMakeupInput{
		GroupID:   group.ID,
		Date:      date(2025, 7, 19),
		StartTime: "14:00",
		EndTime:   "15:00",
	})
	if !errors.Is(err, domainerror.ErrSessionExists) {
		t.Errorf("duplicate slot: expected ErrSessionExists, got %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateMakeupInput{
		GroupID:   group.ID,
		Date:      date(2025, 7, 20),
		StartTime: "15:00",
		EndTime:   "14:00",
	})
	if !errors.Is(err, domainerror.ErrInvalidTimeRange) {
		t.Errorf("inverted range: expected ErrInvalidTimeRange, got %v", err)
	}
}
