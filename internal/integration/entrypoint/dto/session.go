package dto

import (
	"time"

	"github.com/school-office/backend/internal/application/usecase/sessiongen"
	"github.com/school-office/backend/internal/domain/entity"
)

// CreateScheduleRequest represents the request body for adding a weekly slot.
type CreateScheduleRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// ScheduleResponse represents a weekly slot in API responses.
type ScheduleResponse struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

// ScheduleListResponse represents the response for listing a group's slots.
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// CreateMakeupRequest represents the request body for inserting a make-up
// session.
type CreateMakeupRequest struct {
	GroupID   string `json:"group_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// UpdateSessionRequest represents a session status change.
type UpdateSessionRequest struct {
	Status string `json:"status" binding:"required"`
}

// SessionResponse represents a session in API responses.
type SessionResponse struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	IsMakeup  bool      `json:"is_makeup"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionListResponse represents the response for listing sessions.
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// CalendarEntryResponse represents one calendar slot, persisted or projected.
type CalendarEntryResponse struct {
	SessionID *string `json:"session_id,omitempty"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Status    string  `json:"status"`
	IsMakeup  bool    `json:"is_makeup"`
	Projected bool    `json:"projected"`
}

// CalendarResponse represents the synthesized calendar for a group.
type CalendarResponse struct {
	GroupID string                  `json:"group_id"`
	From    string                  `json:"from"`
	To      string                  `json:"to"`
	Entries []CalendarEntryResponse `json:"entries"`
}

// ToScheduleResponse converts a domain GroupSchedule entity to a DTO.
func ToScheduleResponse(s *entity.GroupSchedule) ScheduleResponse {
	return ScheduleResponse{
		ID:        s.ID.String(),
		GroupID:   s.GroupID.String(),
		DayOfWeek: s.DayOfWeek,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		CreatedAt: s.CreatedAt,
	}
}

// ToScheduleListResponse converts schedules to a list response.
func ToScheduleListResponse(schedules []*entity.GroupSchedule) ScheduleListResponse {
	out := make([]ScheduleResponse, len(schedules))
	for i, s := range schedules {
		out[i] = ToScheduleResponse(s)
	}
	return ScheduleListResponse{Schedules: out}
}

// ToSessionResponse converts a domain GroupSession entity to a DTO.
func ToSessionResponse(s *entity.GroupSession) SessionResponse {
	return SessionResponse{
		ID:        s.ID.String(),
		GroupID:   s.GroupID.String(),
		Date:      s.Date.Format("2006-01-02"),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		IsMakeup:  s.IsMakeup,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
}

// ToSessionListResponse converts sessions to a list response.
func ToSessionListResponse(sessions []*entity.GroupSession) SessionListResponse {
	out := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		out[i] = ToSessionResponse(s)
	}
	return SessionListResponse{Sessions: out}
}

// ToCalendarResponse converts calendar entries to a DTO.
func ToCalendarResponse(groupID string, from, to time.Time, entries []sessiongen.CalendarEntry) CalendarResponse {
	out := make([]CalendarEntryResponse, len(entries))
	for i, e := range entries {
		var sessionID *string
		if e.SessionID != nil {
			id := e.SessionID.String()
			sessionID = &id
		}
		out[i] = CalendarEntryResponse{
			SessionID: sessionID,
			Date:      e.Date.Format("2006-01-02"),
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Status:    string(e.Status),
			IsMakeup:  e.IsMakeup,
			Projected: e.Projected,
		}
	}
	return CalendarResponse{
		GroupID: groupID,
		From:    from.Format("2006-01-02"),
		To:      to.Format("2006-01-02"),
		Entries: out,
	}
}
