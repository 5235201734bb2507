package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

// CreateTeacherRequest represents the request body for teacher creation.
type CreateTeacherRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	HourlyRate Amount `json:"hourly_rate" binding:"required"`
}

// UpdateTeacherRequest represents a partial teacher update.
type UpdateTeacherRequest struct {
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	HourlyRate *Amount `json:"hourly_rate,omitempty"`
}

// TeacherResponse represents a teacher in API responses.
type TeacherResponse struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Email      string          `json:"email,omitempty"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TeacherListResponse represents the response for listing teachers.
type TeacherListResponse struct {
	Teachers []TeacherResponse `json:"teachers"`
}

// ToTeacherResponse converts a domain Teacher entity to a DTO.
func ToTeacherResponse(t *entity.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:         t.ID.String(),
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		Phone:      t.Phone,
		Email:      t.Email,
		HourlyRate: t.HourlyRate,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// ToTeacherListResponse converts teachers to a list response.
func ToTeacherListResponse(teachers []*entity.Teacher) TeacherListResponse {
	out := make([]TeacherResponse, len(teachers))
	for i, t := range teachers {
		out[i] = ToTeacherResponse(t)
	}
	return TeacherListResponse{Teachers: out}
}
