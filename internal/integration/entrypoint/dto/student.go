package dto

import (
	"time"

	"github.com/school-office/backend/internal/domain/entity"
)

// CreateStudentRequest represents the request body for student creation.
type CreateStudentRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Email     string  `json:"email,omitempty"`
	GroupID   *string `json:"group_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateStudentRequest represents a partial student update.
type UpdateStudentRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	GroupID   *string `json:"group_id,omitempty" binding:"omitempty,uuid"`
	HasCV     *bool   `json:"has_cv,omitempty"`
}

// StudentResponse represents a student in API responses.
type StudentResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name,omitempty"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	GroupID   *string   `json:"group_id,omitempty"`
	HasCV     bool      `json:"has_cv"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentListResponse represents the response for listing students.
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
}

// ToStudentResponse converts a domain Student entity to a DTO.
func ToStudentResponse(s *entity.Student) StudentResponse {
	var groupID *string
	if s.GroupID != nil {
		id := s.GroupID.String()
		groupID = &id
	}
	return StudentResponse{
		ID:        s.ID.String(),
		FirstName: s.FirstName,
		LastName:  s.LastName,
		FullName:  s.FullName(),
		Phone:     s.Phone,
		Email:     s.Email,
		GroupID:   groupID,
		HasCV:     s.HasCV,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToStudentListResponse converts students to a list response.
func ToStudentListResponse(students []*entity.Student) StudentListResponse {
	out := make([]StudentResponse, len(students))
	for i, s := range students {
		out[i] = ToStudentResponse(s)
	}
	return StudentListResponse{Students: out}
}
