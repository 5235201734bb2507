// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Student represents an enrolled student in the school office system.
type Student struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Phone     string
	Email     string
	GroupID   *uuid.UUID // At most one active group at a time
	HasCV     bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewStudent creates a new Student entity.
func NewStudent(firstName, lastName, phone, email string, groupID *uuid.UUID) *Student {
	now := time.Now().UTC()

	return &Student{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Email:     email,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
