package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Group represents a class group with a catalog price and an optional teacher.
type Group struct {
	ID          uuid.UUID
	Name        string
	Level       string
	WeeklyHours decimal.Decimal
	TotalHours  decimal.Decimal
	Price       decimal.Decimal // Catalog/list price, before per-student negotiation
	StartDate   *time.Time      // Nil until the group is started
	EndDate     *time.Time
	TeacherID   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewGroup creates a new Group entity.
func NewGroup(name, level string, weeklyHours, totalHours, price decimal.Decimal, teacherID *uuid.UUID) *Group {
	now := time.Now().UTC()

	return &Group{
		ID:          uuid.New(),
		Name:        name,
		Level:       level,
		WeeklyHours: weeklyHours,
		TotalHours:  totalHours,
		Price:       price,
		TeacherID:   teacherID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DurationWeeks returns the number of weeks the group runs once started,
// rounded up. Returns 0 when weekly hours are not configured.
func (g *Group) DurationWeeks() int {
	if g.WeeklyHours.IsZero() || g.WeeklyHours.IsNegative() {
		return 0
	}
	weeks := g.TotalHours.Div(g.WeeklyHours).Ceil()
	return int(weeks.IntPart())
}

// Started reports whether the group has been started.
func (g *Group) Started() bool {
	return g.StartDate != nil
}
