package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostType distinguishes variable from fixed costs.
type CostType string

const (
	CostTypeVariable CostType = "variable"
	CostTypeFixed    CostType = "fixed"
)

// CostFrequency is the recurrence period of a cost template.
type CostFrequency string

const (
	CostFrequencyDaily   CostFrequency = "daily"
	CostFrequencyWeekly  CostFrequency = "weekly"
	CostFrequencyMonthly CostFrequency = "monthly"
	CostFrequencyYearly  CostFrequency = "yearly"
)

// IsValidCostFrequency validates a cost frequency value.
func IsValidCostFrequency(f CostFrequency) bool {
	switch f {
	case CostFrequencyDaily, CostFrequencyWeekly, CostFrequencyMonthly, CostFrequencyYearly:
		return true
	}
	return false
}

// Cost is a single financial obligation, either entered manually or
// materialized from a CostTemplate by the recurring cost generator.
type Cost struct {
	ID         uuid.UUID
	Name       string
	Amount     decimal.Decimal
	Type       CostType
	Frequency  CostFrequency
	StartDate  time.Time
	DueDate    time.Time
	Paid       bool
	Notes      string
	TemplateID *uuid.UUID
	GroupID    *uuid.UUID // Nil for general costs with no group attribution
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// NewCost creates a new Cost entity.
func NewCost(name string, amount decimal.Decimal, costType CostType, frequency CostFrequency, startDate, dueDate time.Time, notes string, templateID, groupID *uuid.UUID) *Cost {
	now := time.Now().UTC()

	return &Cost{
		ID:         uuid.New(),
		Name:       name,
		Amount:     amount,
		Type:       costType,
		Frequency:  frequency,
		StartDate:  startDate,
		DueDate:    dueDate,
		Notes:      notes,
		TemplateID: templateID,
		GroupID:    groupID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CostTemplate is a recurrence rule from which concrete Cost rows are
// periodically generated.
type CostTemplate struct {
	ID        uuid.UUID
	Name      string
	Amount    decimal.Decimal
	Type      CostType
	Frequency CostFrequency
	GroupID   *uuid.UUID // Nil means the generated costs are general
	Notes     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewCostTemplate creates a new CostTemplate entity.
func NewCostTemplate(name string, amount decimal.Decimal, costType CostType, frequency CostFrequency, groupID *uuid.UUID, notes string) *CostTemplate {
	now := time.Now().UTC()

	return &CostTemplate{
		ID:        uuid.New(),
		Name:      name,
		Amount:    amount,
		Type:      costType,
		Frequency: frequency,
		GroupID:   groupID,
		Notes:     notes,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
