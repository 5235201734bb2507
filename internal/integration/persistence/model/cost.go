package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/domain/entity"
)

// CostModel represents the costs table in the database.
type CostModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Type       string          `gorm:"type:varchar(10);not null"`
	Frequency  string          `gorm:"type:varchar(10);not null"`
	StartDate  time.Time       `gorm:"type:date;not null"`
	DueDate    time.Time       `gorm:"type:date;not null;index"`
	Paid       bool            `gorm:"default:false;index"`
	Notes      string          `gorm:"type:text"`
	TemplateID *uuid.UUID      `gorm:"type:uuid;index"`
	GroupID    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"`

	Template *CostTemplateModel `gorm:"foreignKey:TemplateID;references:ID"`
	Group    *GroupModel        `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName returns the table name for the CostModel.
func (CostModel) TableName() string {
	return "costs"
}

// ToEntity converts a CostModel to a domain Cost entity.
func (m *CostModel) ToEntity() *entity.Cost {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Cost{
		ID:         m.ID,
		Name:       m.Name,
		Amount:     m.Amount,
		Type:       entity.CostType(m.Type),
		Frequency:  entity.CostFrequency(m.Frequency),
		StartDate:  m.StartDate,
		DueDate:    m.DueDate,
		Paid:       m.Paid,
		Notes:      m.Notes,
		TemplateID: m.TemplateID,
		GroupID:    m.GroupID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// CostFromEntity creates a CostModel from a domain Cost entity.
func CostFromEntity(cost *entity.Cost) *CostModel {
	var deletedAt gorm.DeletedAt
	if cost.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *cost.DeletedAt, Valid: true}
	}

	return &CostModel{
		ID:         cost.ID,
		Name:       cost.Name,
		Amount:     cost.Amount,
		Type:       string(cost.Type),
		Frequency:  string(cost.Frequency),
		StartDate:  cost.StartDate,
		DueDate:    cost.DueDate,
		Paid:       cost.Paid,
		Notes:      cost.Notes,
		TemplateID: cost.TemplateID,
		GroupID:    cost.GroupID,
		CreatedAt:  cost.CreatedAt,
		UpdatedAt:  cost.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// CostTemplateModel represents the cost_templates table in the database.
type CostTemplateModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Type      string          `gorm:"type:varchar(10);not null"`
	Frequency string          `gorm:"type:varchar(10);not null"`
	GroupID   *uuid.UUID      `gorm:"type:uuid;index"`
	Notes     string          `gorm:"type:text"`
	Active    bool            `gorm:"default:true;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"`

	Group *GroupModel `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName returns the table name for the CostTemplateModel.
func (CostTemplateModel) TableName() string {
	return "cost_templates"
}

// ToEntity converts a CostTemplateModel to a domain CostTemplate entity.
func (m *CostTemplateModel) ToEntity() *entity.CostTemplate {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.CostTemplate{
		ID:        m.ID,
		Name:      m.Name,
		Amount:    m.Amount,
		Type:      entity.CostType(m.Type),
		Frequency: entity.CostFrequency(m.Frequency),
		GroupID:   m.GroupID,
		Notes:     m.Notes,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// CostTemplateFromEntity creates a CostTemplateModel from a domain CostTemplate entity.
func CostTemplateFromEntity(template *entity.CostTemplate) *CostTemplateModel {
	var deletedAt gorm.DeletedAt
	if template.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *template.DeletedAt, Valid: true}
	}

	return &CostTemplateModel{
		ID:        template.ID,
		Name:      template.Name,
		Amount:    template.Amount,
		Type:      string(template.Type),
		Frequency: string(template.Frequency),
		GroupID:   template.GroupID,
		Notes:     template.Notes,
		Active:    template.Active,
		CreatedAt: template.CreatedAt,
		UpdatedAt: template.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
