package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

// CreateCostRequest represents the request body for manually recording a cost.
type CreateCostRequest struct {
	Name      string  `json:"name" binding:"required"`
	Amount    Amount  `json:"amount" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	Frequency string  `json:"frequency" binding:"required"`
	StartDate string  `json:"start_date,omitempty"`
	DueDate   string  `json:"due_date" binding:"required"`
	Notes     string  `json:"notes,omitempty"`
	GroupID   *string `json:"group_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateCostRequest represents a partial cost update.
type UpdateCostRequest struct {
	Name    *string `json:"name,omitempty"`
	Amount  *Amount `json:"amount,omitempty"`
	DueDate *string `json:"due_date,omitempty"`
	Paid    *bool   `json:"paid,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// CostResponse represents a cost in API responses.
type CostResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Frequency  string          `json:"frequency"`
	StartDate  string          `json:"start_date"`
	DueDate    string          `json:"due_date"`
	Paid       bool            `json:"paid"`
	Notes      string          `json:"notes,omitempty"`
	TemplateID *string         `json:"template_id,omitempty"`
	GroupID    *string         `json:"group_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CostListResponse represents the response for listing costs.
type CostListResponse struct {
	Costs []CostResponse `json:"costs"`
}

// CreateCostTemplateRequest represents the request body for creating a
// recurring cost template.
type CreateCostTemplateRequest struct {
	Name      string  `json:"name" binding:"required"`
	Amount    Amount  `json:"amount" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	Frequency string  `json:"frequency" binding:"required"`
	GroupID   *string `json:"group_id,omitempty" binding:"omitempty,uuid"`
	Notes     string  `json:"notes,omitempty"`
}

// UpdateCostTemplateRequest represents a partial template update.
type UpdateCostTemplateRequest struct {
	Name      *string `json:"name,omitempty"`
	Amount    *Amount `json:"amount,omitempty"`
	Frequency *string `json:"frequency,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// CostTemplateResponse represents a cost template in API responses.
type CostTemplateResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Frequency string          `json:"frequency"`
	GroupID   *string         `json:"group_id,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
}

// CostTemplateListResponse represents the response for listing templates.
type CostTemplateListResponse struct {
	Templates []CostTemplateResponse `json:"templates"`
}

// ToCostResponse converts a domain Cost entity to a DTO.
func ToCostResponse(c *entity.Cost) CostResponse {
	var templateID, groupID *string
	if c.TemplateID != nil {
		id := c.TemplateID.String()
		templateID = &id
	}
	if c.GroupID != nil {
		id := c.GroupID.String()
		groupID = &id
	}
	return CostResponse{
		ID:         c.ID.String(),
		Name:       c.Name,
		Amount:     c.Amount,
		Type:       string(c.Type),
		Frequency:  string(c.Frequency),
		StartDate:  c.StartDate.Format("2006-01-02"),
		DueDate:    c.DueDate.Format("2006-01-02"),
		Paid:       c.Paid,
		Notes:      c.Notes,
		TemplateID: templateID,
		GroupID:    groupID,
		CreatedAt:  c.CreatedAt,
	}
}

// ToCostListResponse converts costs to a list response.
func ToCostListResponse(costs []*entity.Cost) CostListResponse {
	out := make([]CostResponse, len(costs))
	for i, c := range costs {
		out[i] = ToCostResponse(c)
	}
	return CostListResponse{Costs: out}
}

// ToCostTemplateResponse converts a domain CostTemplate entity to a DTO.
func ToCostTemplateResponse(t *entity.CostTemplate) CostTemplateResponse {
	var groupID *string
	if t.GroupID != nil {
		id := t.GroupID.String()
		groupID = &id
	}
	return CostTemplateResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Amount:    t.Amount,
		Type:      string(t.Type),
		Frequency: string(t.Frequency),
		GroupID:   groupID,
		Notes:     t.Notes,
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
	}
}

// ToCostTemplateListResponse converts templates to a list response.
func ToCostTemplateListResponse(templates []*entity.CostTemplate) CostTemplateListResponse {
	out := make([]CostTemplateResponse, len(templates))
	for i, t := range templates {
		out[i] = ToCostTemplateResponse(t)
	}
	return CostTemplateListResponse{Templates: out}
}
