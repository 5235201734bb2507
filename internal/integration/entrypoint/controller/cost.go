package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/usecase/costs"
	"github.com/school-office/backend/internal/domain/entity"
	"github.com/school-office/backend/internal/integration/entrypoint/dto"
)

// CostController handles cost and cost template endpoints.
type CostController struct {
	createCostUseCase     *costs.CreateCostUseCase
	listCostsUseCase      *costs.ListCostsUseCase
	updateCostUseCase     *costs.UpdateCostUseCase
	deleteCostUseCase     *costs.DeleteCostUseCase
	createTemplateUseCase *costs.CreateTemplateUseCase
	listTemplatesUseCase  *costs.ListTemplatesUseCase
	updateTemplateUseCase *costs.UpdateTemplateUseCase
	deleteTemplateUseCase *costs.DeleteTemplateUseCase
}

// NewCostController creates a new cost controller instance.
func NewCostController(
	createCostUseCase *costs.CreateCostUseCase,
	listCostsUseCase *costs.ListCostsUseCase,
	updateCostUseCase *costs.UpdateCostUseCase,
	deleteCostUseCase *costs.DeleteCostUseCase,
	createTemplateUseCase *costs.CreateTemplateUseCase,
	listTemplatesUseCase *costs.ListTemplatesUseCase,
	updateTemplateUseCase *costs.UpdateTemplateUseCase,
	deleteTemplateUseCase *costs.DeleteTemplateUseCase,
) *CostController {
	return &CostController{
		createCostUseCase:     createCostUseCase,
		listCostsUseCase:      listCostsUseCase,
		updateCostUseCase:     updateCostUseCase,
		deleteCostUseCase:     deleteCostUseCase,
		createTemplateUseCase: createTemplateUseCase,
		listTemplatesUseCase:  listTemplatesUseCase,
		updateTemplateUseCase: updateTemplateUseCase,
		deleteTemplateUseCase: deleteTemplateUseCase,
	}
}

// CreateCost handles POST /costs requests.
func (c *CostController) CreateCost(ctx *gin.Context) {
	var req dto.CreateCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid due_date format, want YYYY-MM-DD"})
		return
	}
	startDate := dueDate
	if req.StartDate != "" {
		startDate, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid start_date format, want YYYY-MM-DD"})
			return
		}
	}

	input := costs.CreateCostInput{
		Name:      req.Name,
		Amount:    req.Amount.Decimal,
		Type:      entity.CostType(req.Type),
		Frequency: entity.CostFrequency(req.Frequency),
		StartDate: startDate,
		DueDate:   dueDate,
		Notes:     req.Notes,
	}
	if req.GroupID != nil {
		groupID, err := uuid.Parse(*req.GroupID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
			return
		}
		input.GroupID = &groupID
	}

	cost, err := c.createCostUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCostResponse(cost))
}

// ListCosts handles GET /costs requests.
func (c *CostController) ListCosts(ctx *gin.Context) {
	result, err := c.listCostsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCostListResponse(result))
}

// UpdateCost handles PATCH /costs/:id requests.
func (c *CostController) UpdateCost(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid cost ID format"})
		return
	}

	var req dto.UpdateCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := costs.UpdateCostInput{
		CostID: id,
		Name:   req.Name,
		Paid:   req.Paid,
		Notes:  req.Notes,
	}
	if req.Amount != nil {
		amount := req.Amount.Decimal
		input.Amount = &amount
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid due_date format, want YYYY-MM-DD"})
			return
		}
		input.DueDate = &dueDate
	}

	cost, err := c.updateCostUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCostResponse(cost))
}

// DeleteCost handles DELETE /costs/:id requests.
func (c *CostController) DeleteCost(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid cost ID format"})
		return
	}

	if err := c.deleteCostUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateTemplate handles POST /cost-templates requests.
func (c *CostController) CreateTemplate(ctx *gin.Context) {
	var req dto.CreateCostTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := costs.CreateTemplateInput{
		Name:      req.Name,
		Amount:    req.Amount.Decimal,
		Type:      entity.CostType(req.Type),
		Frequency: entity.CostFrequency(req.Frequency),
		Notes:     req.Notes,
	}
	if req.GroupID != nil {
		groupID, err := uuid.Parse(*req.GroupID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
			return
		}
		input.GroupID = &groupID
	}

	template, err := c.createTemplateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCostTemplateResponse(template))
}

// ListTemplates handles GET /cost-templates requests.
func (c *CostController) ListTemplates(ctx *gin.Context) {
	result, err := c.listTemplatesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCostTemplateListResponse(result))
}

// UpdateTemplate handles PATCH /cost-templates/:id requests.
func (c *CostController) UpdateTemplate(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid template ID format"})
		return
	}

	var req dto.UpdateCostTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := costs.UpdateTemplateInput{
		TemplateID: id,
		Name:       req.Name,
		Notes:      req.Notes,
		Active:     req.Active,
	}
	if req.Amount != nil {
		amount := req.Amount.Decimal
		input.Amount = &amount
	}
	if req.Frequency != nil {
		frequency := entity.CostFrequency(*req.Frequency)
		input.Frequency = &frequency
	}

	template, err := c.updateTemplateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCostTemplateResponse(template))
}

// DeleteTemplate handles DELETE /cost-templates/:id requests.
func (c *CostController) DeleteTemplate(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid template ID format"})
		return
	}

	if err := c.deleteTemplateUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
