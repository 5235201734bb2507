// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/usecase/ledger"
	"github.com/school-office/backend/internal/application/usecase/registration"
	domainerror "github.com/school-office/backend/internal/domain/error"
	"github.com/school-office/backend/internal/integration/entrypoint/dto"
)

// RegistrationController handles registration endpoints.
type RegistrationController struct {
	createUseCase         *registration.CreateUseCase
	getUseCase            *registration.GetUseCase
	listUseCase           *registration.ListUseCase
	deleteUseCase         *registration.DeleteUseCase
	getSummaryUseCase     *ledger.GetSummaryUseCase
	updateDiscountUseCase *ledger.UpdateDiscountUseCase
}

// NewRegistrationController creates a new registration controller instance.
func NewRegistrationController(
	createUseCase *registration.CreateUseCase,
	getUseCase *registration.GetUseCase,
	listUseCase *registration.ListUseCase,
	deleteUseCase *registration.DeleteUseCase,
	getSummaryUseCase *ledger.GetSummaryUseCase,
	updateDiscountUseCase *ledger.UpdateDiscountUseCase,
) *RegistrationController {
	return &RegistrationController{
		createUseCase:         createUseCase,
		getUseCase:            getUseCase,
		listUseCase:           listUseCase,
		deleteUseCase:         deleteUseCase,
		getSummaryUseCase:     getSummaryUseCase,
		updateDiscountUseCase: updateDiscountUseCase,
	}
}

// Create handles POST /registrations requests.
func (c *RegistrationController) Create(ctx *gin.Context) {
	var req dto.CreateRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID format"})
		return
	}
	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
		return
	}

	input := registration.CreateInput{
		StudentID:   studentID,
		GroupID:     groupID,
		AgreedPrice: req.AgreedPrice.Decimal,
	}
	if req.DiscountAmount != nil {
		input.DiscountAmount = req.DiscountAmount.Decimal
	}
	if req.DepositPct != nil {
		input.DepositPct = req.DepositPct.Decimal
	}

	reg, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

// Get handles GET /registrations/:id requests.
func (c *RegistrationController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid registration ID format"})
		return
	}

	reg, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

// List handles GET /registrations requests filtered by student_id and/or
// group_id.
func (c *RegistrationController) List(ctx *gin.Context) {
	input := registration.ListInput{}
	if raw := ctx.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student_id format"})
			return
		}
		input.StudentID = &id
	}
	if raw := ctx.Query("group_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group_id format"})
			return
		}
		input.GroupID = &id
	}
	if input.StudentID == nil && input.GroupID == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "student_id or group_id query parameter is required"})
		return
	}

	regs, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRegistrationListResponse(regs))
}

// Delete handles DELETE /registrations/:id requests.
func (c *RegistrationController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid registration ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetSummary handles GET /registrations/summary requests. Both student_id and
// group_id are required; the summary is the ledger view of one registration.
func (c *RegistrationController) GetSummary(ctx *gin.Context) {
	studentID, err := uuid.Parse(ctx.Query("student_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or missing student_id"})
		return
	}
	groupID, err := uuid.Parse(ctx.Query("group_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or missing group_id"})
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), ledger.GetSummaryInput{
		StudentID: studentID,
		GroupID:   groupID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRegistrationSummaryResponse(&output.Summary))
}

// UpdateDiscount handles PATCH /registrations/:id/discount requests.
func (c *RegistrationController) UpdateDiscount(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid registration ID format"})
		return
	}

	var req dto.UpdateDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidDiscount),
		})
		return
	}

	input := ledger.UpdateDiscountInput{RegistrationID: id}
	if req.DiscountAmount != nil {
		amount := req.DiscountAmount.Decimal
		input.DiscountAmount = &amount
	}
	if req.DiscountPct != nil {
		pct := req.DiscountPct.Decimal
		input.DiscountPct = &pct
	}

	output, err := c.updateDiscountUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRegistrationSummaryResponse(&output.Summary))
}

// handleDomainError maps typed domain errors to HTTP responses. It is shared
// by every controller in this package.
func handleDomainError(ctx *gin.Context, err error) {
	var regErr *domainerror.RegistrationError
	if errors.As(err, &regErr) {
		ctx.JSON(registrationErrorStatus(regErr.Code), dto.ErrorResponse{
			Error: regErr.Message,
			Code:  string(regErr.Code),
		})
		return
	}

	var walletErr *domainerror.WalletError
	if errors.As(err, &walletErr) {
		ctx.JSON(walletErrorStatus(walletErr.Code), dto.ErrorResponse{
			Error: walletErr.Message,
			Code:  string(walletErr.Code),
		})
		return
	}

	var genErr *domainerror.GenerationError
	if errors.As(err, &genErr) {
		ctx.JSON(generationErrorStatus(genErr.Code), dto.ErrorResponse{
			Error: genErr.Message,
			Code:  string(genErr.Code),
		})
		return
	}

	// Bare sentinels from repositories that skipped the typed wrapper.
	switch {
	case errors.Is(err, domainerror.ErrTeacherPaymentNotFound),
		errors.Is(err, domainerror.ErrRegistrationNotFound),
		errors.Is(err, domainerror.ErrStudentNotFound),
		errors.Is(err, domainerror.ErrGroupNotFound),
		errors.Is(err, domainerror.ErrTeacherNotFound),
		errors.Is(err, domainerror.ErrSessionNotFound),
		errors.Is(err, domainerror.ErrScheduleNotFound),
		errors.Is(err, domainerror.ErrCostNotFound),
		errors.Is(err, domainerror.ErrTemplateNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrSessionExists):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeSessionExists),
		})
	case errors.Is(err, domainerror.ErrInsufficientCredit):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInsufficientCredit),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// registrationErrorStatus maps registration error codes to HTTP status codes.
func registrationErrorStatus(code domainerror.RegistrationErrorCode) int {
	switch code {
	case domainerror.ErrCodeRegistrationNotFound,
		domainerror.ErrCodeStudentNotFound,
		domainerror.ErrCodeGroupNotFound,
		domainerror.ErrCodeTeacherNotFound,
		domainerror.ErrCodeTeacherPaymentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRegistrationExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidDiscount,
		domainerror.ErrCodeInvalidPrice:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// walletErrorStatus maps wallet error codes to HTTP status codes.
func walletErrorStatus(code domainerror.WalletErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInsufficientCredit:
		return http.StatusBadRequest
	case domainerror.ErrCodeWalletStudentNotFound,
		domainerror.ErrCodeWalletRegistrationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// generationErrorStatus maps generator error codes to HTTP status codes.
func generationErrorStatus(code domainerror.GenerationErrorCode) int {
	switch code {
	case domainerror.ErrCodeTemplateNotFound,
		domainerror.ErrCodeCostNotFound,
		domainerror.ErrCodeScheduleNotFound,
		domainerror.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSessionExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeInvalidDayOfWeek,
		domainerror.ErrCodeInvalidTimeRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
