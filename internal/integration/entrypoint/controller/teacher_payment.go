package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/usecase/costs"
	"github.com/school-office/backend/internal/integration/entrypoint/dto"
)

// TeacherPaymentController handles teacher disbursement endpoints.
type TeacherPaymentController struct {
	createUseCase   *costs.CreateTeacherPaymentUseCase
	listUseCase     *costs.ListTeacherPaymentsUseCase
	markPaidUseCase *costs.MarkTeacherPaymentPaidUseCase
}

// NewTeacherPaymentController creates a new teacher payment controller instance.
func NewTeacherPaymentController(
	createUseCase *costs.CreateTeacherPaymentUseCase,
	listUseCase *costs.ListTeacherPaymentsUseCase,
	markPaidUseCase *costs.MarkTeacherPaymentPaidUseCase,
) *TeacherPaymentController {
	return &TeacherPaymentController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		markPaidUseCase: markPaidUseCase,
	}
}

// Create handles POST /teacher-payments requests.
func (c *TeacherPaymentController) Create(ctx *gin.Context) {
	var req dto.CreateTeacherPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid teacher ID format"})
		return
	}
	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
		return
	}

	input := costs.CreateTeacherPaymentInput{
		TeacherID:  teacherID,
		GroupID:    groupID,
		TotalHours: req.TotalHours.Decimal,
	}
	if req.Amount != nil {
		amount := req.Amount.Decimal
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date format, want YYYY-MM-DD"})
			return
		}
		input.Date = &date
	}

	payment, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTeacherPaymentResponse(payment))
}

// List handles GET /teacher-payments requests filtered by teacher_id or
// group_id.
func (c *TeacherPaymentController) List(ctx *gin.Context) {
	input := costs.ListTeacherPaymentsInput{}
	if raw := ctx.Query("teacher_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid teacher_id format"})
			return
		}
		input.TeacherID = &id
	}
	if raw := ctx.Query("group_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group_id format"})
			return
		}
		input.GroupID = &id
	}
	if input.TeacherID == nil && input.GroupID == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "teacher_id or group_id query parameter is required"})
		return
	}

	payments, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeacherPaymentListResponse(payments))
}

// MarkPaid handles POST /teacher-payments/:id/pay requests.
func (c *TeacherPaymentController) MarkPaid(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid teacher payment ID format"})
		return
	}

	var req dto.MarkTeacherPaymentPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	var paidDate *time.Time
	if req.PaidDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.PaidDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid paid_date format, want YYYY-MM-DD"})
			return
		}
		paidDate = &parsed
	}

	if err := c.markPaidUseCase.Execute(ctx.Request.Context(), id, paidDate); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
