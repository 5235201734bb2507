package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/usecase/wallet"
	"github.com/school-office/backend/internal/domain/entity"
	"github.com/school-office/backend/internal/integration/entrypoint/dto"
)

// WalletController handles wallet endpoints.
type WalletController struct {
	getWalletUseCase *wallet.GetWalletUseCase
	depositUseCase   *wallet.DepositUseCase
	applyUseCase     *wallet.ApplyUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	getWalletUseCase *wallet.GetWalletUseCase,
	depositUseCase *wallet.DepositUseCase,
	applyUseCase *wallet.ApplyUseCase,
) *WalletController {
	return &WalletController{
		getWalletUseCase: getWalletUseCase,
		depositUseCase:   depositUseCase,
		applyUseCase:     applyUseCase,
	}
}

// Get handles GET /students/:id/wallet requests. The optional limit query
// parameter caps the returned transaction history.
func (c *WalletController) Get(ctx *gin.Context) {
	studentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID format"})
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit parameter"})
			return
		}
	}

	output, err := c.getWalletUseCase.Execute(ctx.Request.Context(), wallet.GetWalletInput{
		StudentID: studentID,
		Limit:     limit,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(studentID.String(), output.Balance, output.Transactions))
}

// Deposit handles POST /students/:id/wallet/deposit requests.
func (c *WalletController) Deposit(ctx *gin.Context) {
	studentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID format"})
		return
	}

	var req dto.DepositRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.depositUseCase.Execute(ctx.Request.Context(), wallet.DepositInput{
		StudentID: studentID,
		Amount:    req.Amount.Decimal,
		Note:      req.Note,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWalletResponse(studentID.String(), output.Balance,
		[]*entity.WalletTransaction{output.Transaction}))
}

// Apply handles POST /students/:id/wallet/apply requests.
func (c *WalletController) Apply(ctx *gin.Context) {
	studentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID format"})
		return
	}

	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	registrationID, err := uuid.Parse(req.RegistrationID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid registration ID format"})
		return
	}

	output, err := c.applyUseCase.Execute(ctx.Request.Context(), wallet.ApplyInput{
		StudentID:      studentID,
		RegistrationID: registrationID,
		Amount:         req.Amount.Decimal,
		Note:           req.Note,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWalletResponse(studentID.String(), output.Balance,
		[]*entity.WalletTransaction{output.Transaction}))
}
