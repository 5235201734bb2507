package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/usecase/sessiongen"
	"github.com/school-office/backend/internal/domain/entity"
	"github.com/school-office/backend/internal/integration/entrypoint/dto"
)

// SessionController handles session endpoints.
type SessionController struct {
	createMakeupUseCase *sessiongen.CreateMakeupUseCase
	updateUseCase       *sessiongen.UpdateSessionUseCase
	deleteUseCase       *sessiongen.DeleteSessionUseCase
}

// NewSessionController creates a new session controller instance.
func NewSessionController(
	createMakeupUseCase *sessiongen.CreateMakeupUseCase,
	updateUseCase *sessiongen.UpdateSessionUseCase,
	deleteUseCase *sessiongen.DeleteSessionUseCase,
) *SessionController {
	return &SessionController{
		createMakeupUseCase: createMakeupUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
	}
}

// CreateMakeup handles POST /sessions/makeup requests.
func (c *SessionController) CreateMakeup(ctx *gin.Context) {
	var req dto.CreateMakeupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date format, want YYYY-MM-DD"})
		return
	}

	session, err := c.createMakeupUseCase.Execute(ctx.Request.Context(), sessiongen.CreateMakeupInput{
		GroupID:   groupID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

// Update handles PATCH /sessions/:id requests.
func (c *SessionController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid session ID format"})
		return
	}

	var req dto.UpdateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	session, err := c.updateUseCase.Execute(ctx.Request.Context(), sessiongen.UpdateSessionInput{
		SessionID: id,
		Status:    entity.SessionStatus(req.Status),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// Delete handles DELETE /sessions/:id requests.
func (c *SessionController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid session ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
