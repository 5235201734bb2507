package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/usecase/groupcost"
	"github.com/school-office/backend/internal/application/usecase/groups"
	"github.com/school-office/backend/internal/application/usecase/sessiongen"
	"github.com/school-office/backend/internal/integration/entrypoint/dto"
)

// GroupController handles group endpoints, including the financial summary,
// the synthesized calendar, and the nested schedule routes.
type GroupController struct {
	createUseCase         *groups.CreateGroupUseCase
	getUseCase            *groups.GetGroupUseCase
	listUseCase           *groups.ListGroupsUseCase
	updateUseCase         *groups.UpdateGroupUseCase
	deleteUseCase         *groups.DeleteGroupUseCase
	getSummaryUseCase     *groupcost.GetSummaryUseCase
	getCalendarUseCase    *sessiongen.GetCalendarUseCase
	createScheduleUseCase *groups.CreateScheduleUseCase
	listSchedulesUseCase  *groups.ListSchedulesUseCase
	deleteScheduleUseCase *groups.DeleteScheduleUseCase
}

// NewGroupController creates a new group controller instance.
func NewGroupController(
	createUseCase *groups.CreateGroupUseCase,
	getUseCase *groups.GetGroupUseCase,
	listUseCase *groups.ListGroupsUseCase,
	updateUseCase *groups.UpdateGroupUseCase,
	deleteUseCase *groups.DeleteGroupUseCase,
	getSummaryUseCase *groupcost.GetSummaryUseCase,
	getCalendarUseCase *sessiongen.GetCalendarUseCase,
	createScheduleUseCase *groups.CreateScheduleUseCase,
	listSchedulesUseCase *groups.ListSchedulesUseCase,
	deleteScheduleUseCase *groups.DeleteScheduleUseCase,
) *GroupController {
	return &GroupController{
		createUseCase:         createUseCase,
		getUseCase:            getUseCase,
		listUseCase:           listUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		getSummaryUseCase:     getSummaryUseCase,
		getCalendarUseCase:    getCalendarUseCase,
		createScheduleUseCase: createScheduleUseCase,
		listSchedulesUseCase:  listSchedulesUseCase,
		deleteScheduleUseCase: deleteScheduleUseCase,
	}
}

// Create handles POST /groups requests.
func (c *GroupController) Create(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := groups.CreateGroupInput{
		Name:        req.Name,
		Level:       req.Level,
		WeeklyHours: req.WeeklyHours.Decimal,
		TotalHours:  req.TotalHours.Decimal,
		Price:       req.Price.Decimal,
	}
	if req.TeacherID != nil {
		teacherID, err := uuid.Parse(*req.TeacherID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid teacher ID format"})
			return
		}
		input.TeacherID = &teacherID
	}

	group, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGroupResponse(group))
}

// Get handles GET /groups/:id requests.
func (c *GroupController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
		return
	}

	group, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// List handles GET /groups requests.
func (c *GroupController) List(ctx *gin.Context) {
	result, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupListResponse(result))
}

// Update handles PATCH /groups/:id requests.
func (c *GroupController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
		return
	}

	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := groups.UpdateGroupInput{
		GroupID:   id,
		Name:      req.Name,
		Level:     req.Level,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.WeeklyHours != nil {
		v := req.WeeklyHours.Decimal
		input.WeeklyHours = &v
	}
	if req.TotalHours != nil {
		v := req.TotalHours.Decimal
		input.TotalHours = &v
	}
	if req.Price != nil {
		v := req.Price.Decimal
		input.Price = &v
	}
	if req.TeacherID != nil {
		teacherID, err := uuid.Parse(*req.TeacherID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid teacher ID format"})
			return
		}
		input.TeacherID = &teacherID
	}

	group, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// Delete handles DELETE /groups/:id requests.
func (c *GroupController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetSummary handles GET /groups/:id/summary requests.
func (c *GroupController) GetSummary(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
		return
	}

	summary, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), groupcost.GetSummaryInput{GroupID: id})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupSummaryResponse(summary))
}

// GetCalendar handles GET /groups/:id/calendar requests. The from and to
// query parameters bound the inclusive date range.
func (c *GroupController) GetCalendar(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
		return
	}

	from, err := time.Parse("2006-01-02", ctx.Query("from"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or missing from parameter"})
		return
	}
	to, err := time.Parse("2006-01-02", ctx.Query("to"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or missing to parameter"})
		return
	}

	entries, err := c.getCalendarUseCase.Execute(ctx.Request.Context(), sessiongen.GetCalendarInput{
		GroupID: id,
		From:    from,
		To:      to,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(id.String(), from, to, entries))
}

// CreateSchedule handles POST /groups/:id/schedules requests.
func (c *GroupController) CreateSchedule(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
		return
	}

	var req dto.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	schedule, err := c.createScheduleUseCase.Execute(ctx.Request.Context(), groups.CreateScheduleInput{
		GroupID:   id,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToScheduleResponse(schedule))
}

// ListSchedules handles GET /groups/:id/schedules requests.
func (c *GroupController) ListSchedules(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
		return
	}

	schedules, err := c.listSchedulesUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScheduleListResponse(schedules))
}

// DeleteSchedule handles DELETE /groups/:id/schedules/:schedule_id requests.
func (c *GroupController) DeleteSchedule(ctx *gin.Context) {
	scheduleID, err := uuid.Parse(ctx.Param("schedule_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid schedule ID format"})
		return
	}

	if err := c.deleteScheduleUseCase.Execute(ctx.Request.Context(), scheduleID); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
