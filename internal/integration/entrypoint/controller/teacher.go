package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/usecase/people"
	"github.com/school-office/backend/internal/integration/entrypoint/dto"
)

// TeacherController handles teacher endpoints.
type TeacherController struct {
	createUseCase *people.CreateTeacherUseCase
	getUseCase    *people.GetTeacherUseCase
	listUseCase   *people.ListTeachersUseCase
	updateUseCase *people.UpdateTeacherUseCase
	deleteUseCase *people.DeleteTeacherUseCase
}

// NewTeacherController creates a new teacher controller instance.
func NewTeacherController(
	createUseCase *people.CreateTeacherUseCase,
	getUseCase *people.GetTeacherUseCase,
	listUseCase *people.ListTeachersUseCase,
	updateUseCase *people.UpdateTeacherUseCase,
	deleteUseCase *people.DeleteTeacherUseCase,
) *TeacherController {
	return &TeacherController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /teachers requests.
func (c *TeacherController) Create(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	teacher, err := c.createUseCase.Execute(ctx.Request.Context(), people.CreateTeacherInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Email:      req.Email,
		HourlyRate: req.HourlyRate.Decimal,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTeacherResponse(teacher))
}

// Get handles GET /teachers/:id requests.
func (c *TeacherController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid teacher ID format"})
		return
	}

	teacher, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeacherResponse(teacher))
}

// List handles GET /teachers requests.
func (c *TeacherController) List(ctx *gin.Context) {
	teachers, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeacherListResponse(teachers))
}

// Update handles PATCH /teachers/:id requests.
func (c *TeacherController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid teacher ID format"})
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := people.UpdateTeacherInput{
		TeacherID: id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	if req.HourlyRate != nil {
		rate := req.HourlyRate.Decimal
		input.HourlyRate = &rate
	}

	teacher, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeacherResponse(teacher))
}

// Delete handles DELETE /teachers/:id requests.
func (c *TeacherController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid teacher ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
