package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/usecase/people"
	"github.com/school-office/backend/internal/integration/entrypoint/dto"
)

// StudentController handles student endpoints.
type StudentController struct {
	createUseCase *people.CreateStudentUseCase
	getUseCase    *people.GetStudentUseCase
	listUseCase   *people.ListStudentsUseCase
	updateUseCase *people.UpdateStudentUseCase
	deleteUseCase *people.DeleteStudentUseCase
}

// NewStudentController creates a new student controller instance.
func NewStudentController(
	createUseCase *people.CreateStudentUseCase,
	getUseCase *people.GetStudentUseCase,
	listUseCase *people.ListStudentsUseCase,
	updateUseCase *people.UpdateStudentUseCase,
	deleteUseCase *people.DeleteStudentUseCase,
) *StudentController {
	return &StudentController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /students requests.
func (c *StudentController) Create(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := people.CreateStudentInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	if req.GroupID != nil {
		groupID, err := uuid.Parse(*req.GroupID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
			return
		}
		input.GroupID = &groupID
	}

	student, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStudentResponse(student))
}

// Get handles GET /students/:id requests.
func (c *StudentController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID format"})
		return
	}

	student, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// List handles GET /students requests.
func (c *StudentController) List(ctx *gin.Context) {
	students, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStudentListResponse(students))
}

// Update handles PATCH /students/:id requests.
func (c *StudentController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID format"})
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := people.UpdateStudentInput{
		StudentID: id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		HasCV:     req.HasCV,
	}
	if req.GroupID != nil {
		groupID, err := uuid.Parse(*req.GroupID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid group ID format"})
			return
		}
		input.GroupID = &groupID
	}

	student, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// Delete handles DELETE /students/:id requests.
func (c *StudentController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
