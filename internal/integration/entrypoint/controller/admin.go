package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-office/backend/internal/application/usecase/costgen"
	"github.com/school-office/backend/internal/application/usecase/sessiongen"
	"github.com/school-office/backend/internal/integration/entrypoint/dto"
)

// AdminController exposes the generator jobs as on-demand endpoints. The
// same use cases run on the scheduler; triggering them here is safe because
// generation is idempotent.
type AdminController struct {
	generateCostsUseCase    *costgen.GenerateUseCase
	generateSessionsUseCase *sessiongen.GenerateUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	generateCostsUseCase *costgen.GenerateUseCase,
	generateSessionsUseCase *sessiongen.GenerateUseCase,
) *AdminController {
	return &AdminController{
		generateCostsUseCase:    generateCostsUseCase,
		generateSessionsUseCase: generateSessionsUseCase,
	}
}

// GenerateCosts handles POST /admin/generate/costs requests.
func (c *AdminController) GenerateCosts(ctx *gin.Context) {
	report, err := c.generateCostsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GenerationReportResponse{
		Job:       "generate_costs",
		Generated: report.Generated,
		Skipped:   report.Skipped,
		Failed:    report.Failed,
	})
}

// GenerateSessions handles POST /admin/generate/sessions requests.
func (c *AdminController) GenerateSessions(ctx *gin.Context) {
	report, err := c.generateSessionsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GenerationReportResponse{
		Job:       "generate_sessions",
		Generated: report.Generated,
		Skipped:   report.Skipped,
		Failed:    report.Failed,
	})
}
