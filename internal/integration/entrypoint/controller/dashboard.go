package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-office/backend/internal/application/usecase/dashboard"
	"github.com/school-office/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getMetricsUseCase    *dashboard.GetMetricsUseCase
	getTimeseriesUseCase *dashboard.GetTimeseriesUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getMetricsUseCase *dashboard.GetMetricsUseCase,
	getTimeseriesUseCase *dashboard.GetTimeseriesUseCase,
) *DashboardController {
	return &DashboardController{
		getMetricsUseCase:    getMetricsUseCase,
		getTimeseriesUseCase: getTimeseriesUseCase,
	}
}

// GetMetrics handles GET /dashboard requests.
func (c *DashboardController) GetMetrics(ctx *gin.Context) {
	output, err := c.getMetricsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetTimeseries handles GET /dashboard/timeseries requests.
func (c *DashboardController) GetTimeseries(ctx *gin.Context) {
	output, err := c.getTimeseriesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TimeseriesResponse{Data: output.Data})
}
