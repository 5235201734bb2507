// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/school-office/backend/internal/integration/entrypoint/controller"
	"github.com/school-office/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	studentController        *controller.StudentController
	teacherController        *controller.TeacherController
	groupController          *controller.GroupController
	registrationController   *controller.RegistrationController
	walletController         *controller.WalletController
	sessionController        *controller.SessionController
	costController           *controller.CostController
	teacherPaymentController *controller.TeacherPaymentController
	dashboardController      *controller.DashboardController
	adminController          *controller.AdminController
	walletRateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	studentController *controller.StudentController,
	teacherController *controller.TeacherController,
	groupController *controller.GroupController,
	registrationController *controller.RegistrationController,
	walletController *controller.WalletController,
	sessionController *controller.SessionController,
	costController *controller.CostController,
	teacherPaymentController *controller.TeacherPaymentController,
	dashboardController *controller.DashboardController,
	adminController *controller.AdminController,
	walletRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:         healthController,
		studentController:        studentController,
		teacherController:        teacherController,
		groupController:          groupController,
		registrationController:   registrationController,
		walletController:         walletController,
		sessionController:        sessionController,
		costController:           costController,
		teacherPaymentController: teacherPaymentController,
		dashboardController:      dashboardController,
		adminController:          adminController,
		walletRateLimiter:        walletRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// Engine returns the configured Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Student routes, with the wallet nested under each student
		if r.studentController != nil {
			students := v1.Group("/students")
			{
				students.POST("", r.studentController.Create)
				students.GET("", r.studentController.List)
				students.GET("/:id", r.studentController.Get)
				students.PATCH("/:id", r.studentController.Update)
				students.DELETE("/:id", r.studentController.Delete)

				if r.walletController != nil {
					students.GET("/:id/wallet", r.walletController.Get)
					if r.walletRateLimiter != nil {
						students.POST("/:id/wallet/deposit", r.walletRateLimiter.Middleware(), r.walletController.Deposit)
						students.POST("/:id/wallet/apply", r.walletRateLimiter.Middleware(), r.walletController.Apply)
					} else {
						students.POST("/:id/wallet/deposit", r.walletController.Deposit)
						students.POST("/:id/wallet/apply", r.walletController.Apply)
					}
				}
			}
		}

		// Teacher routes
		if r.teacherController != nil {
			teachers := v1.Group("/teachers")
			{
				teachers.POST("", r.teacherController.Create)
				teachers.GET("", r.teacherController.List)
				teachers.GET("/:id", r.teacherController.Get)
				teachers.PATCH("/:id", r.teacherController.Update)
				teachers.DELETE("/:id", r.teacherController.Delete)
			}
		}

		// Group routes, including summary, calendar and nested schedules
		if r.groupController != nil {
			groups := v1.Group("/groups")
			{
				groups.POST("", r.groupController.Create)
				groups.GET("", r.groupController.List)
				groups.GET("/:id", r.groupController.Get)
				groups.PATCH("/:id", r.groupController.Update)
				groups.DELETE("/:id", r.groupController.Delete)
				groups.GET("/:id/summary", r.groupController.GetSummary)
				groups.GET("/:id/calendar", r.groupController.GetCalendar)
				groups.POST("/:id/schedules", r.groupController.CreateSchedule)
				groups.GET("/:id/schedules", r.groupController.ListSchedules)
				groups.DELETE("/:id/schedules/:schedule_id", r.groupController.DeleteSchedule)
			}
		}

		// Registration routes. The summary route is registered before the
		// parameterized routes so "summary" is never read as an id.
		if r.registrationController != nil {
			registrations := v1.Group("/registrations")
			{
				registrations.GET("/summary", r.registrationController.GetSummary)
				registrations.POST("", r.registrationController.Create)
				registrations.GET("", r.registrationController.List)
				registrations.GET("/:id", r.registrationController.Get)
				registrations.PATCH("/:id/discount", r.registrationController.UpdateDiscount)
				registrations.DELETE("/:id", r.registrationController.Delete)
			}
		}

		// Session routes: make-ups, status updates and deletion. Regular
		// sessions are created by the generator, not through the API.
		if r.sessionController != nil {
			sessions := v1.Group("/sessions")
			{
				sessions.POST("/makeup", r.sessionController.CreateMakeup)
				sessions.PATCH("/:id", r.sessionController.Update)
				sessions.DELETE("/:id", r.sessionController.Delete)
			}
		}

		// Cost and cost template routes
		if r.costController != nil {
			costs := v1.Group("/costs")
			{
				costs.POST("", r.costController.CreateCost)
				costs.GET("", r.costController.ListCosts)
				costs.PATCH("/:id", r.costController.UpdateCost)
				costs.DELETE("/:id", r.costController.DeleteCost)
			}

			templates := v1.Group("/cost-templates")
			{
				templates.POST("", r.costController.CreateTemplate)
				templates.GET("", r.costController.ListTemplates)
				templates.PATCH("/:id", r.costController.UpdateTemplate)
				templates.DELETE("/:id", r.costController.DeleteTemplate)
			}
		}

		// Teacher payment routes
		if r.teacherPaymentController != nil {
			payments := v1.Group("/teacher-payments")
			{
				payments.POST("", r.teacherPaymentController.Create)
				payments.GET("", r.teacherPaymentController.List)
				payments.POST("/:id/pay", r.teacherPaymentController.MarkPaid)
			}
		}

		// Dashboard routes
		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("", r.dashboardController.GetMetrics)
				dashboard.GET("/timeseries", r.dashboardController.GetTimeseries)
			}
		}

		// Admin routes for triggering the generators on demand
		if r.adminController != nil {
			admin := v1.Group("/admin")
			{
				admin.POST("/generate/costs", r.adminController.GenerateCosts)
				admin.POST("/generate/sessions", r.adminController.GenerateSessions)
			}
		}
	}
}
