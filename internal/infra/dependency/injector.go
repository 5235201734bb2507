// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/school-office/backend/config"
	"github.com/school-office/backend/internal/application/usecase/costgen"
	"github.com/school-office/backend/internal/application/usecase/costs"
	"github.com/school-office/backend/internal/application/usecase/dashboard"
	"github.com/school-office/backend/internal/application/usecase/groupcost"
	"github.com/school-office/backend/internal/application/usecase/groups"
	"github.com/school-office/backend/internal/application/usecase/ledger"
	"github.com/school-office/backend/internal/application/usecase/people"
	"github.com/school-office/backend/internal/application/usecase/registration"
	"github.com/school-office/backend/internal/application/usecase/sessiongen"
	"github.com/school-office/backend/internal/application/usecase/wallet"
	"github.com/school-office/backend/internal/infra/scheduler"
	"github.com/school-office/backend/internal/infra/server/router"
	"github.com/school-office/backend/internal/integration/adapters"
	"github.com/school-office/backend/internal/integration/entrypoint/controller"
	"github.com/school-office/backend/internal/integration/entrypoint/middleware"
	"github.com/school-office/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Router    *router.Router
	Scheduler *scheduler.Scheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	studentRepo := persistence.NewStudentRepository(db)
	teacherRepo := persistence.NewTeacherRepository(db)
	groupRepo := persistence.NewGroupRepository(db)
	scheduleRepo := persistence.NewScheduleRepository(db)
	sessionRepo := persistence.NewSessionRepository(db)
	registrationRepo := persistence.NewRegistrationRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	walletRepo := persistence.NewWalletRepository(db)
	costRepo := persistence.NewCostRepository(db)
	templateRepo := persistence.NewCostTemplateRepository(db)
	teacherPaymentRepo := persistence.NewTeacherPaymentRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Create adapters/services
	clock := adapters.NewRealClock()
	walletLocks := wallet.NewLocks()

	// Create people use cases
	createStudentUseCase := people.NewCreateStudentUseCase(studentRepo, groupRepo)
	getStudentUseCase := people.NewGetStudentUseCase(studentRepo)
	listStudentsUseCase := people.NewListStudentsUseCase(studentRepo)
	updateStudentUseCase := people.NewUpdateStudentUseCase(studentRepo, groupRepo)
	deleteStudentUseCase := people.NewDeleteStudentUseCase(studentRepo)
	createTeacherUseCase := people.NewCreateTeacherUseCase(teacherRepo)
	getTeacherUseCase := people.NewGetTeacherUseCase(teacherRepo)
	listTeachersUseCase := people.NewListTeachersUseCase(teacherRepo)
	updateTeacherUseCase := people.NewUpdateTeacherUseCase(teacherRepo)
	deleteTeacherUseCase := people.NewDeleteTeacherUseCase(teacherRepo)

	// Create group use cases
	createGroupUseCase := groups.NewCreateGroupUseCase(groupRepo, teacherRepo)
	getGroupUseCase := groups.NewGetGroupUseCase(groupRepo)
	listGroupsUseCase := groups.NewListGroupsUseCase(groupRepo)
	updateGroupUseCase := groups.NewUpdateGroupUseCase(groupRepo, teacherRepo)
	deleteGroupUseCase := groups.NewDeleteGroupUseCase(groupRepo)
	createScheduleUseCase := groups.NewCreateScheduleUseCase(groupRepo, scheduleRepo)
	listSchedulesUseCase := groups.NewListSchedulesUseCase(groupRepo, scheduleRepo)
	deleteScheduleUseCase := groups.NewDeleteScheduleUseCase(scheduleRepo)
	getGroupSummaryUseCase := groupcost.NewGetSummaryUseCase(
		groupRepo,
		teacherRepo,
		registrationRepo,
		paymentRepo,
		costRepo,
		teacherPaymentRepo,
	)

	// Create registration and ledger use cases
	createRegistrationUseCase := registration.NewCreateUseCase(registrationRepo, studentRepo, groupRepo)
	getRegistrationUseCase := registration.NewGetUseCase(registrationRepo)
	listRegistrationsUseCase := registration.NewListUseCase(registrationRepo)
	deleteRegistrationUseCase := registration.NewDeleteUseCase(registrationRepo)
	getLedgerSummaryUseCase := ledger.NewGetSummaryUseCase(registrationRepo, paymentRepo)
	updateDiscountUseCase := ledger.NewUpdateDiscountUseCase(registrationRepo, paymentRepo)

	// Create wallet use cases
	getWalletUseCase := wallet.NewGetWalletUseCase(walletRepo, studentRepo)
	depositUseCase := wallet.NewDepositUseCase(walletRepo, studentRepo, walletLocks)
	applyUseCase := wallet.NewApplyUseCase(walletRepo, studentRepo, registrationRepo, clock, walletLocks)

	// Create session use cases
	createMakeupUseCase := sessiongen.NewCreateMakeupUseCase(groupRepo, sessionRepo)
	updateSessionUseCase := sessiongen.NewUpdateSessionUseCase(sessionRepo)
	deleteSessionUseCase := sessiongen.NewDeleteSessionUseCase(sessionRepo)
	getCalendarUseCase := sessiongen.NewGetCalendarUseCase(groupRepo, scheduleRepo, sessionRepo)
	generateSessionsUseCase := sessiongen.NewGenerateUseCase(scheduleRepo, sessionRepo, clock)

	// Create cost use cases
	createCostUseCase := costs.NewCreateCostUseCase(costRepo, groupRepo)
	listCostsUseCase := costs.NewListCostsUseCase(costRepo)
	updateCostUseCase := costs.NewUpdateCostUseCase(costRepo)
	deleteCostUseCase := costs.NewDeleteCostUseCase(costRepo)
	createTemplateUseCase := costs.NewCreateTemplateUseCase(templateRepo, groupRepo)
	listTemplatesUseCase := costs.NewListTemplatesUseCase(templateRepo)
	updateTemplateUseCase := costs.NewUpdateTemplateUseCase(templateRepo)
	deleteTemplateUseCase := costs.NewDeleteTemplateUseCase(templateRepo)
	createTeacherPaymentUseCase := costs.NewCreateTeacherPaymentUseCase(teacherPaymentRepo, teacherRepo, groupRepo)
	listTeacherPaymentsUseCase := costs.NewListTeacherPaymentsUseCase(teacherPaymentRepo)
	markTeacherPaymentPaidUseCase := costs.NewMarkTeacherPaymentPaidUseCase(teacherPaymentRepo, clock)
	generateCostsUseCase := costgen.NewGenerateUseCase(templateRepo, costRepo, clock)

	// Create dashboard use cases
	getMetricsUseCase := dashboard.NewGetMetricsUseCase(dashboardRepo, sessionRepo, clock)
	getTimeseriesUseCase := dashboard.NewGetTimeseriesUseCase(dashboardRepo, clock)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	studentController := controller.NewStudentController(
		createStudentUseCase,
		getStudentUseCase,
		listStudentsUseCase,
		updateStudentUseCase,
		deleteStudentUseCase,
	)

	teacherController := controller.NewTeacherController(
		createTeacherUseCase,
		getTeacherUseCase,
		listTeachersUseCase,
		updateTeacherUseCase,
		deleteTeacherUseCase,
	)

	groupController := controller.NewGroupController(
		createGroupUseCase,
		getGroupUseCase,
		listGroupsUseCase,
		updateGroupUseCase,
		deleteGroupUseCase,
		getGroupSummaryUseCase,
		getCalendarUseCase,
		createScheduleUseCase,
		listSchedulesUseCase,
		deleteScheduleUseCase,
	)

	registrationController := controller.NewRegistrationController(
		createRegistrationUseCase,
		getRegistrationUseCase,
		listRegistrationsUseCase,
		deleteRegistrationUseCase,
		getLedgerSummaryUseCase,
		updateDiscountUseCase,
	)

	walletController := controller.NewWalletController(
		getWalletUseCase,
		depositUseCase,
		applyUseCase,
	)

	sessionController := controller.NewSessionController(
		createMakeupUseCase,
		updateSessionUseCase,
		deleteSessionUseCase,
	)

	costController := controller.NewCostController(
		createCostUseCase,
		listCostsUseCase,
		updateCostUseCase,
		deleteCostUseCase,
		createTemplateUseCase,
		listTemplatesUseCase,
		updateTemplateUseCase,
		deleteTemplateUseCase,
	)

	teacherPaymentController := controller.NewTeacherPaymentController(
		createTeacherPaymentUseCase,
		listTeacherPaymentsUseCase,
		markTeacherPaymentPaidUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getMetricsUseCase,
		getTimeseriesUseCase,
	)

	adminController := controller.NewAdminController(
		generateCostsUseCase,
		generateSessionsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var walletRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		walletRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		walletRateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	r := router.NewRouter(
		healthController,
		studentController,
		teacherController,
		groupController,
		registrationController,
		walletController,
		sessionController,
		costController,
		teacherPaymentController,
		dashboardController,
		adminController,
		walletRateLimiter,
	)

	// Create scheduler with the two generator jobs
	sched := scheduler.NewScheduler()
	sched.Register(scheduler.NewCostJob(generateCostsUseCase), cfg.Generator.CostInterval)
	sched.Register(scheduler.NewSessionJob(generateSessionsUseCase), cfg.Generator.SessionInterval)

	return &Injector{
		Config:    cfg,
		DB:        db,
		Router:    r,
		Scheduler: sched,
	}
}
