package app

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/config"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/intern"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-attendance-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hr-attendance-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hr-attendance-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/hr-attendance-go/internal/service/employee"
	holidayService "github.com/cmlabs-hris/hr-attendance-go/internal/service/holiday"
	internService "github.com/cmlabs-hris/hr-attendance-go/internal/service/intern"
	summaryService "github.com/cmlabs-hris/hr-attendance-go/internal/service/summary"
)

// App holds the services shared by the API server and the ops CLI
type App struct {
	DB          *database.DB
	JWT         jwt.Service
	Location    *time.Location
	Departments employee.DepartmentRepository

	Auth       auth.AuthService
	Logs       attendance.LogService
	Employees  employee.EmployeeService
	Summaries  summary.SummaryService
	Holidays   holiday.HolidayService
	Interns    intern.InternService
	SummaryJob *cron.SummaryJobs
}

// New connects to PostgreSQL and builds every repository and service
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	assignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	logRepo := postgresql.NewAttendanceLogRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	complaintRepo := postgresql.NewComplaintRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	withTx := func(ctx context.Context, fn func(txCtx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}

	summarySvc := summaryService.NewSummaryService(
		summaryRepo,
		employeeRepo,
		departmentRepo,
		holidayRepo,
		assignmentRepo,
		leaveRepo,
		logRepo,
		summaryService.Options{
			LockApproved: cfg.Summary.LockApproved,
			Concurrency:  cfg.Summary.Concurrency,
			Location:     loc,
		},
	)

	return &App{
		DB:          db,
		JWT:         JWTService,
		Location:    loc,
		Departments: departmentRepo,

		Auth:       serviceAuth.NewAuthService(userRepo, JWTService, withTx),
		Logs:       attendanceService.NewLogService(logRepo, employeeRepo),
		Employees:  employeeService.NewEmployeeService(employeeRepo, holidayRepo, assignmentRepo),
		Summaries:  summarySvc,
		Holidays:   holidayService.NewHolidayService(holidayRepo),
		Interns:    internService.NewInternService(employeeRepo, logRepo, profileRepo, reviewRepo, complaintRepo),
		SummaryJob: cron.NewSummaryJobs(summarySvc, departmentRepo, cfg.Summary.NightlyHour),
	}, nil
}

func (a *App) Close() {
	a.DB.Close()
}
