package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the settings the router needs from config.Config
type RouterConfig struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
}

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Summary    SummaryHandler
	Holiday    HolidayHandler
	Intern     InternHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	authorize := middleware.RequirePermission

	r.Route("/api", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromHeader))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)

			r.Route("/attendance-logs", func(r chi.Router) {
				r.With(authorize(user.PermissionLogCreate)).Post("/", h.Attendance.Create)
				r.With(authorize(user.PermissionLogCreate)).Post("/bulk", h.Attendance.CreateBulk)
				r.With(authorize(user.PermissionLogView)).Get("/", h.Attendance.List)
				r.With(authorize(user.PermissionRosterView)).Get("/employees/{departmentId}", h.Attendance.ListEmployees)
				r.With(authorize(user.PermissionRosterScheduled)).Get("/employees-scheduled", h.Attendance.ListScheduledEmployees)
			})

			r.Route("/attendance-summaries", func(r chi.Router) {
				r.With(authorize(user.PermissionSummaryGenerate)).Post("/generate", h.Summary.Generate)
				r.With(authorize(user.PermissionSummaryView)).Get("/by-department", h.Summary.ListByDepartment)
				r.With(authorize(user.PermissionSummaryExport)).Get("/export", h.Summary.Export)
				r.With(authorize(user.PermissionSummaryApprove)).Patch("/approve/{id}", h.Summary.ApproveSingle)
				r.With(authorize(user.PermissionSummaryApprove)).Patch("/approve-bulk", h.Summary.ApproveBulk)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.With(authorize(user.PermissionHolidayView)).Get("/", h.Holiday.List)
				r.With(authorize(user.PermissionHolidayManage)).Post("/", h.Holiday.Create)
				r.With(authorize(user.PermissionHolidayManage)).Delete("/{id}", h.Holiday.Delete)
			})

			r.Route("/intern", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(authorize(user.PermissionInternViewOwn))
					r.Get("/dashboard", h.Intern.Dashboard)
					r.Get("/attendance-history", h.Intern.AttendanceHistory)
					r.Get("/profile", h.Intern.Profile)
					r.Get("/performance-reviews", h.Intern.PerformanceReviews)
				})
				r.With(authorize(user.PermissionPasswordChange)).Patch("/change-password", h.Auth.ChangePassword)
				r.With(authorize(user.PermissionComplaintCreate)).Post("/complaints", h.Intern.SubmitComplaint)
			})
		})
	})
	return r
}
