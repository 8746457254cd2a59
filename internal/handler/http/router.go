package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/mir-ams/attendance-backend-go/internal/config"
	"github.com/mir-ams/attendance-backend-go/internal/domain/user"
	"github.com/mir-ams/attendance-backend-go/internal/handler/http/middleware"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Punch      PunchHandler
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Shift      ShiftHandler
	Overtime   OvertimeRuleHandler
	Holiday    HolidayHandler
	Device     DeviceHandler
	Bonus      BonusHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/punches", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleHR))
					r.Get("/", h.Punch.List)
					r.Post("/", h.Punch.Record)
					r.Post("/import", h.Punch.Import)
					r.Get("/stats", h.Punch.Stats)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/my", h.Attendance.GetMyAttendance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleSupervisor))
					r.Get("/", h.Attendance.List)
					r.Get("/{id}", h.Attendance.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/reconcile", h.Attendance.Reconcile)
					r.Post("/reprocess", h.Attendance.Reprocess)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleHR))
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}/overtime-eligibility", h.Employee.UpdateEligibility)
				r.Put("/{id}/weekend-days", h.Employee.UpdateWeekendDays)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleHR))
				r.Get("/", h.Shift.List)
				r.Post("/", h.Shift.Create)
				r.Get("/{id}", h.Shift.Get)
				r.Delete("/{id}", h.Shift.Deactivate)
				r.Post("/assignments", h.Shift.Assign)
				r.Get("/assignments/{employeeID}", h.Shift.ListAssignments)
			})

			r.Route("/overtime-rules", func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleHR))
				r.Get("/", h.Overtime.List)
				r.Post("/", h.Overtime.Create)
				r.Get("/{id}", h.Overtime.Get)
				r.Delete("/{id}", h.Overtime.Deactivate)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleHR))
				r.Get("/", h.Holiday.List)
				r.Post("/", h.Holiday.Create)
				r.Delete("/{id}", h.Holiday.Delete)
			})

			r.Route("/devices", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Device.List)
				r.Post("/", h.Device.Register)
				r.Get("/{id}", h.Device.Get)
				r.Delete("/{id}", h.Device.Deactivate)
			})

			r.Route("/bonus", func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleSupervisor))

				r.Route("/periods", func(r chi.Router) {
					r.Get("/", h.Bonus.ListPeriods)
					r.Get("/{periodID}/submissions", h.Bonus.ListSubmissions)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRole(user.RoleHR))
						r.Post("/", h.Bonus.CreatePeriod)
					})
				})

				r.Route("/submissions", func(r chi.Router) {
					r.Post("/", h.Bonus.Submit)
					r.Get("/{id}", h.Bonus.GetSubmission)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRole(user.RoleHR))
						r.Post("/{id}/approve", h.Bonus.Approve)
						r.Post("/{id}/reject", h.Bonus.Reject)
					})
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleSupervisor))
				r.Get("/overtime", h.Report.Overtime)
				r.Get("/attendance", h.Report.Attendance)
				r.Get("/overtime-by-department", h.Report.OvertimeByDepartment)
			})
		})
	})

	return r
}
