package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/user"
	"github.com/worknai009/worknai-HRMS-sub000/internal/handler/http/middleware"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService        jwt.Service
	AttendanceHandler AttendanceHandler
	LeaveHandler      LeaveHandler
	PayrollHandler    PayrollHandler
	CompanyHandler    CompanyHandler
	EmployeeHandler   EmployeeHandler
	Env               string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worknai-hrms"),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendancePunch))
					r.Post("/punch-in", deps.AttendanceHandler.PunchIn)
					r.Post("/punch-out", deps.AttendanceHandler.PunchOut)
					r.Post("/break/start", deps.AttendanceHandler.BreakStart)
					r.Post("/break/end", deps.AttendanceHandler.BreakEnd)
				})

				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).
					Get("/history", deps.AttendanceHandler.History)

				r.With(middleware.RequirePermission(user.PermissionAttendanceCorrect)).
					Put("/correct", deps.AttendanceHandler.ManualCorrect)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApply))
					r.Post("/", deps.LeaveHandler.Apply)
					r.Get("/my", deps.LeaveHandler.ListMine)
				})

				r.With(middleware.RequirePermission(user.PermissionLeaveDecide)).
					Put("/{id}/decision", deps.LeaveHandler.Decide)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", deps.LeaveHandler.ListHolidays)

				r.With(middleware.RequirePermission(user.PermissionHolidayManage)).
					Post("/", deps.LeaveHandler.MarkHoliday)
			})

			// Per-employee access is checked inside the service; the route
			// only requires the base payroll capability.
			r.With(middleware.RequirePermission(user.PermissionPayrollViewOwn)).
				Get("/payroll/{employeeID}", deps.PayrollHandler.Compute)

			r.Route("/company", func(r chi.Router) {
				r.Get("/locations", deps.CompanyHandler.ListLocations)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionCompanyManage))
					r.Put("/locations", deps.CompanyHandler.ConfigureLocations)
					r.Post("/employees/biometrics", deps.EmployeeHandler.EnrollBiometric)
				})
			})
		})
	})

	return r
}
