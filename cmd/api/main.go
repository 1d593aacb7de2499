package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/worknai009/worknai-HRMS-sub000/internal/config"
	appHTTP "github.com/worknai009/worknai-HRMS-sub000/internal/handler/http"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/biometric"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/cron"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/database"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/jwt"
	"github.com/worknai009/worknai-HRMS-sub000/internal/repository/postgresql"
	attendanceService "github.com/worknai009/worknai-HRMS-sub000/internal/service/attendance"
	companyService "github.com/worknai009/worknai-HRMS-sub000/internal/service/company"
	employeeService "github.com/worknai009/worknai-HRMS-sub000/internal/service/employee"
	holidayService "github.com/worknai009/worknai-HRMS-sub000/internal/service/holiday"
	leaveService "github.com/worknai009/worknai-HRMS-sub000/internal/service/leave"
	payrollService "github.com/worknai009/worknai-HRMS-sub000/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	verifier := biometric.NewVerifier(cfg.Attendance.BiometricThreshold)

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo, employeeRepo, companyRepo, leaveRepo,
		verifier, cfg.Attendance.MinReportLength,
	)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, leaveRepo, holidayRepo, employeeRepo)
	companySvc := companyService.NewCompanyService(companyRepo, cfg.Attendance.DefaultRadiusMeters)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:        jwtService,
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		LeaveHandler:      appHTTP.NewLeaveHandler(leaveSvc, holidaySvc),
		PayrollHandler:    appHTTP.NewPayrollHandler(payrollSvc),
		CompanyHandler:    appHTTP.NewCompanyHandler(companySvc),
		EmployeeHandler:   appHTTP.NewEmployeeHandler(employeeSvc),
		Env:               cfg.App.Env,
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, companyRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
