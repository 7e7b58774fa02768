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

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	cutoffService "github.com/cmlabs-hris/attendance-backend-go/internal/service/cutoff"
	dashboardService "github.com/cmlabs-hris/attendance-backend-go/internal/service/dashboard"
	leaveService "github.com/cmlabs-hris/attendance-backend-go/internal/service/leave"
	payrollService "github.com/cmlabs-hris/attendance-backend-go/internal/service/payroll"
	settingsService "github.com/cmlabs-hris/attendance-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	loc := cfg.Business.Location

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	settingsProvider := settingsService.NewStoreProvider(settingsRepo)
	accrualCalculator := leaveService.NewAccrualCalculator(cfg.Business.OfficeDepartments)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, branchRepo, settingsProvider, loc, clock.System)
	cutoffSvc := cutoffService.NewCutoffService(attendanceRepo, employeeRepo, leaveRepo, settingsProvider, loc, clock.System)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRepo, loc, clock.System)
	balanceSvc := leaveService.NewBalanceService(employeeRepo, attendanceRepo, leaveRepo, holidayRepo, accrualCalculator, loc, clock.System)
	deductionSvc := payrollService.NewDeductionService(employeeRepo, attendanceRepo, leaveRepo, loc, clock.System)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       cfg.SlogLevel(),
		},
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewLeaveHandler(balanceSvc),
		appHTTP.NewPayrollHandler(deductionSvc),
		appHTTP.NewCutoffHandler(cutoffSvc),
	)

	if cfg.Cron.CutoffSchedule != "" {
		scheduler := cron.NewScheduler(loc)
		if err := cron.NewCutoffJobs(cutoffSvc).RegisterJobs(scheduler, cfg.Cron.CutoffSchedule); err != nil {
			slog.Error("Invalid CUTOFF_CRON", "schedule", cfg.Cron.CutoffSchedule, "error", err)
			os.Exit(1)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", cfg.Business.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}
