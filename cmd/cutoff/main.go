package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	cutoffService "github.com/cmlabs-hris/attendance-backend-go/internal/service/cutoff"
	settingsService "github.com/cmlabs-hris/attendance-backend-go/internal/service/settings"
	"github.com/spf13/cobra"
)

func main() {
	var date string

	cmd := &cobra.Command{
		Use:   "cutoff",
		Short: "Mark absences for a business date",
		Long: "Creates an Absent record for every employee with no attendance and no " +
			"covering leave. Safe to run on any schedule: runs before the cutoff time " +
			"or after a previous run for the same date do nothing.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), date)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Business date YYYY-MM-DD (default: today in BUSINESS_TIMEZONE)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, config.ErrMissingCredential) {
			slog.Error("Store credential missing, refusing to run", "error", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, date string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: 4})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	svc := cutoffService.NewCutoffService(
		postgresql.NewAttendanceRepository(db),
		postgresql.NewEmployeeRepository(db),
		postgresql.NewLeaveRepository(db),
		settingsService.NewStoreProvider(postgresql.NewSettingsRepository(db)),
		cfg.Business.Location,
		clock.System,
	)

	result, err := svc.Run(ctx, attendance.CutoffRequest{Date: date})
	if err != nil {
		slog.Error("Cutoff failed", "date", date, "error", err)
		return err
	}

	switch result.Skipped {
	case attendance.CutoffSkipTooEarly:
		slog.Info("Cutoff skipped, cutoff time not reached", "run_id", result.RunID, "date", result.Date, "cutoff_time", result.CutoffTime)
	case attendance.CutoffSkipAlreadyDone:
		slog.Info("Cutoff skipped, already ran", "run_id", result.RunID, "date", result.Date)
	default:
		slog.Info("Cutoff completed", "run_id", result.RunID, "date", result.Date, "created", result.Created)
	}
	return nil
}
