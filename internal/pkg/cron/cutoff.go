package cron

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

type CutoffJobs struct {
	cutoffSvc attendance.CutoffService
}

func NewCutoffJobs(cutoffSvc attendance.CutoffService) *CutoffJobs {
	return &CutoffJobs{cutoffSvc: cutoffSvc}
}

// RegisterJobs schedules the cutoff. The schedule may fire far more often
// than once a day; early and repeated runs are no-ops.
func (j *CutoffJobs) RegisterJobs(scheduler *Scheduler, schedule string) error {
	return scheduler.AddJob("absence_cutoff", schedule, j.RunCutoff)
}

func (j *CutoffJobs) RunCutoff(ctx context.Context) error {
	result, err := j.cutoffSvc.Run(ctx, attendance.CutoffRequest{})
	if err != nil {
		return err
	}
	if result.Skipped == attendance.CutoffSkipNone {
		slog.Info("Cron: cutoff completed", "run_id", result.RunID, "date", result.Date, "created", result.Created)
	}
	return nil
}
