package cutoff

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type CutoffServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leave.LeaveRepository
	settings settings.Provider
	loc      *time.Location
	now      clock.Clock
}

func NewCutoffService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	leaveRepository leave.LeaveRepository,
	settingsProvider settings.Provider,
	loc *time.Location,
	now clock.Clock,
) attendance.CutoffService {
	if now == nil {
		now = clock.System
	}
	return &CutoffServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		LeaveRepository:      leaveRepository,
		settings:             settingsProvider,
		loc:                  loc,
		now:                  now,
	}
}

// Run implements attendance.CutoffService.
func (c *CutoffServiceImpl) Run(ctx context.Context, req attendance.CutoffRequest) (attendance.CutoffResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.CutoffResult{}, err
	}

	now := c.now()
	day := clock.BusinessDate(now, c.loc)
	if req.Date != "" {
		parsed, err := clock.ParseDate(req.Date, c.loc)
		if err != nil {
			return attendance.CutoffResult{}, fmt.Errorf("invalid date: %w", err)
		}
		day = parsed
	}

	result := attendance.CutoffResult{
		RunID: uuid.NewString(),
		Date:  day.Format(clock.DateLayout),
	}
	log := slog.With("run_id", result.RunID, "date", result.Date)

	cfg, err := c.settings.Current(ctx)
	if err != nil {
		return result, err
	}
	result.CutoffTime = clock.FormatMinutes(cfg.CutoffMinutes)

	if now.Before(clock.At(day, cfg.CutoffMinutes, c.loc)) {
		log.Info("Cutoff: before cutoff time, skipping", "cutoff_time", result.CutoffTime)
		result.Skipped = attendance.CutoffSkipTooEarly
		return result, nil
	}

	done, err := c.AttendanceRepository.HasAutoAbsent(ctx, day)
	if err != nil {
		return result, fmt.Errorf("failed to check previous cutoff: %w", err)
	}
	if done {
		log.Info("Cutoff: already run for date, skipping")
		result.Skipped = attendance.CutoffSkipAlreadyDone
		return result, nil
	}

	var (
		employees []employee.Employee
		records   []attendance.Record
		leaves    []leave.LeaveRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = c.EmployeeRepository.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = c.AttendanceRepository.ListByDate(gCtx, day)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = c.LeaveRepository.ListCovering(gCtx, day)
		if err != nil {
			return fmt.Errorf("failed to list leave: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return result, err
	}

	absences := Absentees(day, now, employees, records, leaves, cfg.Fines.Absent)
	if len(absences) == 0 {
		log.Info("Cutoff: everyone accounted for", "employees", len(employees))
		return result, nil
	}

	created, err := c.AttendanceRepository.InsertAbsences(ctx, absences)
	if err != nil {
		return result, fmt.Errorf("failed to write absences: %w", err)
	}
	result.Created = created

	log.Info("Cutoff: absences recorded",
		"employees", len(employees),
		"checked_in", len(records),
		"on_leave", len(leaves),
		"created", created,
	)
	return result, nil
}
