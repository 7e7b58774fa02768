package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	branch.BranchRepository
	settings settings.Provider
	loc      *time.Location
	now      clock.Clock
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	branchRepository branch.BranchRepository,
	settingsProvider settings.Provider,
	loc *time.Location,
	now clock.Clock,
) attendance.AttendanceService {
	if now == nil {
		now = clock.System
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		BranchRepository:     branchRepository,
		settings:             settingsProvider,
		loc:                  loc,
		now:                  now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := a.now()
	day := clock.BusinessDate(now, a.loc)

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.CheckInResponse{}, err
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	cfg, err := a.settings.Current(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	br, err := a.BranchRepository.GetByName(ctx, req.Branch)
	if err != nil {
		if !errors.Is(err, branch.ErrBranchNotFound) {
			return attendance.CheckInResponse{}, fmt.Errorf("failed to get branch: %w", err)
		}
		// Unknown branch is evaluated as a branch without a coordinate.
		slog.Warn("Check-in against unknown branch", "employee_id", emp.ID, "branch", req.Branch)
		br = branch.Branch{Name: req.Branch}
	}

	var pos *Position
	if req.Latitude != nil && req.Longitude != nil {
		pos = &Position{Latitude: *req.Latitude, Longitude: *req.Longitude}
		if req.Accuracy != nil {
			pos.Accuracy = *req.Accuracy
		}
	}

	fence := EvaluateGeofence(pos, br, cfg.RadiusMeters)
	minutes := clock.MinutesOfDay(now, a.loc)
	status, fine := ClassifyCheckIn(minutes, fence.WithinArea, cfg.Thresholds, cfg.Fines)

	origin := attendance.OriginDeviceScan
	if req.Origin != "" {
		origin = attendance.Origin(req.Origin)
	}

	rec := attendance.Record{
		ID:                     attendance.RecordKey(emp.ID, day),
		EmployeeID:             emp.ID,
		Name:                   emp.Name,
		Department:             emp.DepartmentCode,
		Branch:                 req.Branch,
		Date:                   day,
		CheckinTime:            clock.FormatMinutes(minutes),
		CheckoutTime:           attendance.NoTime,
		Timestamp:              now,
		Status:                 status,
		Fine:                   fine,
		IsManual:               origin == attendance.OriginManual,
		Origin:                 origin,
		DistanceMeters:         fence.DistanceMeters,
		AccuracyMeters:         fence.AccuracyMeters,
		AdjustedDistanceMeters: fence.AdjustedDistanceMeters,
	}

	// A failed fix or an unplaceable branch is still recorded, but someone
	// has to look at it.
	if fence.Reason == ReasonNoPosition || fence.Reason == ReasonNoBranchCoordinate {
		note := fence.Reason
		rec.NeedsReview = true
		rec.ReviewNote = &note
		slog.Warn("Check-in recorded as outside area for review",
			"employee_id", emp.ID,
			"branch", req.Branch,
			"reason", fence.Reason,
		)
	}

	stored, created, err := a.AttendanceRepository.CreateIfAbsent(ctx, rec)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	if !created {
		slog.Info("Check-in already recorded", "employee_id", emp.ID, "date", day.Format(clock.DateLayout))
		return attendance.CheckInResponse{
			AlreadyRecorded: true,
			Record:          mapRecordToResponse(stored, a.loc),
		}, nil
	}

	slog.Info("Check-in recorded",
		"employee_id", emp.ID,
		"date", day.Format(clock.DateLayout),
		"time", stored.CheckinTime,
		"status", stored.Status,
		"fine", stored.Fine.String(),
	)

	return attendance.CheckInResponse{
		Record: mapRecordToResponse(stored, a.loc),
		Geofence: &attendance.GeofenceResponse{
			WithinArea:             fence.WithinArea,
			DistanceMeters:         fence.DistanceMeters,
			AccuracyMeters:         fence.AccuracyMeters,
			AdjustedDistanceMeters: fence.AdjustedDistanceMeters,
			RadiusMeters:           fence.RadiusMeters,
			Reason:                 fence.Reason,
		},
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := a.now()
	day := clock.BusinessDate(now, a.loc)
	id := attendance.RecordKey(req.EmployeeID, day)

	rec, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	switch rec.State() {
	case attendance.StateNoRecord:
		// Synthesized absences have nothing to close.
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	case attendance.StateCheckedOut:
		return attendance.CheckOutResponse{AlreadyRecorded: true, Record: mapRecordToResponse(rec, a.loc)}, nil
	case attendance.StateCheckedIn:
	}

	cfg, err := a.settings.Current(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	minutes := clock.MinutesOfDay(now, a.loc)
	if minutes < cfg.CheckoutEligibleMinutes {
		return attendance.CheckOutResponse{}, fmt.Errorf("%w: opens at %s", attendance.ErrCheckoutTooEarly, clock.FormatMinutes(cfg.CheckoutEligibleMinutes))
	}

	updated, err := a.AttendanceRepository.MarkCheckedOut(ctx, id, clock.FormatMinutes(minutes), now)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	rec, err = a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if !updated {
		// Lost a race with another checkout for the same day.
		if rec.State() == attendance.StateCheckedOut {
			return attendance.CheckOutResponse{AlreadyRecorded: true, Record: mapRecordToResponse(rec, a.loc)}, nil
		}
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}

	slog.Info("Check-out recorded", "employee_id", rec.EmployeeID, "date", day.Format(clock.DateLayout), "time", rec.CheckoutTime)

	return attendance.CheckOutResponse{Record: mapRecordToResponse(rec, a.loc)}, nil
}

func mapRecordToResponse(rec attendance.Record, loc *time.Location) attendance.AttendanceResponse {
	var checkoutTimestamp *string
	if rec.CheckoutTimestamp != nil {
		s := rec.CheckoutTimestamp.In(loc).Format(time.RFC3339)
		checkoutTimestamp = &s
	}

	return attendance.AttendanceResponse{
		ID:                     rec.ID,
		EmployeeID:             rec.EmployeeID,
		Name:                   rec.Name,
		Department:             rec.Department,
		Branch:                 rec.Branch,
		Date:                   rec.Date.Format(clock.DateLayout),
		CheckinTime:            rec.CheckinTime,
		CheckoutTime:           rec.CheckoutTime,
		Timestamp:              rec.Timestamp.In(loc).Format(time.RFC3339),
		CheckoutTimestamp:      checkoutTimestamp,
		Status:                 rec.Status,
		Fine:                   rec.Fine,
		IsAutoAbsent:           rec.IsAutoAbsent,
		IsManual:               rec.IsManual,
		Origin:                 rec.Origin,
		NeedsReview:            rec.NeedsReview,
		ReviewNote:             rec.ReviewNote,
		DistanceMeters:         rec.DistanceMeters,
		AccuracyMeters:         rec.AccuracyMeters,
		AdjustedDistanceMeters: rec.AdjustedDistanceMeters,
	}
}
