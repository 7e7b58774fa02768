package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	loc            *time.Location
	now            clock.Clock
}

func NewDashboardService(
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	leaveRepository leave.LeaveRepository,
	loc *time.Location,
	now clock.Clock,
) dashboard.DashboardService {
	if now == nil {
		now = clock.System
	}
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepository,
		attendanceRepo: attendanceRepository,
		leaveRepo:      leaveRepository,
		loc:            loc,
		now:            now,
	}
}

// GetDailyOverview loads the three sources in parallel and merges them per
// employee: a stored record wins, then a covering leave, otherwise nothing
// is recorded yet.
func (s *DashboardServiceImpl) GetDailyOverview(ctx context.Context, req dashboard.DailyOverviewRequest) (dashboard.DailyOverviewResponse, error) {
	if err := req.Validate(); err != nil {
		return dashboard.DailyOverviewResponse{}, err
	}

	day := clock.BusinessDate(s.now(), s.loc)
	if req.Date != "" {
		parsed, err := clock.ParseDate(req.Date, s.loc)
		if err != nil {
			return dashboard.DailyOverviewResponse{}, fmt.Errorf("invalid date: %w", err)
		}
		day = parsed
	}

	var (
		employees []employee.Employee
		records   []attendance.Record
		leaves    []leave.LeaveRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByDate(gCtx, day)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListCovering(gCtx, day)
		if err != nil {
			return fmt.Errorf("failed to list leave: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return dashboard.DailyOverviewResponse{}, err
	}

	byEmployee := make(map[string]attendance.Record, len(records))
	for _, r := range records {
		byEmployee[r.EmployeeID] = r
	}
	leaveOf := make(map[string]leave.LeaveRecord, len(leaves))
	for _, l := range leaves {
		if l.Effective() && l.Covers(day) {
			leaveOf[l.EmployeeID] = l
		}
	}

	entries := make([]dashboard.DailyEntry, 0, len(employees))
	var summary dashboard.DailySummary

	for _, emp := range employees {
		entry := dashboard.DailyEntry{
			EmployeeID:   emp.ID,
			Name:         emp.Name,
			Department:   emp.DepartmentCode,
			Branch:       emp.PrimaryBranch(),
			CheckinTime:  attendance.NoTime,
			CheckoutTime: attendance.NoTime,
			Fine:         decimal.Zero,
		}

		if rec, ok := byEmployee[emp.ID]; ok {
			status := rec.Status
			entry.Status = &status
			entry.Branch = rec.Branch
			entry.CheckinTime = rec.CheckinTime
			entry.CheckoutTime = rec.CheckoutTime
			entry.Fine = rec.Fine
			entry.NeedsReview = rec.NeedsReview
		} else if l, ok := leaveOf[emp.ID]; ok {
			status := attendance.StatusOnLeave
			leaveType := string(l.Type)
			entry.Status = &status
			entry.LeaveType = &leaveType
		}

		countStatus(&summary, entry.Status)
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].EmployeeID < entries[j].EmployeeID })
	summary.Total = len(entries)

	return dashboard.DailyOverviewResponse{
		Date:    day.Format(clock.DateLayout),
		Summary: summary,
		Entries: entries,
	}, nil
}

func countStatus(summary *dashboard.DailySummary, status *attendance.Status) {
	if status == nil {
		summary.NotRecorded++
		return
	}
	switch *status {
	case attendance.StatusOnTime:
		summary.OnTime++
	case attendance.StatusLateTier1:
		summary.LateTier1++
	case attendance.StatusLateTier2:
		summary.LateTier2++
	case attendance.StatusAbsent:
		summary.Absent++
	case attendance.StatusOutsideArea:
		summary.OutsideArea++
	case attendance.StatusOnLeave:
		summary.OnLeave++
	}
}
