package payroll

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DeductionServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	loc            *time.Location
	now            clock.Clock
}

func NewDeductionService(
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	leaveRepository leave.LeaveRepository,
	loc *time.Location,
	now clock.Clock,
) payroll.DeductionService {
	if now == nil {
		now = clock.System
	}
	return &DeductionServiceImpl{
		employeeRepo:   employeeRepository,
		attendanceRepo: attendanceRepository,
		leaveRepo:      leaveRepository,
		loc:            loc,
		now:            now,
	}
}

// GetMonthlyDeductions sums recorded fines per employee for a month.
func (s *DeductionServiceImpl) GetMonthlyDeductions(ctx context.Context, req payroll.DeductionRequest) (payroll.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionResponse{}, err
	}

	month := clock.BusinessDate(s.now(), s.loc)
	month = month.AddDate(0, 0, 1-month.Day())
	if req.Month != "" {
		parsed, err := clock.ParseMonth(req.Month, s.loc)
		if err != nil {
			return payroll.DeductionResponse{}, fmt.Errorf("%w: %v", payroll.ErrInvalidPeriod, err)
		}
		month = parsed
	}
	monthEnd := month.AddDate(0, 1, -1)

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
		records, err = s.attendanceRepo.ListBetween(gCtx, month, monthEnd)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListBetween(gCtx, month, monthEnd)
		if err != nil {
			return fmt.Errorf("failed to list leave: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return payroll.DeductionResponse{}, err
	}

	rows := make(map[string]*payroll.EmployeeDeduction, len(employees))
	leaveDays := make(map[string]map[string]struct{}, len(employees))
	row := func(id, name, department string) *payroll.EmployeeDeduction {
		r, ok := rows[id]
		if !ok {
			r = &payroll.EmployeeDeduction{
				EmployeeID: id,
				Name:       name,
				Department: department,
				TotalFine:  decimal.Zero,
				Lines:      []payroll.DeductionLine{},
			}
			rows[id] = r
			leaveDays[id] = make(map[string]struct{})
		}
		return r
	}

	for _, emp := range employees {
		row(emp.ID, emp.Name, emp.DepartmentCode)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	for _, rec := range records {
		r := row(rec.EmployeeID, rec.Name, rec.Department)
		day := rec.Date.Format(clock.DateLayout)

		switch rec.Status {
		case attendance.StatusLateTier1:
			r.LateTier1++
		case attendance.StatusLateTier2:
			r.LateTier2++
		case attendance.StatusAbsent:
			r.Absent++
		case attendance.StatusOutsideArea:
			r.OutsideArea++
		case attendance.StatusOnLeave:
			leaveDays[rec.EmployeeID][day] = struct{}{}
		case attendance.StatusOnTime:
		}

		if rec.Fine.IsPositive() {
			r.TotalFine = r.TotalFine.Add(rec.Fine)
			r.Lines = append(r.Lines, payroll.DeductionLine{Date: day, Status: string(rec.Status), Fine: rec.Fine})
		}
	}

	for _, l := range leaves {
		if !l.Effective() {
			continue
		}
		r, ok := rows[l.EmployeeID]
		if !ok {
			continue
		}
		for _, d := range l.Days() {
			if clock.SameMonth(d, month) {
				leaveDays[r.EmployeeID][d.Format(clock.DateLayout)] = struct{}{}
			}
		}
	}

	resp := payroll.DeductionResponse{
		Month:     month.Format(clock.MonthLayout),
		TotalFine: decimal.Zero,
		Employees: make([]payroll.EmployeeDeduction, 0, len(rows)),
	}
	for id, r := range rows {
		r.LeaveDays = len(leaveDays[id])
		resp.TotalFine = resp.TotalFine.Add(r.TotalFine)
		resp.Employees = append(resp.Employees, *r)
	}
	sort.Slice(resp.Employees, func(i, j int) bool { return resp.Employees[i].EmployeeID < resp.Employees[j].EmployeeID })

	return resp, nil
}
