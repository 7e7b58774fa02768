package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/master/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
)

type BalanceServiceImpl struct {
	employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	holidayRepo    holiday.HolidayRepository
	calculator     *AccrualCalculator
	loc            *time.Location
	now            clock.Clock
}

func NewBalanceService(
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	leaveRepository leave.LeaveRepository,
	holidayRepository holiday.HolidayRepository,
	calculator *AccrualCalculator,
	loc *time.Location,
	now clock.Clock,
) leave.BalanceService {
	if now == nil {
		now = clock.System
	}
	return &BalanceServiceImpl{
		EmployeeRepository: employeeRepository,
		attendanceRepo:     attendanceRepository,
		leaveRepo:          leaveRepository,
		holidayRepo:        holidayRepository,
		calculator:         calculator,
		loc:                loc,
		now:                now,
	}
}

// GetBalance implements leave.BalanceService. It never writes.
func (s *BalanceServiceImpl) GetBalance(ctx context.Context, req leave.BalanceRequest) (leave.BalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.BalanceResponse{}, err
	}

	now := s.now()
	month := clock.BusinessDate(now, s.loc)
	month = month.AddDate(0, 0, 1-month.Day())
	if req.Month != "" {
		parsed, err := clock.ParseMonth(req.Month, s.loc)
		if err != nil {
			return leave.BalanceResponse{}, fmt.Errorf("%w: %v", leave.ErrInvalidMonth, err)
		}
		month = parsed
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.BalanceResponse{}, err
		}
		return leave.BalanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	yearStart := time.Date(month.Year(), time.January, 1, 0, 0, 0, 0, s.loc)
	yearEnd := time.Date(month.Year(), time.December, 31, 0, 0, 0, 0, s.loc)
	monthEnd := month.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByEmployeeBetween(ctx, emp.ID, yearStart, monthEnd)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	leaves, err := s.leaveRepo.ListByEmployeeBetween(ctx, emp.ID, yearStart, yearEnd)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to list leave: %w", err)
	}
	holidays, err := s.holidayRepo.ListByYear(ctx, month.Year())
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	acc := s.calculator.Calculate(AccrualInput{
		Employee:   emp,
		Month:      month,
		Now:        now.In(s.loc),
		Attendance: records,
		Leaves:     leaves,
		Holidays:   holiday.NewSet(holidays),
	})

	annualRemaining := acc.AnnualEntitlement - acc.AnnualUsed

	return leave.BalanceResponse{
		EmployeeID:        emp.ID,
		EmployeeName:      emp.Name,
		Role:              string(acc.Role),
		Month:             month.Format(clock.MonthLayout),
		MonthlyQuota:      acc.MonthlyQuota,
		CarriedOver:       acc.CarriedOver,
		Used:              acc.Used,
		Remaining:         acc.Remaining,
		AnnualEntitlement: acc.AnnualEntitlement,
		AnnualUsed:        acc.AnnualUsed,
		AnnualRemaining:   annualRemaining,
		YearsOfService:    acc.TenureMonths / 12,
		History:           acc.Charged,
	}, nil
}
