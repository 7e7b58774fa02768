package leave

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/master/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployees map[string]employee.Employee

func (s stubEmployees) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := s[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s stubEmployees) List(context.Context) ([]employee.Employee, error) { return nil, nil }

// stubAttendance only serves ListByEmployeeBetween; the balance never writes.
type stubAttendance struct {
	attendance.AttendanceRepository
	records  []attendance.Record
	from, to time.Time
}

func (s *stubAttendance) ListByEmployeeBetween(_ context.Context, _ string, from, to time.Time) ([]attendance.Record, error) {
	s.from, s.to = from, to
	return s.records, nil
}

type stubLeaves struct {
	leave.LeaveRepository
	records []leave.LeaveRecord
}

func (s stubLeaves) ListByEmployeeBetween(context.Context, string, time.Time, time.Time) ([]leave.LeaveRecord, error) {
	return s.records, nil
}

type stubHolidays []holiday.Holiday

func (s stubHolidays) ListByYear(context.Context, int) ([]holiday.Holiday, error) { return s, nil }

func TestGetBalance(t *testing.T) {
	bkk, err := time.LoadLocation("Asia/Bangkok")
	require.NoError(t, err)

	joined := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	att := &stubAttendance{records: []attendance.Record{
		{EmployeeID: "E1", Date: time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
	}}
	svc := NewBalanceService(
		stubEmployees{"E1": {ID: "E1", Name: "Malee", DepartmentCode: "07", JoinDate: &joined}},
		att,
		stubLeaves{},
		stubHolidays{},
		NewAccrualCalculator([]string{"01", "02"}),
		bkk,
		func() time.Time { return time.Date(2024, time.February, 20, 10, 0, 0, 0, bkk) },
	)

	got, err := svc.GetBalance(context.Background(), leave.BalanceRequest{EmployeeID: "E1"})
	require.NoError(t, err)
	assert.Equal(t, "2024-02", got.Month)
	assert.Equal(t, "field", got.Role)
	assert.Equal(t, 4, got.MonthlyQuota)
	assert.Equal(t, 5, got.CarriedOver)
	assert.Equal(t, 1, got.Used)
	assert.Equal(t, 8, got.Remaining)
	assert.Equal(t, FieldAnnualEntitlement, got.AnnualEntitlement)
	assert.Equal(t, FieldAnnualEntitlement, got.AnnualRemaining)
	assert.Equal(t, 3, got.YearsOfService)
	assert.Len(t, got.History, 1)

	assert.Equal(t, "2024-01-01", att.from.Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", att.to.Format("2006-01-02"))
}

func TestGetBalance_Errors(t *testing.T) {
	svc := NewBalanceService(stubEmployees{}, &stubAttendance{}, stubLeaves{}, stubHolidays{}, NewAccrualCalculator(nil), time.UTC, nil)

	_, err := svc.GetBalance(context.Background(), leave.BalanceRequest{EmployeeID: "E1", Month: "2024-13"})
	require.Error(t, err)

	_, err = svc.GetBalance(context.Background(), leave.BalanceRequest{EmployeeID: "E1", Month: "2024-05"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
