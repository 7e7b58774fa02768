package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployees []employee.Employee

func (s stubEmployees) GetByID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s stubEmployees) List(context.Context) ([]employee.Employee, error) { return s, nil }

type stubAttendance struct {
	attendance.AttendanceRepository
	records []attendance.Record
}

func (s stubAttendance) ListByDate(context.Context, time.Time) ([]attendance.Record, error) {
	return s.records, nil
}

type stubLeaves struct {
	leave.LeaveRepository
	records []leave.LeaveRecord
}

func (s stubLeaves) ListCovering(context.Context, time.Time) ([]leave.LeaveRecord, error) {
	return s.records, nil
}

func TestGetDailyOverview(t *testing.T) {
	day := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	employees := stubEmployees{
		{ID: "E3", Name: "C", Branches: []string{"Korat"}},
		{ID: "E1", Name: "A", Branches: []string{"Korat"}},
		{ID: "E2", Name: "B", Branches: []string{"Korat"}},
		{ID: "E4", Name: "D", Branches: []string{"Korat"}},
	}
	att := stubAttendance{records: []attendance.Record{
		{EmployeeID: "E1", Date: day, Branch: "Korat", CheckinTime: "08:10", CheckoutTime: attendance.NoTime, Status: attendance.StatusLateTier1, Fine: decimal.NewFromInt(20)},
	}}
	leaves := stubLeaves{records: []leave.LeaveRecord{
		{EmployeeID: "E2", StartDate: day, EndDate: day, Type: leave.LeaveTypeSick, Status: leave.ApprovalPending},
		{EmployeeID: "E4", StartDate: day, EndDate: day, Type: leave.LeaveTypeSick, Status: leave.ApprovalRejected},
	}}

	svc := NewDashboardService(employees, att, leaves, time.UTC, func() time.Time { return day.Add(9 * time.Hour) })
	got, err := svc.GetDailyOverview(context.Background(), dashboard.DailyOverviewRequest{})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10", got.Date)
	assert.Equal(t, dashboard.DailySummary{Total: 4, LateTier1: 1, OnLeave: 1, NotRecorded: 2}, got.Summary)
	require.Len(t, got.Entries, 4)

	assert.Equal(t, "E1", got.Entries[0].EmployeeID)
	require.NotNil(t, got.Entries[0].Status)
	assert.Equal(t, attendance.StatusLateTier1, *got.Entries[0].Status)
	assert.Equal(t, "08:10", got.Entries[0].CheckinTime)

	require.NotNil(t, got.Entries[1].Status)
	assert.Equal(t, attendance.StatusOnLeave, *got.Entries[1].Status)
	assert.Equal(t, "sick", *got.Entries[1].LeaveType)

	assert.Nil(t, got.Entries[2].Status)
	assert.Nil(t, got.Entries[3].Status)
}

func TestGetDailyOverview_InvalidDate(t *testing.T) {
	svc := NewDashboardService(stubEmployees{}, stubAttendance{}, stubLeaves{}, time.UTC, nil)
	_, err := svc.GetDailyOverview(context.Background(), dashboard.DailyOverviewRequest{Date: "10/06/2024"})
	assert.Error(t, err)
}
