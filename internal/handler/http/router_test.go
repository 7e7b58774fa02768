package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	checkIn  func(req attendance.CheckInRequest) (attendance.CheckInResponse, error)
	checkOut func(req attendance.CheckOutRequest) (attendance.CheckOutResponse, error)
}

func (s *stubAttendanceService) CheckIn(_ context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	return s.checkIn(req)
}

func (s *stubAttendanceService) CheckOut(_ context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	return s.checkOut(req)
}

type stubDashboardService struct {
	got dashboard.DailyOverviewRequest
}

func (s *stubDashboardService) GetDailyOverview(_ context.Context, req dashboard.DailyOverviewRequest) (dashboard.DailyOverviewResponse, error) {
	s.got = req
	if err := req.Validate(); err != nil {
		return dashboard.DailyOverviewResponse{}, err
	}
	return dashboard.DailyOverviewResponse{Date: req.Date, Summary: dashboard.DailySummary{Total: 2, OnTime: 1, NotRecorded: 1}}, nil
}

type stubBalanceService struct {
	got leave.BalanceRequest
	err error
}

func (s *stubBalanceService) GetBalance(_ context.Context, req leave.BalanceRequest) (leave.BalanceResponse, error) {
	s.got = req
	if s.err != nil {
		return leave.BalanceResponse{}, s.err
	}
	return leave.BalanceResponse{EmployeeID: req.EmployeeID, Month: req.Month, MonthlyQuota: 5, Remaining: 3}, nil
}

type stubDeductionService struct{}

func (stubDeductionService) GetMonthlyDeductions(_ context.Context, req payroll.DeductionRequest) (payroll.DeductionResponse, error) {
	if req.Month == "2024-13" {
		return payroll.DeductionResponse{}, fmt.Errorf("%w: month out of range", payroll.ErrInvalidPeriod)
	}
	return payroll.DeductionResponse{Month: req.Month, TotalFine: decimal.NewFromInt(70)}, nil
}

type stubCutoffService struct {
	result attendance.CutoffResult
	got    attendance.CutoffRequest
}

func (s *stubCutoffService) Run(_ context.Context, req attendance.CutoffRequest) (attendance.CutoffResult, error) {
	s.got = req
	return s.result, nil
}

type testServer struct {
	attendance *stubAttendanceService
	dashboard  *stubDashboardService
	balance    *stubBalanceService
	cutoff     *stubCutoffService
	handler    http.Handler
}

func newTestServer() *testServer {
	ts := &testServer{
		attendance: &stubAttendanceService{},
		dashboard:  &stubDashboardService{},
		balance:    &stubBalanceService{},
		cutoff:     &stubCutoffService{},
	}
	ts.handler = NewRouter(
		RouterConfig{AllowedOrigins: []string{"http://localhost:3000"}, Env: "test", LogLevel: slog.LevelError},
		NewAttendanceHandler(ts.attendance),
		NewDashboardHandler(ts.dashboard),
		NewLeaveHandler(ts.balance),
		NewPayrollHandler(stubDeductionService{}),
		NewCutoffHandler(ts.cutoff),
	)
	return ts
}

func (ts *testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
	return rec, envelope
}

func TestCheckIn_CreatedThenAlreadyRecorded(t *testing.T) {
	ts := newTestServer()
	calls := 0
	ts.attendance.checkIn = func(req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
		calls++
		assert.Equal(t, "E001", req.EmployeeID)
		require.NotNil(t, req.Latitude)
		assert.InDelta(t, 14.97, *req.Latitude, 1e-9)
		return attendance.CheckInResponse{
			AlreadyRecorded: calls > 1,
			Record:          attendance.AttendanceResponse{EmployeeID: req.EmployeeID, Status: attendance.StatusOnTime},
		}, nil
	}

	body := `{"employee_id":"E001","branch":"HQ","latitude":14.97,"longitude":102.09,"accuracy":10}`

	rec, env := ts.do(t, http.MethodPost, "/api/v1/attendance/check-in", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Checked in", env.Message)

	rec, env = ts.do(t, http.MethodPost, "/api/v1/attendance/check-in", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Already checked in today", env.Message)
}

func TestCheckIn_MalformedBody(t *testing.T) {
	ts := newTestServer()
	rec, env := ts.do(t, http.MethodPost, "/api/v1/attendance/check-in", `{"employee_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	ts := newTestServer()
	ts.attendance.checkIn = func(attendance.CheckInRequest) (attendance.CheckInResponse, error) {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to load employee: %w", employee.ErrEmployeeNotFound)
	}
	rec, env := ts.do(t, http.MethodPost, "/api/v1/attendance/check-in", `{"employee_id":"nobody","branch":"HQ"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestCheckOut_Outcomes(t *testing.T) {
	ts := newTestServer()
	var outcome error
	ts.attendance.checkOut = func(req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
		if outcome != nil {
			return attendance.CheckOutResponse{}, outcome
		}
		return attendance.CheckOutResponse{Record: attendance.AttendanceResponse{EmployeeID: req.EmployeeID, CheckoutTime: "16:05"}}, nil
	}

	outcome = fmt.Errorf("%w: opens at 16:00", attendance.ErrCheckoutTooEarly)
	rec, env := ts.do(t, http.MethodPost, "/api/v1/attendance/check-out", `{"employee_id":"E001"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, env.Error.Message, "opens at 16:00")

	outcome = attendance.ErrNotCheckedIn
	rec, _ = ts.do(t, http.MethodPost, "/api/v1/attendance/check-out", `{"employee_id":"E001"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	outcome = nil
	rec, env = ts.do(t, http.MethodPost, "/api/v1/attendance/check-out", `{"employee_id":"E001"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Checked out", env.Message)
}

func TestDailyOverview_PassesDate(t *testing.T) {
	ts := newTestServer()
	rec, env := ts.do(t, http.MethodGet, "/api/v1/attendance/daily?date=2024-06-10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "2024-06-10", ts.dashboard.got.Date)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/attendance/daily?date=10-06-2024", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Error.Details, "date")
}

func TestLeaveBalance_RouteParams(t *testing.T) {
	ts := newTestServer()
	rec, env := ts.do(t, http.MethodGet, "/api/v1/leave/balance/E042?month=2024-03", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "E042", ts.balance.got.EmployeeID)
	assert.Equal(t, "2024-03", ts.balance.got.Month)

	ts.balance.err = employee.ErrEmployeeNotFound
	rec, _ = ts.do(t, http.MethodGet, "/api/v1/leave/balance/E404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPayrollDeductions(t *testing.T) {
	ts := newTestServer()
	rec, env := ts.do(t, http.MethodGet, "/api/v1/payroll/deductions?month=2024-06", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2024-06", data["month"])
	assert.Equal(t, "70", data["total_fine"])

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/payroll/deductions?month=2024-13", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCutoffRun_EmptyBodyAndSkips(t *testing.T) {
	ts := newTestServer()
	ts.cutoff.result = attendance.CutoffResult{Date: "2024-06-10", Created: 3}

	rec, env := ts.do(t, http.MethodPost, "/api/v1/cutoff/run", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cutoff completed", env.Message)
	assert.Empty(t, ts.cutoff.got.Date)

	ts.cutoff.result = attendance.CutoffResult{Date: "2024-06-10", Skipped: attendance.CutoffSkipAlreadyDone}
	rec, env = ts.do(t, http.MethodPost, "/api/v1/cutoff/run", `{"date":"2024-06-10"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cutoff already ran for this date", env.Message)
	assert.Equal(t, "2024-06-10", ts.cutoff.got.Date)

	ts.cutoff.result = attendance.CutoffResult{Skipped: attendance.CutoffSkipTooEarly}
	_, env = ts.do(t, http.MethodPost, "/api/v1/cutoff/run", "")
	assert.Equal(t, "Cutoff time not reached yet", env.Message)
}
