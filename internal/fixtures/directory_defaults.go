package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/master/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ==========================================
// DEFAULT BRANCHES
// ==========================================

// GetDefaultBranches returns a surveyed head office and an unsurveyed site.
func GetDefaultBranches() []branch.Branch {
	return []branch.Branch{
		{Name: "Korat", Coordinate: &branch.Coordinate{Latitude: 14.9709, Longitude: 102.0977}},
		{Name: "Pak Chong"},
	}
}

// ==========================================
// DEFAULT EMPLOYEES
// ==========================================

// GetDefaultEmployees returns one office employee, one field employee and a
// field employee who joins mid-year.
func GetDefaultEmployees(year int) []employee.Employee {
	joined := date(year-3, time.April, 1)
	midYear := date(year, time.March, 15)
	return []employee.Employee{
		{ID: "E001", Name: "Office Employee", DepartmentCode: "01", Branches: []string{"Korat"}, JoinDate: &joined},
		{ID: "E002", Name: "Field Employee", DepartmentCode: "03", Branches: []string{"Korat", "Pak Chong"}, JoinDate: &joined},
		{ID: "E003", Name: "New Joiner", DepartmentCode: "03", Branches: []string{"Pak Chong"}, JoinDate: &midYear},
	}
}

// ==========================================
// DEFAULT HOLIDAYS
// ==========================================

func GetDefaultHolidays(year int) []holiday.Holiday {
	return []holiday.Holiday{
		{Date: date(year, time.January, 1), Title: "New Year's Day"},
		{Date: date(year, time.April, 13), Title: "Songkran"},
		{Date: date(year, time.December, 31), Title: "New Year's Eve"},
	}
}

// ==========================================
// DEFAULT LEAVE
// ==========================================

// GetDefaultLeave returns an approved, a pending and a rejected leave in June.
func GetDefaultLeave(year int) []leave.LeaveRecord {
	return []leave.LeaveRecord{
		{ID: "L001", EmployeeID: "E001", StartDate: date(year, time.June, 10), EndDate: date(year, time.June, 11), Type: leave.LeaveTypeVacation, Status: leave.ApprovalApproved},
		{ID: "L002", EmployeeID: "E002", StartDate: date(year, time.June, 10), EndDate: date(year, time.June, 10), Type: leave.LeaveTypeSick, Status: leave.ApprovalPending, Reason: strPtr("fever")},
		{ID: "L003", EmployeeID: "E003", StartDate: date(year, time.June, 3), EndDate: date(year, time.June, 14), Type: leave.LeaveTypePersonal, Status: leave.ApprovalRejected},
	}
}

// ==========================================
// SEEDING
// ==========================================

// SeedDirectory inserts the default directory data for year and the default
// settings document. Existing rows are left untouched.
func SeedDirectory(ctx context.Context, q database.Querier, year int) error {
	for _, b := range GetDefaultBranches() {
		var lat, lng *float64
		if b.Coordinate != nil {
			lat, lng = &b.Coordinate.Latitude, &b.Coordinate.Longitude
		}
		if _, err := q.Exec(ctx,
			`INSERT INTO branches (name, latitude, longitude) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			b.Name, lat, lng); err != nil {
			return fmt.Errorf("failed to seed branch %s: %w", b.Name, err)
		}
	}

	for _, e := range GetDefaultEmployees(year) {
		var joinDate *string
		if e.JoinDate != nil {
			s := e.JoinDate.Format("2006-01-02")
			joinDate = &s
		}
		if _, err := q.Exec(ctx,
			`INSERT INTO employees (id, name, department_code, branches, join_date)
			 VALUES ($1, $2, $3, $4, $5::date) ON CONFLICT (id) DO NOTHING`,
			e.ID, e.Name, e.DepartmentCode, e.Branches, joinDate); err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", e.ID, err)
		}
	}

	for _, h := range GetDefaultHolidays(year) {
		if _, err := q.Exec(ctx,
			`INSERT INTO holidays (date, title) VALUES ($1::date, $2) ON CONFLICT (date) DO NOTHING`,
			h.Date.Format("2006-01-02"), h.Title); err != nil {
			return fmt.Errorf("failed to seed holiday %s: %w", h.Title, err)
		}
	}

	for _, l := range GetDefaultLeave(year) {
		if _, err := q.Exec(ctx,
			`INSERT INTO leave_records (id, employee_id, start_date, end_date, type, status, reason)
			 VALUES ($1, $2, $3::date, $4::date, $5, $6, $7) ON CONFLICT (id) DO NOTHING`,
			l.ID, l.EmployeeID, l.StartDate.Format("2006-01-02"), l.EndDate.Format("2006-01-02"),
			string(l.Type), string(l.Status), l.Reason); err != nil {
			return fmt.Errorf("failed to seed leave %s: %w", l.ID, err)
		}
	}

	doc, err := json.Marshal(settings.DefaultDocument())
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if _, err := q.Exec(ctx,
		`INSERT INTO settings (key, document) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
		settings.Key, string(doc)); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	return nil
}
