package dashboard

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type DailyOverviewRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
}

func (r *DailyOverviewRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	return errs.Err()
}

// DailyEntry is one employee's effective status for a date. Status is nil
// when nothing is recorded yet.
type DailyEntry struct {
	EmployeeID   string             `json:"employee_id"`
	Name         string             `json:"name"`
	Department   string             `json:"department"`
	Branch       string             `json:"branch"`
	Status       *attendance.Status `json:"status"`
	CheckinTime  string             `json:"checkin_time"`
	CheckoutTime string             `json:"checkout_time"`
	Fine         decimal.Decimal    `json:"fine"`
	LeaveType    *string            `json:"leave_type,omitempty"`
	NeedsReview  bool               `json:"needs_review"`
}

type DailySummary struct {
	Total       int `json:"total"`
	OnTime      int `json:"on_time"`
	LateTier1   int `json:"late_tier1"`
	LateTier2   int `json:"late_tier2"`
	Absent      int `json:"absent"`
	OutsideArea int `json:"outside_area"`
	OnLeave     int `json:"on_leave"`
	NotRecorded int `json:"not_recorded"`
}

type DailyOverviewResponse struct {
	Date    string       `json:"date"`
	Summary DailySummary `json:"summary"`
	Entries []DailyEntry `json:"entries"`
}
