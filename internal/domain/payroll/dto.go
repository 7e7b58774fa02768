package payroll

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== DEDUCTION DTOs ==========

type DeductionRequest struct {
	Month string `json:"month"` // YYYY-MM, defaults to the current business month
}

func (r *DeductionRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs.Add("month", "month must be in YYYY-MM format")
		}
	}
	return errs.Err()
}

// DeductionLine is one fined day.
type DeductionLine struct {
	Date   string          `json:"date"`
	Status string          `json:"status"`
	Fine   decimal.Decimal `json:"fine"`
}

type EmployeeDeduction struct {
	EmployeeID  string          `json:"employee_id"`
	Name        string          `json:"name"`
	Department  string          `json:"department"`
	LateTier1   int             `json:"late_tier1"`
	LateTier2   int             `json:"late_tier2"`
	Absent      int             `json:"absent"`
	OutsideArea int             `json:"outside_area"`
	LeaveDays   int             `json:"leave_days"`
	TotalFine   decimal.Decimal `json:"total_fine"`
	Lines       []DeductionLine `json:"lines"`
}

type DeductionResponse struct {
	Month     string              `json:"month"`
	TotalFine decimal.Decimal     `json:"total_fine"`
	Employees []EmployeeDeduction `json:"employees"`
}
