package leave

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type BalanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"` // YYYY-MM, defaults to the current business month
}

func (r *BalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs.Add("month", "month must be in YYYY-MM format")
		}
	}

	return errs.Err()
}

// ChargedDay is one day counted against the monthly quota or the annual
// vacation entitlement.
type ChargedDay struct {
	Date   string `json:"date"`
	Source string `json:"source"` // attendance | leave
	Kind   string `json:"kind"`   // attendance status or leave type
}

type BalanceResponse struct {
	EmployeeID        string       `json:"employee_id"`
	EmployeeName      string       `json:"employee_name"`
	Role              string       `json:"role"`
	Month             string       `json:"month"`
	MonthlyQuota      int          `json:"monthly_quota"`
	CarriedOver       int          `json:"carried_over"`
	Used              int          `json:"used"`
	Remaining         int          `json:"remaining"`
	AnnualEntitlement int          `json:"annual_entitlement"`
	AnnualUsed        int          `json:"annual_used"`
	AnnualRemaining   int          `json:"annual_remaining"`
	YearsOfService    int          `json:"years_of_service"`
	History           []ChargedDay `json:"history"`
}
