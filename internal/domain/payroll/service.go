package payroll

import "context"

// DeductionService aggregates attendance fines into a monthly payroll view
type DeductionService interface {
	GetMonthlyDeductions(ctx context.Context, req DeductionRequest) (DeductionResponse, error)
}
