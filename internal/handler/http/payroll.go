package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// GetMonthlyDeductions returns per-employee fine totals for a month
	GetMonthlyDeductions(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	deductionService payroll.DeductionService
}

func NewPayrollHandler(deductionService payroll.DeductionService) PayrollHandler {
	return &payrollHandlerImpl{deductionService: deductionService}
}

func (h *payrollHandlerImpl) GetMonthlyDeductions(w http.ResponseWriter, r *http.Request) {
	req := payroll.DeductionRequest{Month: r.URL.Query().Get("month")}

	result, err := h.deductionService.GetMonthlyDeductions(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
