package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	balanceService leave.BalanceService
}

func NewLeaveHandler(balanceService leave.BalanceService) LeaveHandler {
	return &leaveHandlerImpl{balanceService: balanceService}
}

// GetBalance handles GET /leave/balance/{employeeID}?month=YYYY-MM
func (h *leaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	req := leave.BalanceRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Month:      r.URL.Query().Get("month"),
	}

	result, err := h.balanceService.GetBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
