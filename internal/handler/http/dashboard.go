package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDailyOverview returns every employee's effective status for a date
	GetDailyOverview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDailyOverview handles GET /attendance/daily?date=YYYY-MM-DD
func (h *dashboardHandlerImpl) GetDailyOverview(w http.ResponseWriter, r *http.Request) {
	req := dashboard.DailyOverviewRequest{Date: r.URL.Query().Get("date")}

	result, err := h.dashboardService.GetDailyOverview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
