package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDailyOverview merges employees, attendance and leave for one date
	GetDailyOverview(ctx context.Context, req DailyOverviewRequest) (DailyOverviewResponse, error)
}
