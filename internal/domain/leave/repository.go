package leave

import (
	"context"
	"time"
)

// LeaveRepository reads leave_records. The engine never writes leave.
type LeaveRepository interface {
	// ListCovering returns every leave record whose interval contains date.
	ListCovering(ctx context.Context, date time.Time) ([]LeaveRecord, error)

	// ListByEmployeeBetween returns the employee's records overlapping [from, to].
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRecord, error)

	// ListBetween returns all records overlapping [from, to].
	ListBetween(ctx context.Context, from, to time.Time) ([]LeaveRecord, error)
}
