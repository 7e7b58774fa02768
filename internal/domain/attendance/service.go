package attendance

import (
	"context"
)

// AttendanceService records check-in and check-out events
type AttendanceService interface {
	// CheckIn records the first check-in of the day. Later calls for the same
	// day return the stored record with AlreadyRecorded set.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut returns ErrCheckoutTooEarly before the configured time and
	// ErrNotCheckedIn when there is no check-in to close.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)
}
