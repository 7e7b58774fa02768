package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNotCheckedIn       = errors.New("employee has not checked in today")
	ErrCheckoutTooEarly   = errors.New("checkout is not open yet")
	ErrUnknownStatus      = errors.New("unknown attendance status")
	ErrUnknownOrigin      = errors.New("unknown attendance origin")
)
