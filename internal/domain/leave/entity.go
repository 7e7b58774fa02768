package leave

import (
	"time"
)

// LeaveType classifies a leave interval.
type LeaveType string

const (
	LeaveTypeSick          LeaveType = "sick"
	LeaveTypePersonal      LeaveType = "personal"
	LeaveTypeVacation      LeaveType = "vacation"
	LeaveTypePublicHoliday LeaveType = "public_holiday"
	LeaveTypeOther         LeaveType = "other"
)

// ApprovalStatus of a leave record.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// LeaveRecord is a declared leave interval, inclusive on both ends.
type LeaveRecord struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Type       LeaveType
	Status     ApprovalStatus
	Reason     *string
}

// Effective reports whether the record should be honoured. Rejected leave
// is treated as if it had never been filed.
func (l LeaveRecord) Effective() bool {
	return l.Status != ApprovalRejected
}

// Covers reports whether day falls within [StartDate, EndDate].
func (l LeaveRecord) Covers(day time.Time) bool {
	d := dateOnly(day)
	return !d.Before(dateOnly(l.StartDate)) && !d.After(dateOnly(l.EndDate))
}

// Days expands the interval into calendar days.
func (l LeaveRecord) Days() []time.Time {
	start, end := dateOnly(l.StartDate), dateOnly(l.EndDate)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
