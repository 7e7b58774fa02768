package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the closed set of attendance classifications.
type Status string

const (
	StatusOnTime      Status = "on_time"
	StatusLateTier1   Status = "late_tier1"
	StatusLateTier2   Status = "late_tier2"
	StatusAbsent      Status = "absent"
	StatusOutsideArea Status = "outside_area"
	StatusOnLeave     Status = "on_leave"
)

// ParseStatus rejects anything outside the closed set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOnTime, StatusLateTier1, StatusLateTier2, StatusAbsent, StatusOutsideArea, StatusOnLeave:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// IsLate reports the two lateness tiers.
func (s Status) IsLate() bool {
	switch s {
	case StatusLateTier1, StatusLateTier2:
		return true
	case StatusOnTime, StatusAbsent, StatusOutsideArea, StatusOnLeave:
		return false
	}
	return false
}

// IsDayOff reports statuses that consume a day of leave quota.
func (s Status) IsDayOff() bool {
	switch s {
	case StatusAbsent, StatusOnLeave:
		return true
	case StatusOnTime, StatusLateTier1, StatusLateTier2, StatusOutsideArea:
		return false
	}
	return false
}

// Origin records how a record came to exist.
type Origin string

const (
	OriginManual     Origin = "manual"
	OriginDeviceScan Origin = "device_scan"
	OriginAutoCutoff Origin = "auto_cutoff"
)

func ParseOrigin(s string) (Origin, error) {
	switch Origin(s) {
	case OriginManual, OriginDeviceScan, OriginAutoCutoff:
		return Origin(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrigin, s)
}

// State of the per-day check-in state machine.
type State int

const (
	StateNoRecord State = iota
	StateCheckedIn
	StateCheckedOut
)

// NoTime marks a missing check-in or check-out time.
const NoTime = "-"

// Record is one employee's attendance for one business date.
// ID is always RecordKey(EmployeeID, Date).
type Record struct {
	ID                string
	EmployeeID        string
	Name              string
	Department        string
	Branch            string
	Date              time.Time
	CheckinTime       string
	CheckoutTime      string
	Timestamp         time.Time
	CheckoutTimestamp *time.Time
	Status            Status
	Fine              decimal.Decimal
	IsAutoAbsent      bool
	IsManual          bool
	Origin            Origin
	NeedsReview       bool
	ReviewNote        *string

	// Geofence audit
	DistanceMeters         *float64
	AccuracyMeters         *float64
	AdjustedDistanceMeters *float64
}

// RecordKey is the idempotency key for (employeeID, date).
func RecordKey(employeeID string, date time.Time) string {
	return employeeID + "_" + date.Format("2006-01-02")
}

// State derives the state machine position from the stored times.
// Synthesized absences have no check-in and therefore never reach CheckedIn.
func (r Record) State() State {
	if r.CheckinTime == "" || r.CheckinTime == NoTime {
		return StateNoRecord
	}
	if r.CheckoutTime == "" || r.CheckoutTime == NoTime {
		return StateCheckedIn
	}
	return StateCheckedOut
}

// GeofenceResult is the audit trail of one area check.
type GeofenceResult struct {
	WithinArea             bool
	DistanceMeters         *float64
	AccuracyMeters         *float64
	AdjustedDistanceMeters *float64
	RadiusMeters           float64
	Reason                 string
}
