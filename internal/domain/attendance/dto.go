package attendance

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string   `json:"employee_id"`
	Branch     string   `json:"branch"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Accuracy   *float64 `json:"accuracy"`
	Origin     string   `json:"origin"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if validator.IsEmpty(r.Branch) {
		errs.Add("branch", "branch is required")
	}

	// A position is either complete or absent. Absent means the device
	// could not get a fix, which is recorded rather than rejected.
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs.Add("latitude", "latitude and longitude must be sent together")
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs.Add("latitude", "latitude must be between -90 and 90")
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs.Add("longitude", "longitude must be between -180 and 180")
	}
	if r.Accuracy != nil && *r.Accuracy < 0 {
		errs.Add("accuracy", "accuracy must not be negative")
	}

	if r.Origin != "" {
		o, err := ParseOrigin(r.Origin)
		if err != nil || o == OriginAutoCutoff {
			errs.Add("origin", "origin must be manual or device_scan")
		}
	}

	return errs.Err()
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	return errs.Err()
}

type GeofenceResponse struct {
	WithinArea             bool     `json:"within_area"`
	DistanceMeters         *float64 `json:"distance_meters"`
	AccuracyMeters         *float64 `json:"accuracy_meters"`
	AdjustedDistanceMeters *float64 `json:"adjusted_distance_meters"`
	RadiusMeters           float64  `json:"radius_meters"`
	Reason                 string   `json:"reason,omitempty"`
}

type AttendanceResponse struct {
	ID                     string          `json:"id"`
	EmployeeID             string          `json:"employee_id"`
	Name                   string          `json:"name"`
	Department             string          `json:"department"`
	Branch                 string          `json:"branch"`
	Date                   string          `json:"date"`
	CheckinTime            string          `json:"checkin_time"`
	CheckoutTime           string          `json:"checkout_time"`
	Timestamp              string          `json:"timestamp"`
	CheckoutTimestamp      *string         `json:"checkout_timestamp"`
	Status                 Status          `json:"status"`
	Fine                   decimal.Decimal `json:"fine"`
	IsAutoAbsent           bool            `json:"is_auto_absent"`
	IsManual               bool            `json:"is_manual"`
	Origin                 Origin          `json:"origin"`
	NeedsReview            bool            `json:"needs_review"`
	ReviewNote             *string         `json:"review_note"`
	DistanceMeters         *float64        `json:"distance_meters"`
	AccuracyMeters         *float64        `json:"accuracy_meters"`
	AdjustedDistanceMeters *float64        `json:"adjusted_distance_meters"`
}

// CheckInResponse carries the stored record. AlreadyRecorded is true when an
// earlier check-in for the day won; Geofence is then nil.
type CheckInResponse struct {
	AlreadyRecorded bool               `json:"already_recorded"`
	Record          AttendanceResponse `json:"record"`
	Geofence        *GeofenceResponse  `json:"geofence,omitempty"`
}

type CheckOutResponse struct {
	AlreadyRecorded bool               `json:"already_recorded"`
	Record          AttendanceResponse `json:"record"`
}
