package attendance

import (
	"math"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/utils"
)

// Geofence failure reasons recorded on the audit trail.
const (
	ReasonNoPosition         = "position unavailable"
	ReasonNoBranchCoordinate = "branch has no registered coordinate"
	ReasonOutsideRadius      = "outside branch radius"
)

// Position is a device fix. Accuracy is the reported horizontal error in meters.
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

// EvaluateGeofence decides whether pos is inside radius meters of the branch.
// The device's accuracy is subtracted from the raw distance, floored at zero.
// A missing position or branch coordinate is never within the area.
func EvaluateGeofence(pos *Position, b branch.Branch, radius float64) attendance.GeofenceResult {
	result := attendance.GeofenceResult{RadiusMeters: radius}

	if pos == nil {
		result.Reason = ReasonNoPosition
		return result
	}
	accuracy := math.Max(0, pos.Accuracy)
	result.AccuracyMeters = &accuracy

	if b.Coordinate == nil {
		result.Reason = ReasonNoBranchCoordinate
		return result
	}

	distance := utils.HaversineDistance(pos.Latitude, pos.Longitude, b.Coordinate.Latitude, b.Coordinate.Longitude)
	adjusted := math.Max(0, distance-accuracy)
	result.DistanceMeters = &distance
	result.AdjustedDistanceMeters = &adjusted

	result.WithinArea = adjusted <= radius
	if !result.WithinArea {
		result.Reason = ReasonOutsideRadius
	}
	return result
}
