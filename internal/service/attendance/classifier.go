package attendance

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/settings"
	"github.com/shopspring/decimal"
)

// ClassifyTier maps a check-in minute of day to its lateness tier. Each
// threshold is the inclusive upper bound of its tier.
func ClassifyTier(minutes int, th settings.Thresholds, fines settings.Fines) (attendance.Status, decimal.Decimal) {
	switch {
	case minutes <= th.GraceEnd:
		return attendance.StatusOnTime, decimal.Zero
	case minutes <= th.Tier1End:
		return attendance.StatusLateTier1, fines.Tier1
	case minutes <= th.Tier2End:
		return attendance.StatusLateTier2, fines.Tier2
	default:
		return attendance.StatusAbsent, fines.Absent
	}
}

// ClassifyCheckIn applies the geofence override on top of the tier. Being
// outside the area is reported as its own status and carries no fine.
func ClassifyCheckIn(minutes int, withinArea bool, th settings.Thresholds, fines settings.Fines) (attendance.Status, decimal.Decimal) {
	if !withinArea {
		return attendance.StatusOutsideArea, decimal.Zero
	}
	return ClassifyTier(minutes, th, fines)
}
