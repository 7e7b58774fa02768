package settings

import (
	"github.com/shopspring/decimal"
)

// Key is the id of the check-in settings document.
const Key = "checkin"

// Document is the stored configuration document. Times are "HH:mm" strings.
type Document struct {
	StartTime      string          `json:"startTime" validate:"omitempty,clock"`
	LateAfter      string          `json:"lateAfter" validate:"required,clock"`
	LateThreshold1 string          `json:"lateThreshold1" validate:"required,clock"`
	LateThreshold2 string          `json:"lateThreshold2" validate:"required,clock"`
	CheckoutTime   string          `json:"checkoutTime" validate:"required,clock"`
	CutoffTime     string          `json:"cutoffTime,omitempty" validate:"omitempty,clock"`
	Radius         float64         `json:"radius" validate:"gte=0"`
	LateFine20     decimal.Decimal `json:"lateFine20" validate:"gte=0"`
	LateFine50     decimal.Decimal `json:"lateFine50" validate:"gte=0"`
	AbsentFine     decimal.Decimal `json:"absentFine" validate:"gte=0"`
}

// Thresholds are the inclusive upper bounds of each lateness tier, in
// minutes since midnight. GraceEnd < Tier1End < Tier2End.
type Thresholds struct {
	GraceEnd int
	Tier1End int
	Tier2End int
}

// Fines per tier. All non-negative.
type Fines struct {
	Tier1  decimal.Decimal
	Tier2  decimal.Decimal
	Absent decimal.Decimal
}

// Settings is the parsed, validated configuration used by the engine.
type Settings struct {
	StartMinutes            int
	Thresholds              Thresholds
	Fines                   Fines
	CheckoutEligibleMinutes int
	CutoffMinutes           int
	RadiusMeters            float64
}

// DefaultDocument mirrors the values used when no document is stored.
func DefaultDocument() Document {
	return Document{
		StartTime:      "08:00",
		LateAfter:      "08:05",
		LateThreshold1: "08:15",
		LateThreshold2: "08:30",
		CheckoutTime:   "16:00",
		Radius:         100,
		LateFine20:     decimal.NewFromInt(20),
		LateFine50:     decimal.NewFromInt(50),
		AbsentFine:     decimal.NewFromInt(50),
	}
}
