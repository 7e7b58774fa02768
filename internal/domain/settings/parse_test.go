package settings

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, 480, s.StartMinutes)
	assert.Equal(t, Thresholds{GraceEnd: 485, Tier1End: 495, Tier2End: 510}, s.Thresholds)
	assert.Equal(t, 960, s.CheckoutEligibleMinutes)
	assert.Equal(t, 960, s.CutoffMinutes)
	assert.Equal(t, 100.0, s.RadiusMeters)
	assert.True(t, s.Fines.Tier1.Equal(decimal.NewFromInt(20)))
	assert.True(t, s.Fines.Tier2.Equal(decimal.NewFromInt(50)))
	assert.True(t, s.Fines.Absent.Equal(decimal.NewFromInt(50)))
}

func TestParse_CutoffTimeOverridesCheckout(t *testing.T) {
	doc := DefaultDocument()
	doc.CutoffTime = "17:00"

	s, err := doc.Parse()
	require.NoError(t, err)
	assert.Equal(t, 960, s.CheckoutEligibleMinutes)
	assert.Equal(t, 1020, s.CutoffMinutes)
}

func TestParse_MalformedClock(t *testing.T) {
	doc := DefaultDocument()
	doc.LateThreshold1 = "8.15"

	_, err := doc.Parse()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "LateThreshold1")
}

func TestParse_NegativeFineRejected(t *testing.T) {
	doc := DefaultDocument()
	doc.AbsentFine = decimal.NewFromInt(-1)

	_, err := doc.Parse()
	require.Error(t, err)
}

func TestParse_UnorderedThresholds(t *testing.T) {
	doc := DefaultDocument()
	doc.LateThreshold1 = "08:30"
	doc.LateThreshold2 = "08:15"

	_, err := doc.Parse()
	assert.ErrorIs(t, err, ErrThresholdsUnordered)
}
