package settings

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validateOnce sync.Once
	validate     *playground.Validate
)

func documentValidator() *playground.Validate {
	validateOnce.Do(func() {
		validate = playground.New(playground.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("clock", func(fl playground.FieldLevel) bool {
			return validator.IsValidClock(fl.Field().String())
		})
		validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
	})
	return validate
}

// Validate checks field formats and tier ordering.
func (d Document) Validate() error {
	if err := documentValidator().Struct(d); err != nil {
		var errs validator.ValidationErrors
		if fieldErrs, ok := err.(playground.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				errs.Add(fe.Field(), fmt.Sprintf("failed %q validation", fe.Tag()))
			}
			return errs
		}
		return err
	}
	return nil
}

// Parse validates the document and converts it into Settings.
func (d Document) Parse() (Settings, error) {
	if err := d.Validate(); err != nil {
		return Settings{}, err
	}

	grace, _ := clock.ParseMinutes(d.LateAfter)
	tier1, _ := clock.ParseMinutes(d.LateThreshold1)
	tier2, _ := clock.ParseMinutes(d.LateThreshold2)
	checkout, _ := clock.ParseMinutes(d.CheckoutTime)

	if !(grace < tier1 && tier1 < tier2) {
		return Settings{}, ErrThresholdsUnordered
	}

	start := 0
	if d.StartTime != "" {
		start, _ = clock.ParseMinutes(d.StartTime)
	}

	cutoff := checkout
	if d.CutoffTime != "" {
		cutoff, _ = clock.ParseMinutes(d.CutoffTime)
	}

	return Settings{
		StartMinutes: start,
		Thresholds: Thresholds{
			GraceEnd: grace,
			Tier1End: tier1,
			Tier2End: tier2,
		},
		Fines: Fines{
			Tier1:  d.LateFine20,
			Tier2:  d.LateFine50,
			Absent: d.AbsentFine,
		},
		CheckoutEligibleMinutes: checkout,
		CutoffMinutes:           cutoff,
		RadiusMeters:            d.Radius,
	}, nil
}

// Defaults returns the parsed default settings.
func Defaults() Settings {
	s, err := DefaultDocument().Parse()
	if err != nil {
		panic("settings: invalid default document: " + err.Error())
	}
	return s
}
