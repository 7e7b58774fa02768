package attendance

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// CutoffSkip explains why a cutoff run wrote nothing.
type CutoffSkip string

const (
	CutoffSkipNone        CutoffSkip = ""
	CutoffSkipTooEarly    CutoffSkip = "before_cutoff_time"
	CutoffSkipAlreadyDone CutoffSkip = "already_run"
)

type CutoffRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to the current business date
}

func (r *CutoffRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	return errs.Err()
}

type CutoffResult struct {
	RunID      string     `json:"run_id"`
	Date       string     `json:"date"`
	CutoffTime string     `json:"cutoff_time"`
	Skipped    CutoffSkip `json:"skipped,omitempty"`
	Created    int        `json:"created"`
}

// CutoffService synthesizes absences for a business date.
type CutoffService interface {
	// Run is safe to invoke at any cadence. Repeated or early invocations
	// return a result with Skipped set and write nothing.
	Run(ctx context.Context, req CutoffRequest) (CutoffResult, error)
}
