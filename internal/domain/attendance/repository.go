package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the event store for attendance records. Every
// write is keyed by Record.ID so repeated writes converge on one row.
type AttendanceRepository interface {
	// CreateIfAbsent inserts rec unless a record with the same ID exists.
	// It returns the stored record and whether this call created it.
	CreateIfAbsent(ctx context.Context, rec Record) (Record, bool, error)

	// GetByID returns ErrAttendanceNotFound when there is no record.
	GetByID(ctx context.Context, id string) (Record, error)

	// MarkCheckedOut sets the checkout fields only when the record is checked
	// in and not yet checked out. It reports whether a row changed.
	MarkCheckedOut(ctx context.Context, id string, checkoutTime string, at time.Time) (bool, error)

	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]Record, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)

	// HasAutoAbsent reports whether a cutoff already wrote absences for date.
	HasAutoAbsent(ctx context.Context, date time.Time) (bool, error)

	// InsertAbsences writes all records in one atomic batch, leaving any
	// existing record untouched. It returns how many rows were inserted.
	InsertAbsences(ctx context.Context, records []Record) (int, error)
}
