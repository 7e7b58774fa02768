package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

const leaveColumns = `id, employee_id, start_date, end_date, type, status, reason`

func (r *leaveRepository) list(ctx context.Context, query string, args ...any) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		var (
			l           leave.LeaveRecord
			typ, status string
		)
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &typ, &status, &l.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		l.Type = leave.LeaveType(typ)
		l.Status = leave.ApprovalStatus(status)
		records = append(records, l)
	}
	return records, rows.Err()
}

// ListCovering implements leave.LeaveRepository.
func (r *leaveRepository) ListCovering(ctx context.Context, date time.Time) ([]leave.LeaveRecord, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_records
		WHERE start_date <= $1::date AND end_date >= $1::date
		ORDER BY employee_id`
	records, err := r.list(ctx, query, date.Format(clock.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list leave covering date: %w", err)
	}
	return records, nil
}

// ListByEmployeeBetween implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRecord, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_records
		WHERE employee_id = $1
		  AND start_date <= $3::date AND end_date >= $2::date
		ORDER BY start_date`
	records, err := r.list(ctx, query, employeeID, from.Format(clock.DateLayout), to.Format(clock.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list employee leave: %w", err)
	}
	return records, nil
}

// ListBetween implements leave.LeaveRepository.
func (r *leaveRepository) ListBetween(ctx context.Context, from, to time.Time) ([]leave.LeaveRecord, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_records
		WHERE start_date <= $2::date AND end_date >= $1::date
		ORDER BY employee_id, start_date`
	records, err := r.list(ctx, query, from.Format(clock.DateLayout), to.Format(clock.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list leave: %w", err)
	}
	return records, nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
