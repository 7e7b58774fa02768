package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	id, employee_id, name, department, branch, date,
	checkin_time, checkout_time, timestamp, checkout_timestamp,
	status, fine, is_auto_absent, is_manual, origin,
	needs_review, review_note,
	distance_meters, accuracy_meters, adjusted_distance_meters`

const insertAttendance = `
	INSERT INTO attendance_records (` + attendanceColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6::date, $7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
	)
	ON CONFLICT DO NOTHING`

func attendanceArgs(rec attendance.Record) []any {
	return []any{
		rec.ID, rec.EmployeeID, rec.Name, rec.Department, rec.Branch, rec.Date.Format(clock.DateLayout),
		rec.CheckinTime, rec.CheckoutTime, rec.Timestamp, rec.CheckoutTimestamp,
		string(rec.Status), rec.Fine, rec.IsAutoAbsent, rec.IsManual, string(rec.Origin),
		rec.NeedsReview, rec.ReviewNote,
		rec.DistanceMeters, rec.AccuracyMeters, rec.AdjustedDistanceMeters,
	}
}

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var (
		rec    attendance.Record
		status string
		origin string
	)
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Name, &rec.Department, &rec.Branch, &rec.Date,
		&rec.CheckinTime, &rec.CheckoutTime, &rec.Timestamp, &rec.CheckoutTimestamp,
		&status, &rec.Fine, &rec.IsAutoAbsent, &rec.IsManual, &origin,
		&rec.NeedsReview, &rec.ReviewNote,
		&rec.DistanceMeters, &rec.AccuracyMeters, &rec.AdjustedDistanceMeters,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	if rec.Status, err = attendance.ParseStatus(status); err != nil {
		return attendance.Record{}, err
	}
	if rec.Origin, err = attendance.ParseOrigin(origin); err != nil {
		return attendance.Record{}, err
	}
	return rec, nil
}

func (a *attendanceRepository) list(ctx context.Context, query string, args ...any) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CreateIfAbsent implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateIfAbsent(ctx context.Context, rec attendance.Record) (attendance.Record, bool, error) {
	q := GetQuerier(ctx, a.db)

	query := insertAttendance + ` RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query, attendanceArgs(rec)...))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, false, fmt.Errorf("failed to insert attendance: %w", err)
	}

	// Someone else already holds the key for this day.
	existing, err := a.GetByID(ctx, rec.ID)
	if err != nil {
		return attendance.Record{}, false, err
	}
	return existing, false, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return rec, nil
}

// MarkCheckedOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) MarkCheckedOut(ctx context.Context, id string, checkoutTime string, at time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET checkout_time = $2, checkout_timestamp = $3
		WHERE id = $1
		  AND checkout_time = '-'
		  AND checkin_time <> '-'
	`

	tag, err := q.Exec(ctx, query, id, checkoutTime, at)
	if err != nil {
		return false, fmt.Errorf("failed to update checkout: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE date = $1::date ORDER BY employee_id`
	records, err := a.list(ctx, query, date.Format(clock.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	return records, nil
}

// ListBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListBetween(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date BETWEEN $1::date AND $2::date
		ORDER BY date, employee_id`
	records, err := a.list(ctx, query, from.Format(clock.DateLayout), to.Format(clock.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND date BETWEEN $2::date AND $3::date
		ORDER BY date`
	records, err := a.list(ctx, query, employeeID, from.Format(clock.DateLayout), to.Format(clock.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list employee attendance: %w", err)
	}
	return records, nil
}

// HasAutoAbsent implements attendance.AttendanceRepository.
func (a *attendanceRepository) HasAutoAbsent(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT EXISTS (SELECT 1 FROM attendance_records WHERE date = $1::date AND is_auto_absent)`

	var exists bool
	if err := q.QueryRow(ctx, query, date.Format(clock.DateLayout)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check auto absences: %w", err)
	}
	return exists, nil
}

// InsertAbsences implements attendance.AttendanceRepository. All rows go in
// one transaction; any failure rolls the whole batch back.
func (a *attendanceRepository) InsertAbsences(ctx context.Context, records []attendance.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	created := 0
	err := WithTransaction(ctx, a.db, func(ctx context.Context, tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, rec := range records {
			batch.Queue(insertAttendance, attendanceArgs(rec)...)
		}

		br := tx.SendBatch(ctx, batch)
		for range records {
			tag, err := br.Exec()
			if err != nil {
				_ = br.Close()
				return err
			}
			created += int(tag.RowsAffected())
		}
		return br.Close()
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert absences: %w", err)
	}
	return created, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
