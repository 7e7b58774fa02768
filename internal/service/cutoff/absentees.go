package cutoff

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// Absentees returns one synthesized absence per employee that has neither a
// record nor a non-rejected leave covering day. Employees who had not joined
// by day are skipped.
func Absentees(
	day, now time.Time,
	employees []employee.Employee,
	records []attendance.Record,
	leaves []leave.LeaveRecord,
	fine decimal.Decimal,
) []attendance.Record {
	recorded := make(map[string]struct{}, len(records))
	for _, r := range records {
		recorded[r.EmployeeID] = struct{}{}
	}

	onLeave := make(map[string]struct{}, len(leaves))
	for _, l := range leaves {
		if l.Effective() && l.Covers(day) {
			onLeave[l.EmployeeID] = struct{}{}
		}
	}

	var absences []attendance.Record
	for _, emp := range employees {
		if _, ok := recorded[emp.ID]; ok {
			continue
		}
		if _, ok := onLeave[emp.ID]; ok {
			continue
		}
		if !emp.HasJoinedBy(day) {
			continue
		}
		absences = append(absences, attendance.Record{
			ID:           attendance.RecordKey(emp.ID, day),
			EmployeeID:   emp.ID,
			Name:         emp.Name,
			Department:   emp.DepartmentCode,
			Branch:       emp.PrimaryBranch(),
			Date:         day,
			CheckinTime:  attendance.NoTime,
			CheckoutTime: attendance.NoTime,
			Timestamp:    now,
			Status:       attendance.StatusAbsent,
			Fine:         fine,
			IsAutoAbsent: true,
			Origin:       attendance.OriginAutoCutoff,
		})
	}
	return absences
}
