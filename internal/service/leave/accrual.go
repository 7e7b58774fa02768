package leave

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/master/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
)

const (
	FieldMonthlyAllotment  = 5
	FieldFebruaryAllotment = 4

	OfficeAnnualEntitlement = 6
	FieldAnnualEntitlement  = 11

	// annual vacation starts after this much service
	annualTenureMonths = 12
)

// AccrualInput is everything the calculator reads. Attendance and Leaves
// must cover at least January of the target year through the target month;
// Leaves should cover the whole target year for the annual figures.
type AccrualInput struct {
	Employee   employee.Employee
	Month      time.Time
	Now        time.Time
	Attendance []attendance.Record
	Leaves     []leave.LeaveRecord
	Holidays   holiday.Set
}

type Accrual struct {
	Role              employee.Role
	MonthlyQuota      int
	CarriedOver       int
	Used              int
	Remaining         int
	AnnualEntitlement int
	AnnualUsed        int
	TenureMonths      int
	Charged           []leave.ChargedDay
}

type AccrualCalculator struct {
	officeDepartments []string
}

func NewAccrualCalculator(officeDepartments []string) *AccrualCalculator {
	return &AccrualCalculator{officeDepartments: officeDepartments}
}

// Calculate is a pure read over its input.
func (c *AccrualCalculator) Calculate(in AccrualInput) Accrual {
	role := employee.RoleFor(in.Employee.DepartmentCode, c.officeDepartments)
	month := firstOfMonth(in.Month)

	out := Accrual{Role: role}

	switch role {
	case employee.RoleOffice:
		out.MonthlyQuota = countWeekendDays(month)
		out.Charged = c.chargedDays(month, role, in)
		out.Used = len(out.Charged)

	case employee.RoleField:
		out.MonthlyQuota = fieldAllotment(month.Month())
		for m := c.carryStart(in.Employee, month); m.Before(month); m = m.AddDate(0, 1, 0) {
			rolled := fieldAllotment(m.Month()) - len(c.chargedDays(m, role, in))
			if rolled > 0 {
				out.CarriedOver += rolled
			}
		}
		out.Charged = c.chargedDays(month, role, in)
		out.Used = len(out.Charged)
	}

	out.Remaining = out.MonthlyQuota + out.CarriedOver - out.Used

	out.TenureMonths = tenureMonths(in.Employee.JoinDate, in.Now)
	if in.Employee.JoinDate != nil && out.TenureMonths >= annualTenureMonths {
		out.AnnualEntitlement = annualEntitlement(role)
	}
	out.AnnualUsed = countVacationDays(in.Leaves, month.Year())

	return out
}

// carryStart is January of the target year, or the join month for someone
// who joined during that year.
func (c *AccrualCalculator) carryStart(emp employee.Employee, month time.Time) time.Time {
	start := time.Date(month.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	if emp.JoinDate != nil && emp.JoinDate.Year() == month.Year() {
		start = time.Date(month.Year(), emp.JoinDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return start
}

// chargedDays lists the distinct days of month charged against the monthly
// quota. Vacation never counts here. Office roles get holidays for free.
func (c *AccrualCalculator) chargedDays(month time.Time, role employee.Role, in AccrualInput) []leave.ChargedDay {
	byDate := make(map[string]leave.ChargedDay)

	for _, rec := range in.Attendance {
		if !clock.SameMonth(rec.Date, month) || !rec.Status.IsDayOff() {
			continue
		}
		key := rec.Date.Format(clock.DateLayout)
		if _, ok := byDate[key]; !ok {
			byDate[key] = leave.ChargedDay{Date: key, Source: "attendance", Kind: string(rec.Status)}
		}
	}

	for _, l := range in.Leaves {
		if !l.Effective() || l.Type == leave.LeaveTypeVacation {
			continue
		}
		if role == employee.RoleOffice && l.Type == leave.LeaveTypePublicHoliday {
			continue
		}
		for _, d := range l.Days() {
			if !clock.SameMonth(d, month) {
				continue
			}
			key := d.Format(clock.DateLayout)
			if _, ok := byDate[key]; !ok {
				byDate[key] = leave.ChargedDay{Date: key, Source: "leave", Kind: string(l.Type)}
			}
		}
	}

	days := make([]leave.ChargedDay, 0, len(byDate))
	for key, day := range byDate {
		if role == employee.RoleOffice {
			if _, isHoliday := in.Holidays[key]; isHoliday {
				continue
			}
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

func fieldAllotment(m time.Month) int {
	if m == time.February {
		return FieldFebruaryAllotment
	}
	return FieldMonthlyAllotment
}

func annualEntitlement(role employee.Role) int {
	switch role {
	case employee.RoleOffice:
		return OfficeAnnualEntitlement
	case employee.RoleField:
		return FieldAnnualEntitlement
	}
	return 0
}

// countVacationDays counts distinct vacation days in year.
func countVacationDays(leaves []leave.LeaveRecord, year int) int {
	seen := make(map[string]struct{})
	for _, l := range leaves {
		if !l.Effective() || l.Type != leave.LeaveTypeVacation {
			continue
		}
		for _, d := range l.Days() {
			if d.Year() == year {
				seen[d.Format(clock.DateLayout)] = struct{}{}
			}
		}
	}
	return len(seen)
}

func countWeekendDays(month time.Time) int {
	n := 0
	for d := month; d.Month() == month.Month(); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			n++
		}
	}
	return n
}

// tenureMonths counts whole months of service up to now.
func tenureMonths(joinDate *time.Time, now time.Time) int {
	if joinDate == nil {
		return 0
	}
	years := now.Year() - joinDate.Year()
	months := int(now.Month()) - int(joinDate.Month())
	total := years*12 + months

	// Adjust if day hasn't passed yet
	if now.Day() < joinDate.Day() {
		total--
	}
	if total < 0 {
		total = 0
	}
	return total
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
