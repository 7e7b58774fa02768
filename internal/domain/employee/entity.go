package employee

import (
	"time"
)

// Employee is read-only directory data for the attendance engine.
type Employee struct {
	ID             string
	Name           string
	DepartmentCode string
	Branches       []string
	JoinDate       *time.Time
}

// Role decides how leave quota accrues.
type Role string

const (
	// RoleOffice gets one day off per weekend day of the month, no carry-over.
	RoleOffice Role = "office"
	// RoleField gets a fixed monthly allotment that carries forward.
	RoleField Role = "field"
)

// RoleFor derives the role from the department code.
func RoleFor(departmentCode string, officeDepartments []string) Role {
	for _, code := range officeDepartments {
		if code == departmentCode {
			return RoleOffice
		}
	}
	return RoleField
}

// HasJoinedBy reports whether the employee was employed on day.
// Employees without a recorded join date are treated as always employed.
func (e Employee) HasJoinedBy(day time.Time) bool {
	if e.JoinDate == nil {
		return true
	}
	jd := *e.JoinDate
	joined := time.Date(jd.Year(), jd.Month(), jd.Day(), 0, 0, 0, 0, day.Location())
	return !joined.After(day)
}

// PrimaryBranch returns the first registered branch, or "".
func (e Employee) PrimaryBranch() string {
	if len(e.Branches) == 0 {
		return ""
	}
	return e.Branches[0]
}
