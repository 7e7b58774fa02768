package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveRecord_Covers(t *testing.T) {
	l := LeaveRecord{StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 12)}

	assert.False(t, l.Covers(day(2024, 6, 9)))
	assert.True(t, l.Covers(day(2024, 6, 10)))
	assert.True(t, l.Covers(day(2024, 6, 11)))
	assert.True(t, l.Covers(day(2024, 6, 12)))
	assert.False(t, l.Covers(day(2024, 6, 13)))

	bkk := time.FixedZone("ICT", 7*3600)
	assert.True(t, l.Covers(time.Date(2024, 6, 12, 0, 0, 0, 0, bkk)))
}

func TestLeaveRecord_Days(t *testing.T) {
	l := LeaveRecord{StartDate: day(2024, 1, 30), EndDate: day(2024, 2, 2)}
	days := l.Days()

	assert.Len(t, days, 4)
	assert.Equal(t, "2024-01-30", days[0].Format("2006-01-02"))
	assert.Equal(t, "2024-02-02", days[3].Format("2006-01-02"))

	single := LeaveRecord{StartDate: day(2024, 1, 5), EndDate: day(2024, 1, 5)}
	assert.Len(t, single.Days(), 1)
}

func TestLeaveRecord_Effective(t *testing.T) {
	assert.True(t, LeaveRecord{Status: ApprovalApproved}.Effective())
	assert.True(t, LeaveRecord{Status: ApprovalPending}.Effective())
	assert.False(t, LeaveRecord{Status: ApprovalRejected}.Effective())
}

func TestBalanceRequest_Validate(t *testing.T) {
	assert.NoError(t, (&BalanceRequest{EmployeeID: "E001", Month: "2024-02"}).Validate())
	assert.NoError(t, (&BalanceRequest{EmployeeID: "E001"}).Validate())
	assert.Error(t, (&BalanceRequest{Month: "2024-02"}).Validate())
	assert.Error(t, (&BalanceRequest{EmployeeID: "E001", Month: "02-2024"}).Validate())
}
