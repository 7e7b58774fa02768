package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoleFor(t *testing.T) {
	office := []string{"01", "02"}

	assert.Equal(t, RoleOffice, RoleFor("01", office))
	assert.Equal(t, RoleOffice, RoleFor("02", office))
	assert.Equal(t, RoleField, RoleFor("03", office))
	assert.Equal(t, RoleField, RoleFor("04", office))
	assert.Equal(t, RoleField, RoleFor("", office))
}

func TestHasJoinedBy(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	same := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	after := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, Employee{}.HasJoinedBy(day))
	assert.True(t, Employee{JoinDate: &before}.HasJoinedBy(day))
	assert.True(t, Employee{JoinDate: &same}.HasJoinedBy(day))
	assert.False(t, Employee{JoinDate: &after}.HasJoinedBy(day))
}
