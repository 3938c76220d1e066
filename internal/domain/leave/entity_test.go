package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeave_Covers(t *testing.T) {
	l := Leave{
		FromDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	assert.False(t, l.Covers(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, l.Covers(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)))
	assert.True(t, l.Covers(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)))
	assert.False(t, l.Covers(time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)))
}

func TestLeave_ReasonOrDefault(t *testing.T) {
	empty := ""
	sick := "Sick leave"
	assert.Equal(t, "Leave", Leave{}.ReasonOrDefault())
	assert.Equal(t, "Leave", Leave{Reason: &empty}.ReasonOrDefault())
	assert.Equal(t, "Sick leave", Leave{Reason: &sick}.ReasonOrDefault())
}

func TestLeave_IsApproved(t *testing.T) {
	assert.True(t, Leave{Status: StatusApproved}.IsApproved())
	assert.False(t, Leave{Status: StatusPending}.IsApproved())
}

func TestByEmployee_KeepsApprovedLeaveCoveringDate(t *testing.T) {
	date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	got := ByEmployee([]Leave{
		{ID: "pending", EmployeeID: "e1", FromDate: date, ToDate: date, Status: "pending"},
		{ID: "approved", EmployeeID: "e1", FromDate: date.AddDate(0, 0, -1), ToDate: date, Status: StatusApproved},
		{ID: "later", EmployeeID: "e2", FromDate: date.AddDate(0, 0, 1), ToDate: date.AddDate(0, 0, 3), Status: StatusApproved},
	}, date)

	assert.Len(t, got, 1)
	assert.Equal(t, "approved", got["e1"].ID)
}
