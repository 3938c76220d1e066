package attendance

import (
	"time"
)

// Log is a raw clock event, unique per (employee, date, session)
type Log struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	SessionID      string
	ActualClockIn  *time.Time
	ActualClockOut *time.Time
	Status         string
	CreatedAt      time.Time

	// Joined projections, populated by list queries only
	Employee *EmployeeRef
	Session  *Session
}

type EmployeeRef struct {
	ID           string
	FirstName    string
	LastName     string
	DepartmentID string
}

// Session is a sub-daily attendance slot
type Session struct {
	ID               string
	SessionNumber    int
	ExpectedClockIn  *string
	ExpectedClockOut *string
}

// Key identifies a log for duplicate detection
type Key struct {
	EmployeeID string
	Date       time.Time
	SessionID  string
}

func (l Log) Key() Key {
	return Key{EmployeeID: l.EmployeeID, Date: l.Date, SessionID: l.SessionID}
}
