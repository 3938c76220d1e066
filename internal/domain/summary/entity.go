package summary

import "time"

// Summary statuses. A log may carry its own status, which is copied verbatim.
const (
	StatusPresent  = "present"
	StatusAbsent   = "absent"
	StatusOnLeave  = "on_leave"
	StatusHoliday  = "holiday"
	StatusWeekend  = "weekend"
	StatusApproved = "Approved"
)

// Summary is the derived attendance of one employee on one day, unique per (employee, date)
type Summary struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	Status           string
	TotalWorkHours   *float64
	LateArrival      bool
	EarlyDeparture   bool
	UnplannedAbsence bool
	Remarks          string
	DepartmentID     string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Join
	EmployeeFirstName *string
	EmployeeLastName  *string
}

func (s Summary) IsApproved() bool {
	return s.Status == StatusApproved
}
