package schedule

import (
	"context"
	"time"
)

type ShiftAssignmentRepository interface {
	// ListActiveByDepartment returns assignments covering date for employees of
	// the department, with their shift, latest effective_from first per employee
	ListActiveByDepartment(ctx context.Context, departmentID string, date time.Time) ([]ShiftAssignment, error)
}

// ActiveByEmployee keeps the first assignment per employee that covers date
func ActiveByEmployee(assignments []ShiftAssignment, date time.Time) map[string]ShiftAssignment {
	out := make(map[string]ShiftAssignment, len(assignments))
	for _, a := range assignments {
		if !a.CoversDate(date) {
			continue
		}
		if _, seen := out[a.EmployeeID]; !seen {
			out[a.EmployeeID] = a
		}
	}
	return out
}
