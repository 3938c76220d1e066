package employee

import (
	"context"
)

type EmployeeService interface {
	// ListByDepartment returns the department roster
	ListByDepartment(ctx context.Context, departmentID string) ([]EmployeeResponse, error)

	// ListScheduled returns employees with a shift on the date; holidays and
	// weekends yield an empty roster with an explanatory message
	ListScheduled(ctx context.Context, req ScheduledRosterRequest) (ScheduledRosterResponse, error)
}
