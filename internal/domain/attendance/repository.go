package attendance

import (
	"context"
	"time"
)

// LogRepository persists attendance logs. Logs are never overwritten.
type LogRepository interface {
	// Create inserts a log, returning ErrDuplicateLog when the key already exists
	Create(ctx context.Context, log Log) (Log, error)

	// Exists checks the (employee, date, session) key
	Exists(ctx context.Context, key Key) (bool, error)

	// List returns logs newest date first with employee and session projections
	List(ctx context.Context, filter LogFilter) ([]Log, int64, error)

	// ListByDepartmentAndDate returns the day's logs of a department, earliest clock-in first per employee
	ListByDepartmentAndDate(ctx context.Context, departmentID string, date time.Time) ([]Log, error)

	// ListByEmployee returns an employee's logs newest date first
	ListByEmployee(ctx context.Context, employeeID string) ([]Log, error)
}

// FirstByEmployee keeps the first log seen per employee
func FirstByEmployee(logs []Log) map[string]Log {
	out := make(map[string]Log, len(logs))
	for _, l := range logs {
		if _, seen := out[l.EmployeeID]; !seen {
			out[l.EmployeeID] = l
		}
	}
	return out
}
