package summary

import (
	"context"
	"time"
)

type SummaryRepository interface {
	// Upsert creates or overwrites the row keyed by (employee, date)
	Upsert(ctx context.Context, s Summary) (Summary, error)

	GetByID(ctx context.Context, id string) (Summary, error)

	// GetByEmployeeAndDate returns nil when no row exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Summary, error)

	// ListByDepartmentAndDate orders by employee id and includes the employee name
	ListByDepartmentAndDate(ctx context.Context, departmentID string, date time.Time) ([]Summary, error)

	// Approve sets the approved status, returning ErrSummaryNotFound for unknown ids
	Approve(ctx context.Context, id string) (Summary, error)

	// ApproveByDepartmentAndDate approves every match and returns the count
	ApproveByDepartmentAndDate(ctx context.Context, departmentID string, date time.Time) (int64, error)
}
