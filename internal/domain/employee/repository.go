package employee

import (
	"context"
)

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when no row matches
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUserID resolves the employee linked to a login account
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// ListByDepartment returns every employee of a department ordered by id
	ListByDepartment(ctx context.Context, departmentID string) ([]Employee, error)
}

type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
}
