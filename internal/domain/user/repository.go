package user

import (
	"context"
)

type UserRepository interface {
	// GetByEmail and GetByID load roles and the linked employee; ErrUserNotFound when absent
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)

	// Create returns ErrUserEmailExists for a taken email
	Create(ctx context.Context, newUser User) (User, error)

	// AssignRoles grants roles in order; ErrUnknownRole when a role is not seeded
	AssignRoles(ctx context.Context, userID string, roles []Role) error

	// LinkEmployee attaches the user to an existing employee record
	LinkEmployee(ctx context.Context, userID, employeeID string) error

	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
