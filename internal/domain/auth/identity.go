package auth

import (
	"context"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
)

// Identity is the authenticated caller, rebuilt from token claims on every request
type Identity struct {
	UserID       string
	Email        string
	EmployeeID   *string
	DepartmentID *string
	Roles        []user.Role
}

// IsDepartmentScoped reports whether the caller only acts on its own department
func (i Identity) IsDepartmentScoped() bool {
	isHead := false
	for _, r := range i.Roles {
		if r == user.RoleHR {
			return false
		}
		if r == user.RoleDepartmentHead {
			isHead = true
		}
	}
	return isHead
}

// CanAccessDepartment reports whether the caller may read departmentID.
// A scoped caller without a department of its own may read none.
func (i Identity) CanAccessDepartment(departmentID string) bool {
	if !i.IsDepartmentScoped() {
		return true
	}
	return i.DepartmentID != nil && *i.DepartmentID == departmentID
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
