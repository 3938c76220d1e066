package user

import "time"

type Role string

const (
	RoleHR             Role = "HR"             // HR admin - summaries, approvals, holidays
	RoleDepartmentHead Role = "DepartmentHead" // Records logs for own department
	RoleIntern         Role = "Intern"         // Self-service dashboard
	RoleStaff          Role = "Staff"          // Regular employee
)

// AllRoles lists every role known to the policy table
var AllRoles = []Role{RoleHR, RoleDepartmentHead, RoleIntern, RoleStaff}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeID   *string
	DepartmentID *string
}

// HasRole reports whether the user holds role
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// PrimaryRole returns the first assigned role, or fallback when none
func (u *User) PrimaryRole(fallback Role) Role {
	if len(u.Roles) == 0 {
		return fallback
	}
	return u.Roles[0]
}

// RoleStrings converts roles for token claims
func RoleStrings(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
