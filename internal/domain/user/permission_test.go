package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowed_SummaryRoutesAreHROnly(t *testing.T) {
	for _, p := range []Permission{
		PermissionSummaryGenerate,
		PermissionSummaryView,
		PermissionSummaryApprove,
		PermissionSummaryExport,
	} {
		assert.True(t, IsAllowed(p, []Role{RoleHR}), p.String())
		assert.False(t, IsAllowed(p, []Role{RoleDepartmentHead}), p.String())
		assert.False(t, IsAllowed(p, []Role{RoleIntern, RoleStaff}), p.String())
	}
}

func TestIsAllowed_ScheduledRosterIsDepartmentHeadOnly(t *testing.T) {
	assert.True(t, IsAllowed(PermissionRosterScheduled, []Role{RoleDepartmentHead}))
	assert.False(t, IsAllowed(PermissionRosterScheduled, []Role{RoleHR}))
}

func TestIsAllowed_AnyMatchingRoleGrants(t *testing.T) {
	assert.True(t, IsAllowed(PermissionInternViewOwn, []Role{RoleStaff, RoleIntern}))
	assert.False(t, IsAllowed(PermissionInternViewOwn, nil))
}

func TestIsAllowed_UnknownPermissionDenied(t *testing.T) {
	p := Permission{Resource: "payroll", Action: ActionView}
	for _, r := range AllRoles {
		assert.False(t, IsAllowed(p, []Role{r}))
	}
}

func TestUser_PrimaryRole(t *testing.T) {
	u := User{}
	assert.Equal(t, RoleIntern, u.PrimaryRole(RoleIntern))

	u.Roles = []Role{RoleStaff, RoleHR}
	assert.Equal(t, RoleStaff, u.PrimaryRole(RoleIntern))
	assert.True(t, u.HasRole(RoleHR))
	assert.False(t, u.HasRole(RoleDepartmentHead))
	assert.Equal(t, []string{"Staff", "HR"}, RoleStrings(u.Roles))
}
