package user

type Resource string

type Action string

const (
	ResourceAttendanceLog Resource = "attendance_log"
	ResourceRoster        Resource = "roster"
	ResourceSummary       Resource = "attendance_summary"
	ResourceHoliday       Resource = "holiday"
	ResourceIntern        Resource = "intern"
	ResourceAccount       Resource = "account"
	ResourceComplaint     Resource = "complaint"
)

const (
	ActionCreate    Action = "create"
	ActionView      Action = "view"
	ActionViewOwn   Action = "view_own"
	ActionGenerate  Action = "generate"
	ActionApprove   Action = "approve"
	ActionExport    Action = "export"
	ActionManage    Action = "manage"
	ActionScheduled Action = "view_scheduled"
	ActionUpdateOwn Action = "update_own"
)

// Permission is a (resource, action) pair
type Permission struct {
	Resource Resource
	Action   Action
}

func (p Permission) String() string {
	return string(p.Resource) + "." + string(p.Action)
}

var (
	// Attendance logs
	PermissionLogCreate = Permission{ResourceAttendanceLog, ActionCreate}
	PermissionLogView   = Permission{ResourceAttendanceLog, ActionView}

	// Rosters
	PermissionRosterView      = Permission{ResourceRoster, ActionView}
	PermissionRosterScheduled = Permission{ResourceRoster, ActionScheduled}

	// Summaries
	PermissionSummaryGenerate = Permission{ResourceSummary, ActionGenerate}
	PermissionSummaryView     = Permission{ResourceSummary, ActionView}
	PermissionSummaryApprove  = Permission{ResourceSummary, ActionApprove}
	PermissionSummaryExport   = Permission{ResourceSummary, ActionExport}

	// Holidays
	PermissionHolidayView   = Permission{ResourceHoliday, ActionView}
	PermissionHolidayManage = Permission{ResourceHoliday, ActionManage}

	// Self service
	PermissionInternViewOwn   = Permission{ResourceIntern, ActionViewOwn}
	PermissionPasswordChange  = Permission{ResourceAccount, ActionUpdateOwn}
	PermissionComplaintCreate = Permission{ResourceComplaint, ActionCreate}
)

// Policy maps every gated (resource, action) to the roles allowed to perform it.
// A permission missing from the table is denied for everyone.
var Policy = map[Permission][]Role{
	PermissionLogCreate: {RoleHR, RoleDepartmentHead},
	PermissionLogView:   {RoleHR, RoleDepartmentHead},

	PermissionRosterView:      {RoleHR, RoleDepartmentHead},
	PermissionRosterScheduled: {RoleDepartmentHead},

	PermissionSummaryGenerate: {RoleHR},
	PermissionSummaryView:     {RoleHR},
	PermissionSummaryApprove:  {RoleHR},
	PermissionSummaryExport:   {RoleHR},

	PermissionHolidayView:   AllRoles,
	PermissionHolidayManage: {RoleHR},

	PermissionInternViewOwn:   {RoleIntern},
	PermissionPasswordChange:  AllRoles,
	PermissionComplaintCreate: AllRoles,
}

// IsAllowed checks whether any of roles may perform permission
func IsAllowed(permission Permission, roles []Role) bool {
	allowed, exists := Policy[permission]
	if !exists {
		return false
	}
	for _, have := range roles {
		for _, want := range allowed {
			if have == want {
				return true
			}
		}
	}
	return false
}
