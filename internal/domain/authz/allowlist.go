package authz

// Public portal paths the evaluator redirects to or gates on.
const (
	PathDashboard              = "/dashboard"
	PathResetPassword          = "/reset-password"
	PathUnauthorized           = "/unauthorized"
	PathPersonalTimesheet      = "/attendance/timesheet/me"
	PathTeamTimesheetAnalytics = "/attendance/team-timesheet-analytics"
	PathESignRoot              = "/sign"
)

// Per-family allow-list tables. Each maps a role to the URL path prefixes it
// may access. The tables are merged once into allowList; a role that appears
// in none of them grants no access.

var superAdminAllowList = map[Role][]string{
	RoleSuperAdmin: {
		PathDashboard,
		"/people",
		"/leave",
		"/attendance",
		PathESignRoot,
		"/settings",
	},
}

var adminAllowList = map[Role][]string{
	RolePeopleAdmin: {
		PathDashboard,
		"/people",
		"/settings/people",
	},
	RoleLeaveAdmin: {
		PathDashboard,
		"/leave",
		PathTeamTimesheetAnalytics,
		"/settings/leave",
	},
	RoleAttendanceAdmin: {
		PathDashboard,
		"/attendance",
		"/settings/attendance",
	},
	RoleESignAdmin: {
		PathDashboard,
		PathESignRoot,
		"/settings/sign",
	},
}

var managerAllowList = map[Role][]string{
	RolePeopleManager: {
		PathDashboard,
		"/people",
	},
	RoleLeaveManager: {
		PathDashboard,
		"/leave",
		PathTeamTimesheetAnalytics,
	},
	RoleAttendanceManager: {
		PathDashboard,
		"/attendance",
	},
	RoleESignManager: {
		PathDashboard,
		PathESignRoot,
	},
}

var employeeAllowList = map[Role][]string{
	RolePeopleEmployee: {
		PathDashboard,
		"/people/directory",
	},
	RoleLeaveEmployee: {
		PathDashboard,
		"/leave/my",
	},
	RoleAttendanceEmployee: {
		PathDashboard,
		"/attendance/timesheet",
	},
	RoleESignEmployee: {
		PathDashboard,
		"/sign/inbox",
	},
}

// allowList is the merged role → path-prefix map, built once at init.
var allowList = mergeAllowLists(
	superAdminAllowList,
	adminAllowList,
	managerAllowList,
	employeeAllowList,
)

func mergeAllowLists(tables ...map[Role][]string) map[Role][]string {
	merged := make(map[Role][]string)
	for _, table := range tables {
		for role, prefixes := range table {
			merged[role] = append(merged[role], prefixes...)
		}
	}
	return merged
}

// AllowedPrefixes returns the path prefixes granted to a role. Unknown roles
// get nothing.
func AllowedPrefixes(role Role) []string {
	return allowList[role]
}
