package authz

import "strings"

// Decision is the outcome of evaluating a navigation. When Allowed is false,
// RedirectTo carries the page the user is sent to instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(to string) Decision {
	return Decision{RedirectTo: to}
}

// Input is everything the evaluator may look at. It is assembled from the
// session token and the portal configuration; the evaluator itself reads no
// other state and has no side effects.
type Input struct {
	Path            string
	Roles           []Role
	PasswordChanged bool
	ESignEnabled    bool
}

// denyRule is a hard-coded exception layered on top of the generic
// allow-list, evaluated before it. The rule fires when the session holds any
// of Roles and none of Unless.
type denyRule struct {
	Prefix string
	Roles  []Role
	Unless []Role
}

// Leave managers are kept out of the team-timesheet analytics reports unless
// they are also leave admins, even though their allow-list covers the parent
// path.
var denyRules = []denyRule{
	{
		Prefix: PathTeamTimesheetAnalytics + "/reports",
		Roles:  []Role{RoleLeaveManager},
		Unless: []Role{RoleLeaveAdmin},
	},
}

// Evaluate decides whether the session may navigate to in.Path and where to
// send it otherwise. Checks run in a fixed order: forced password change,
// hard-coded denials, dashboard redirect-for-role, the generic allow-list,
// then the e-sign feature gate. Anything unmatched is denied.
func Evaluate(in Input) Decision {
	// Forced password change wins over everything else. Until the flag is
	// set the only reachable page is the reset form; once set, the reset
	// form bounces back to the dashboard.
	if !in.PasswordChanged {
		if in.Path != PathResetPassword {
			return redirect(PathResetPassword)
		}
		return allow()
	}
	if in.Path == PathResetPassword {
		return redirect(PathDashboard)
	}

	for _, rule := range denyRules {
		if !pathHasPrefix(in.Path, rule.Prefix) {
			continue
		}
		if HasAnyRole(in.Roles, rule.Roles...) && !HasAnyRole(in.Roles, rule.Unless...) {
			return redirect(PathUnauthorized)
		}
	}

	// Pure attendance employees have nothing useful on the generic
	// dashboard; send them straight to their own timesheet.
	if pathHasPrefix(in.Path, PathDashboard) &&
		!HasAnyRole(in.Roles, RoleLeaveEmployee, RolePeopleManager, RoleAttendanceManager) &&
		HasRole(in.Roles, RoleAttendanceEmployee) {
		return redirect(PathPersonalTimesheet)
	}

	if !anyRoleAllows(in.Roles, in.Path) {
		return redirect(PathUnauthorized)
	}

	if pathHasPrefix(in.Path, PathESignRoot) && !in.ESignEnabled {
		return redirect(PathUnauthorized)
	}

	return allow()
}

// anyRoleAllows reports whether any role in the set lists a prefix the path
// falls under. OR across roles, OR across prefixes per role.
func anyRoleAllows(roles []Role, path string) bool {
	for _, role := range roles {
		for _, prefix := range AllowedPrefixes(role) {
			if pathHasPrefix(path, prefix) {
				return true
			}
		}
	}
	return false
}

// pathHasPrefix matches on whole path segments, so "/people" covers
// "/people/directory" but not "/peoples".
func pathHasPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}
