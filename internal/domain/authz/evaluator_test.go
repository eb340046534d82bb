package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatePasswordChangeGate(t *testing.T) {
	// Until the flag is set, everything funnels to the reset form.
	for _, path := range []string{PathDashboard, "/leave/my", "/attendance/timesheet", "/nonsense"} {
		got := Evaluate(Input{Path: path, Roles: []Role{RoleSuperAdmin}, PasswordChanged: false})
		assert.False(t, got.Allowed, "path %s", path)
		assert.Equal(t, PathResetPassword, got.RedirectTo, "path %s", path)
	}

	got := Evaluate(Input{Path: PathResetPassword, Roles: nil, PasswordChanged: false})
	assert.True(t, got.Allowed)

	// Once set, the reset form bounces back.
	got = Evaluate(Input{Path: PathResetPassword, Roles: []Role{RoleSuperAdmin}, PasswordChanged: true})
	assert.False(t, got.Allowed)
	assert.Equal(t, PathDashboard, got.RedirectTo)
}

func TestEvaluateAllowList(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		roles   []Role
		allowed bool
	}{
		{"super admin reaches people", "/people/directory", []Role{RoleSuperAdmin}, true},
		{"super admin reaches settings", "/settings/anything", []Role{RoleSuperAdmin}, true},
		{"leave employee reaches own leave", "/leave/my", []Role{RoleLeaveEmployee}, true},
		{"leave employee blocked from people", "/people", []Role{RoleLeaveEmployee}, false},
		{"people employee limited to directory", "/people/directory/profile", []Role{RolePeopleEmployee}, true},
		{"people employee blocked above directory", "/people/payroll", []Role{RolePeopleEmployee}, false},
		{"prefix matches whole segments only", "/peoples", []Role{RoleSuperAdmin}, false},
		{"no roles gets nothing", "/leave/my", nil, false},
		{"roles merge with or semantics", "/leave/my", []Role{RolePeopleEmployee, RoleLeaveEmployee}, true},
		{"attendance manager reaches analytics", "/attendance/team-timesheet-analytics", []Role{RoleAttendanceManager}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(Input{Path: tc.path, Roles: tc.roles, PasswordChanged: true, ESignEnabled: true})
			assert.Equal(t, tc.allowed, got.Allowed)
			if !tc.allowed {
				assert.Equal(t, PathUnauthorized, got.RedirectTo)
			}
		})
	}
}

func TestEvaluateAnalyticsReportsCarveOut(t *testing.T) {
	reports := PathTeamTimesheetAnalytics + "/reports"

	// The parent page is on the leave manager allow-list.
	got := Evaluate(Input{Path: PathTeamTimesheetAnalytics, Roles: []Role{RoleLeaveManager}, PasswordChanged: true})
	assert.True(t, got.Allowed)

	// The reports subtree is not, regardless of the allow-list.
	got = Evaluate(Input{Path: reports, Roles: []Role{RoleLeaveManager}, PasswordChanged: true})
	assert.False(t, got.Allowed)
	assert.Equal(t, PathUnauthorized, got.RedirectTo)

	got = Evaluate(Input{Path: reports + "/export", Roles: []Role{RoleLeaveManager}, PasswordChanged: true})
	assert.False(t, got.Allowed)

	// Holding leave admin as well lifts the exception.
	got = Evaluate(Input{Path: reports, Roles: []Role{RoleLeaveManager, RoleLeaveAdmin}, PasswordChanged: true})
	assert.True(t, got.Allowed)
}

func TestEvaluateDashboardRedirectForRole(t *testing.T) {
	// Pure attendance employees skip the dashboard entirely.
	got := Evaluate(Input{Path: PathDashboard, Roles: []Role{RoleAttendanceEmployee}, PasswordChanged: true})
	assert.False(t, got.Allowed)
	assert.Equal(t, PathPersonalTimesheet, got.RedirectTo)

	got = Evaluate(Input{Path: PathDashboard + "/widgets", Roles: []Role{RoleAttendanceEmployee}, PasswordChanged: true})
	assert.Equal(t, PathPersonalTimesheet, got.RedirectTo)

	// The redirect target itself is on their allow-list.
	got = Evaluate(Input{Path: PathPersonalTimesheet, Roles: []Role{RoleAttendanceEmployee}, PasswordChanged: true})
	assert.True(t, got.Allowed)

	// Any dashboard-relevant role keeps the dashboard reachable.
	for _, extra := range []Role{RoleLeaveEmployee, RolePeopleManager, RoleAttendanceManager} {
		got = Evaluate(Input{Path: PathDashboard, Roles: []Role{RoleAttendanceEmployee, extra}, PasswordChanged: true})
		assert.True(t, got.Allowed, "extra role %s", extra)
	}
}

func TestEvaluateESignToggle(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		roles   []Role
		enabled bool
		allowed bool
	}{
		{"esign employee with toggle on", "/sign/inbox", []Role{RoleESignEmployee}, true, true},
		{"esign employee with toggle off", "/sign/inbox", []Role{RoleESignEmployee}, false, false},
		{"esign manager with toggle off", "/sign", []Role{RoleESignManager}, false, false},
		{"toggle applies even to super admin", "/sign", []Role{RoleSuperAdmin}, false, false},
		{"toggle does not touch other modules", "/leave/my", []Role{RoleLeaveEmployee}, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(Input{Path: tc.path, Roles: tc.roles, PasswordChanged: true, ESignEnabled: tc.enabled})
			assert.Equal(t, tc.allowed, got.Allowed)
		})
	}
}

func TestEvaluateUnknownPathDenied(t *testing.T) {
	got := Evaluate(Input{Path: "/does-not-exist", Roles: []Role{RoleSuperAdmin}, PasswordChanged: true})
	assert.False(t, got.Allowed)
	assert.Equal(t, PathUnauthorized, got.RedirectTo)
}
