package authz

type Role string

// Family classifies a role by privilege tier.
type Family string

// Module names the feature area a role is scoped to.
type Module string

const (
	FamilySuperAdmin Family = "super-admin"
	FamilyAdmin      Family = "admin"
	FamilyManager    Family = "manager"
	FamilyEmployee   Family = "employee"
)

const (
	ModuleAll        Module = "*"
	ModulePeople     Module = "people"
	ModuleLeave      Module = "leave"
	ModuleAttendance Module = "attendance"
	ModuleESign      Module = "esign"
)

const (
	RoleSuperAdmin Role = "super-admin"

	RolePeopleAdmin     Role = "people-admin"
	RoleLeaveAdmin      Role = "leave-admin"
	RoleAttendanceAdmin Role = "attendance-admin"
	RoleESignAdmin      Role = "esign-admin"

	RolePeopleManager     Role = "people-manager"
	RoleLeaveManager      Role = "leave-manager"
	RoleAttendanceManager Role = "attendance-manager"
	RoleESignManager      Role = "esign-manager"

	RolePeopleEmployee     Role = "people-employee"
	RoleLeaveEmployee      Role = "leave-employee"
	RoleAttendanceEmployee Role = "attendance-employee"
	RoleESignEmployee      Role = "esign-employee"
)

// roleInfo is the closed registry of known roles. A role string outside this
// table is not a role; ParseRoles drops it and the allow-list grants it nothing.
var roleInfo = map[Role]struct {
	Family Family
	Module Module
}{
	RoleSuperAdmin: {FamilySuperAdmin, ModuleAll},

	RolePeopleAdmin:     {FamilyAdmin, ModulePeople},
	RoleLeaveAdmin:      {FamilyAdmin, ModuleLeave},
	RoleAttendanceAdmin: {FamilyAdmin, ModuleAttendance},
	RoleESignAdmin:      {FamilyAdmin, ModuleESign},

	RolePeopleManager:     {FamilyManager, ModulePeople},
	RoleLeaveManager:      {FamilyManager, ModuleLeave},
	RoleAttendanceManager: {FamilyManager, ModuleAttendance},
	RoleESignManager:      {FamilyManager, ModuleESign},

	RolePeopleEmployee:     {FamilyEmployee, ModulePeople},
	RoleLeaveEmployee:      {FamilyEmployee, ModuleLeave},
	RoleAttendanceEmployee: {FamilyEmployee, ModuleAttendance},
	RoleESignEmployee:      {FamilyEmployee, ModuleESign},
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	_, ok := roleInfo[r]
	return ok
}

// Family returns the privilege tier of the role, or "" for unknown roles.
func (r Role) Family() Family {
	return roleInfo[r].Family
}

// Module returns the feature area of the role, or "" for unknown roles.
func (r Role) Module() Module {
	return roleInfo[r].Module
}

// ParseRoles converts raw role strings into a role set, dropping anything the
// registry does not know. Malformed input degrades to an empty set.
func ParseRoles(raw []string) []Role {
	roles := make([]Role, 0, len(raw))
	for _, s := range raw {
		r := Role(s)
		if r.IsValid() {
			roles = append(roles, r)
		}
	}
	return roles
}

// HasRole reports whether the role set contains r.
func HasRole(roles []Role, r Role) bool {
	for _, have := range roles {
		if have == r {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the role set contains at least one of want.
func HasAnyRole(roles []Role, want ...Role) bool {
	for _, w := range want {
		if HasRole(roles, w) {
			return true
		}
	}
	return false
}
