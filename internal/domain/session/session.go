// Package session reads the authenticated session claims this service
// consumes. Tokens are minted by the external auth provider; everything here
// is defensive normalization so malformed claims degrade to a session with no
// roles instead of an error.
package session

import (
	"github.com/worklens/hr-portal-go/internal/domain/authz"
)

const (
	ClaimRoles           = "roles"
	ClaimPasswordChanged = "is_password_changed"
	ClaimEmployeeID      = "employee_id"
	ClaimCompanyID       = "company_id"
)

type Session struct {
	EmployeeID      string
	CompanyID       string
	Roles           []authz.Role
	PasswordChanged bool
}

// FromClaims builds a Session from raw JWT claims. Unknown role strings are
// dropped and missing claims leave zero values; nothing here returns an error.
func FromClaims(claims map[string]interface{}) Session {
	s := Session{}

	if v, ok := claims[ClaimEmployeeID].(string); ok {
		s.EmployeeID = v
	}
	if v, ok := claims[ClaimCompanyID].(string); ok {
		s.CompanyID = v
	}

	s.Roles = authz.ParseRoles(rawRoles(claims[ClaimRoles]))
	s.PasswordChanged = normalizeBool(claims[ClaimPasswordChanged])

	return s
}

func rawRoles(v interface{}) []string {
	switch roles := v.(type) {
	case []string:
		return roles
	case []interface{}:
		out := make([]string, 0, len(roles))
		for _, r := range roles {
			if s, ok := r.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// normalizeBool accepts the upstream serialization inconsistency for the
// password-changed flag: real booleans and the strings "true"/"false" both
// occur. Anything unrecognized counts as false, which forces the reset flow.
func normalizeBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true"
	default:
		return false
	}
}
