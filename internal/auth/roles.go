package auth

import (
	"errors"
	"strings"
)

// ErrUnknownRole is returned for role names the application does not know.
var ErrUnknownRole = errors.New("unknown role")

// Role is a user's role as issued by the hotel API.
type Role string

const (
	RoleGuest      Role = "guest"
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

var roleRank = map[Role]int{
	RoleGuest:      1,
	RoleStaff:      2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// ParseRole parses a role name.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleRank[r]; !ok {
		return "", ErrUnknownRole
	}
	return r, nil
}

// AtLeast reports whether r has at least the privileges of min.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min] && roleRank[r] > 0
}

// Label returns a human readable role name.
func (r Role) Label() string {
	switch r {
	case RoleGuest:
		return "Guest"
	case RoleStaff:
		return "Staff"
	case RoleAdmin:
		return "Admin"
	case RoleSuperAdmin:
		return "Super Admin"
	default:
		return "Unknown"
	}
}

// LoginPath returns the API endpoint that signs in users of this role.
// Each endpoint only accepts accounts holding exactly that role.
func (r Role) LoginPath() string {
	switch r {
	case RoleStaff:
		return "/stafflogin"
	case RoleAdmin:
		return "/adminlogin"
	case RoleSuperAdmin:
		return "/superadmin"
	default:
		return "/login"
	}
}

// LoginPage returns the web page where users of this role sign in.
func (r Role) LoginPage() string {
	switch r {
	case RoleStaff:
		return "/staff/login"
	case RoleAdmin:
		return "/admin/login"
	case RoleSuperAdmin:
		return "/superadmin/login"
	default:
		return "/login"
	}
}

// HomePath returns where a user of this role lands after signing in.
func (r Role) HomePath() string {
	if r.AtLeast(RoleStaff) {
		return "/admin"
	}
	return "/dashboard"
}
