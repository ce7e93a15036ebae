package domain

import (
	"strings"
	"time"
)

// Role is the closed set of privileges an account can hold.
type Role string

const (
	RoleRenter     Role = "renter"
	RoleStaff      Role = "staff"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
)

// Roles lists every valid role, lowest privilege first.
var Roles = []Role{RoleRenter, RoleTechnician, RoleStaff, RoleManager, RoleAdmin}

// RoleFromString resolves s to a Role. Matching is case-insensitive and
// accepts an enum-qualified form whose qualifier names a role type
// ("Role.manager", "UserRole:admin"). Anything else, including the empty
// string, resolves to RoleRenter so malformed input never gains privilege.
func RoleFromString(s string) Role {
	r, _ := ParseRole(s)
	return r
}

// ParseRole is RoleFromString that also reports whether s named a role.
func ParseRole(s string) (Role, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	if i := strings.LastIndexAny(v, ".:"); i >= 0 {
		if !strings.HasSuffix(v[:i], "role") {
			return RoleRenter, false
		}
		v = v[i+1:]
	}
	switch Role(v) {
	case RoleRenter:
		return RoleRenter, true
	case RoleStaff:
		return RoleStaff, true
	case RoleManager:
		return RoleManager, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleTechnician:
		return RoleTechnician, true
	default:
		return RoleRenter, false
	}
}

// Account is the account holder behind a login.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	FullName     string
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}

func (a Account) EntityID() string { return a.ID }

func (a Account) Clone() Account {
	a.LastLogin = cloneTime(a.LastLogin)
	return a
}
