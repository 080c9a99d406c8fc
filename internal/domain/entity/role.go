package entity

import "slices"

// Role represents an actor role carried in access tokens.
type Role string

const (
	// RoleGuest is a card holder.
	RoleGuest Role = "guest"
	// RoleStaff is a restaurant employee scanning codes.
	RoleStaff Role = "staff"
	// RoleAdmin manages tiers, rewards and balances.
	RoleAdmin Role = "admin"
	// RoleScheduler triggers maintenance jobs.
	RoleScheduler Role = "scheduler"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleStaff, RoleAdmin, RoleScheduler:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ContainsAny checks if the roles slice contains at least one of the given roles.
func (rs Roles) ContainsAny(roles ...Role) bool {
	for _, role := range roles {
		if rs.Contains(role) {
			return true
		}
	}

	return false
}

// RolesFromStrings converts JWT role claims, dropping unknown values.
func RolesFromStrings(values []string) Roles {
	roles := make(Roles, 0, len(values))
	for _, v := range values {
		if role := Role(v); role.IsValid() {
			roles = append(roles, role)
		}
	}

	return roles
}
