// Package entity contains the core business objects of the inventory console.
package entity

import "slices"

// Role represents the type of role a user can have in the inventory application.
type Role string

const (
	// RoleAdmin can manage every product, including deletion.
	RoleAdmin Role = "admin"
	// RoleStaff can create and edit products.
	RoleStaff Role = "staff"
	// RoleViewer has read-only access.
	RoleViewer Role = "viewer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleViewer:
		return true
	default:
		return false
	}
}

// CanWriteProducts reports whether the role may create or edit products.
func (r Role) CanWriteProducts() bool {
	return r == RoleAdmin || r == RoleStaff
}

// CanDeleteProducts reports whether the role may delete products.
func (r Role) CanDeleteProducts() bool {
	return r == RoleAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// AllRoles lists every role in the order shown by the registration form.
func AllRoles() Roles {
	return Roles{RoleStaff, RoleAdmin, RoleViewer}
}
