// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator with content-management access.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RolePremium indicates a paying user with premium features.
	RolePremium Role = "premium"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RolePremium:
		return true
	default:
		return false
	}
}
