package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer indicates a regular shopper. Profiles without a role are customers too.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates access to the admin dashboard.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a stored or claimed role string into a Role pointer.
// Unknown or empty values yield nil.
func RoleFromString(s string) *Role {
	role := Role(s)
	if !role.IsValid() {
		return nil
	}

	return &role
}
