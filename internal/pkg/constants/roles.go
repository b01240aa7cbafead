package constants

const (
	RoleFarmer   = "FARMER"
	RoleSeller   = "SELLER"
	RoleLabourer = "LABOURER"
)

// ValidRoles is the set of allowed user roles.
var ValidRoles = []string{RoleFarmer, RoleSeller, RoleLabourer}

// IsValidRole returns true if role is one of the allowed values.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
