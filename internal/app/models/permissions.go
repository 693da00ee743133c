package models

// Permission is a named capability a member can hold.
type Permission struct {
	Name string `json:"name" example:"manage_users"`
}

// Capabilities granted to organization members.
var (
	PermissionManageOrganization = Permission{Name: "manage_bde"}
	PermissionManageUsers        = Permission{Name: "manage_users"}
	PermissionManageEvents       = Permission{Name: "manage_events"}
	PermissionManageBookings     = Permission{Name: "manage_bookings"}
)

// AllPermissions returns the full capability set granted to an
// organization's owner.
func AllPermissions() []Permission {
	return []Permission{
		PermissionManageOrganization,
		PermissionManageUsers,
		PermissionManageEvents,
		PermissionManageBookings,
	}
}

// EncodePermissions serializes a permission set to the list-of-names form
// stored in the users table.
func EncodePermissions(perms []Permission) []string {
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, p.Name)
	}
	return names
}

// DecodePermissions rebuilds permission objects from their stored names.
// Unknown names are kept as-is so a schema ahead of this binary does not
// drop capabilities.
func DecodePermissions(names []string) []Permission {
	perms := make([]Permission, 0, len(names))
	for _, n := range names {
		perms = append(perms, Permission{Name: n})
	}
	return perms
}

// HasPermission reports whether the set contains the given capability.
func HasPermission(perms []Permission, want Permission) bool {
	for _, p := range perms {
		if p.Name == want.Name {
			return true
		}
	}
	return false
}
