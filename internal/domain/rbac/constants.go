package rbac

// Core permission names. Seeded at startup; role editors can only grant
// permissions that exist in the permissions table.
const (
	PermManageUsers       = "manage_users"
	PermManageRoles       = "manage_roles"
	PermManagePermissions = "manage_permissions"
	PermManageContent     = "manage_content"
	PermPublishContent    = "publish_content"
	PermManageMedia       = "manage_media"
)

// Built-in role names.
const (
	RoleAdmin     = "admin"
	RoleEditor    = "editor"
	RolePublisher = "publisher"
)

// AllPermissions returns every core permission name.
func AllPermissions() []string {
	return []string{
		PermManageUsers,
		PermManageRoles,
		PermManagePermissions,
		PermManageContent,
		PermPublishContent,
		PermManageMedia,
	}
}
