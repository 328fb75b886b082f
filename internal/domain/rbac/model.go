package rbac

import "time"

type Permission struct {
	ID          string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Role struct {
	ID          string `gorm:"not null;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `json:"description,omitempty"`

	RolePermissions []RolePermission `gorm:"foreignKey:RoleID;references:ID;constraint:OnDelete:CASCADE;" json:"rolePermissions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RolePermission joins roles to permissions, many-to-many.
type RolePermission struct {
	RoleID       string `gorm:"type:uuid;primaryKey" json:"role_id"`
	PermissionID string `gorm:"type:uuid;primaryKey" json:"permission_id"`

	Permission *Permission `gorm:"foreignKey:PermissionID;references:ID;constraint:OnDelete:CASCADE;" json:"permission,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// UserRole joins users to roles, many-to-many. A user may hold any number
// of roles; authorization always considers the full set.
type UserRole struct {
	UserID string `gorm:"type:uuid;primaryKey" json:"user_id"`
	RoleID string `gorm:"type:uuid;primaryKey" json:"role_id"`

	Role *Role `gorm:"foreignKey:RoleID;references:ID;constraint:OnDelete:CASCADE;" json:"role,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// PermissionNames lists the names of the permissions attached to the role.
func (r Role) PermissionNames() []string {
	names := make([]string, 0, len(r.RolePermissions))
	for _, rp := range r.RolePermissions {
		if rp.Permission != nil {
			names = append(names, rp.Permission.Name)
		}
	}
	return names
}
