package users

import (
	"time"

	"blockcms/internal/domain/rbac"
)

type User struct {
	ID           string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Name         string  `gorm:"not null" json:"name"`
	PasswordHash *string `gorm:"column:password_hash" json:"-"`

	UserRoles []rbac.UserRole `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"userRoles,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleNames lists the names of all roles assigned to the user, in
// assignment order.
func (u User) RoleNames() []string {
	names := make([]string, 0, len(u.UserRoles))
	for _, ur := range u.UserRoles {
		if ur.Role != nil {
			names = append(names, ur.Role.Name)
		}
	}
	return names
}
