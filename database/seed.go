package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blockcms/internal/domain/rbac"
	"blockcms/internal/domain/users"
)

// Seed upserts the core permissions, the built-in roles with their grants,
// and a bootstrap admin account. Safe to run on every startup.
func Seed() {
	if err := seed(DB); err != nil {
		log.Fatal("Seed error:", err)
	}
	log.Println("Database seeded")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		permDescriptions := map[string]string{
			rbac.PermManageUsers:       "Can create, edit, and delete users",
			rbac.PermManageRoles:       "Can create, edit, and delete roles",
			rbac.PermManagePermissions: "Can assign permissions to roles",
			rbac.PermManageContent:     "Can create and edit content",
			rbac.PermPublishContent:    "Can publish content",
			rbac.PermManageMedia:       "Can upload and manage media files",
		}

		perms := make(map[string]rbac.Permission, len(permDescriptions))
		for _, name := range rbac.AllPermissions() {
			p := rbac.Permission{Name: name, Description: permDescriptions[name]}
			if err := upsertPermission(tx, &p); err != nil {
				return err
			}
			perms[name] = p
		}

		roleGrants := map[string]struct {
			description string
			perms       []string
		}{
			rbac.RoleAdmin:     {"Full system access", rbac.AllPermissions()},
			rbac.RoleEditor:    {"Can create and edit content", []string{rbac.PermManageContent, rbac.PermManageMedia}},
			rbac.RolePublisher: {"Can publish content", []string{rbac.PermManageContent, rbac.PermPublishContent}},
		}

		roles := make(map[string]rbac.Role, len(roleGrants))
		for _, name := range []string{rbac.RoleAdmin, rbac.RoleEditor, rbac.RolePublisher} {
			grant := roleGrants[name]
			r := rbac.Role{Name: name, Description: grant.description}
			if err := upsertRole(tx, &r); err != nil {
				return err
			}
			roles[name] = r

			for _, permName := range grant.perms {
				rp := rbac.RolePermission{RoleID: r.ID, PermissionID: perms[permName].ID}
				if err := tx.Where(rbac.RolePermission{RoleID: rp.RoleID, PermissionID: rp.PermissionID}).
					FirstOrCreate(&rp).Error; err != nil {
					return err
				}
			}
		}

		// Bootstrap admin. The password is a placeholder, change it after
		// first login.
		var admin users.User
		err := tx.Where("email = ?", "admin@example.com").First(&admin).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hash, hErr := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
			if hErr != nil {
				return hErr
			}
			hashed := string(hash)
			admin = users.User{
				Email:        "admin@example.com",
				Name:         "System Admin",
				PasswordHash: &hashed,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		assignment := rbac.UserRole{UserID: admin.ID, RoleID: roles[rbac.RoleAdmin].ID}
		return tx.Where(rbac.UserRole{UserID: assignment.UserID, RoleID: assignment.RoleID}).
			FirstOrCreate(&assignment).Error
	})
}

func upsertPermission(tx *gorm.DB, p *rbac.Permission) error {
	var existing rbac.Permission
	err := tx.Where("name = ?", p.Name).First(&existing).Error
	if err == nil {
		*p = existing
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(p).Error
}

func upsertRole(tx *gorm.DB, r *rbac.Role) error {
	var existing rbac.Role
	err := tx.Where("name = ?", r.Name).First(&existing).Error
	if err == nil {
		*r = existing
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(r).Error
}
