package rolesapi

import (
	"errors"
	"net/http"
	"time"

	"blockcms/database"
	"blockcms/internal/domain/rbac"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoleInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	PermissionIDs []string `json:"permissionIds"`
}

type RoleDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toRoleDTO(r rbac.Role) RoleDTO {
	return RoleDTO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.PermissionNames(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// GET /admin/api/permissions
func ListPermissions(c *gin.Context) {
	var perms []rbac.Permission
	if err := database.DB.Order("name ASC").Find(&perms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load permissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"permissions": perms})
}

// GET /admin/api/roles
func ListRoles(c *gin.Context) {
	var roles []rbac.Role
	err := database.DB.
		Preload("RolePermissions.Permission").
		Order("name ASC").
		Find(&roles).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load roles"})
		return
	}

	out := make([]RoleDTO, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleDTO(r))
	}
	c.JSON(http.StatusOK, gin.H{"roles": out})
}

// GET /admin/api/roles/:id
func GetRole(c *gin.Context) {
	var role rbac.Role
	err := database.DB.
		Preload("RolePermissions.Permission").
		First(&role, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": toRoleDTO(role)})
}

// POST /admin/api/roles
func CreateRole(c *gin.Context) {
	var input RoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var role rbac.Role
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		role = rbac.Role{Name: input.Name, Description: input.Description}
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		return grantPermissions(tx, role.ID, input.PermissionIDs)
	})
	if err != nil {
		if errors.Is(err, errUnknownPermission) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "One or more permission ids do not exist"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "A role with this name already exists"})
		return
	}

	reloadRole(c, role.ID, http.StatusCreated)
}

// PUT /admin/api/roles/:id
//
// The permission set is replaced wholesale with the submitted list.
func UpdateRole(c *gin.Context) {
	id := c.Param("id")

	var input RoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var role rbac.Role
		if err := tx.First(&role, "id = ?", id).Error; err != nil {
			return err
		}

		role.Name = input.Name
		role.Description = input.Description
		if err := tx.Save(&role).Error; err != nil {
			return err
		}

		if err := tx.Where("role_id = ?", role.ID).Delete(&rbac.RolePermission{}).Error; err != nil {
			return err
		}
		return grantPermissions(tx, role.ID, input.PermissionIDs)
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		case errors.Is(err, errUnknownPermission):
			c.JSON(http.StatusBadRequest, gin.H{"error": "One or more permission ids do not exist"})
		default:
			c.JSON(http.StatusConflict, gin.H{"error": "A role with this name already exists"})
		}
		return
	}

	reloadRole(c, id, http.StatusOK)
}

// DELETE /admin/api/roles/:id
func DeleteRole(c *gin.Context) {
	res := database.DB.Delete(&rbac.Role{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete role"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

var errUnknownPermission = errors.New("unknown permission id")

func grantPermissions(tx *gorm.DB, roleID string, permissionIDs []string) error {
	for _, pid := range permissionIDs {
		var perm rbac.Permission
		if err := tx.First(&perm, "id = ?", pid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errUnknownPermission
			}
			return err
		}
		rp := rbac.RolePermission{RoleID: roleID, PermissionID: pid}
		if err := tx.Create(&rp).Error; err != nil {
			return err
		}
	}
	return nil
}

func reloadRole(c *gin.Context, id string, status int) {
	var role rbac.Role
	err := database.DB.
		Preload("RolePermissions.Permission").
		First(&role, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load role"})
		return
	}
	c.JSON(status, gin.H{"role": toRoleDTO(role)})
}
